// Package service implements validation and query orchestration between
// HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/party-events/internal/model"
	"github.com/Shivanand-hulikatti/party-events/internal/repository"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest is returned when an identifier or tag spec cannot name
// anything that exists. No store query is made in that case.
var ErrInvalidRequest = errors.New("invalid request")

var validate = validator.New(validator.WithRequiredStructEnabled())

// PartyStore is the read side of party persistence.
type PartyStore interface {
	ListActive(ctx context.Context) ([]model.Party, error)
	GetActiveByShortname(ctx context.Context, shortname string) (*model.Party, error)
}

// EventStore is the read side of event persistence.
type EventStore interface {
	ListByParty(ctx context.Context, party string) ([]model.Event, error)
	ListByPartyAndTag(ctx context.Context, party, tag string) ([]model.Event, error)
}

type partyLookup struct {
	PartyID string `validate:"min=3"`
}

type taggedLookup struct {
	Party string `validate:"min=3"`
	Tags  string `validate:"min=2"`
}

func check(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// PartyService serves party listings.
type PartyService struct {
	parties PartyStore
}

// NewPartyService constructs a PartyService.
func NewPartyService(parties PartyStore) *PartyService {
	return &PartyService{parties: parties}
}

// ListActive returns all active parties in store order.
func (s *PartyService) ListActive(ctx context.Context) ([]model.Party, error) {
	parties, err := s.parties.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active parties: %w", err)
	}
	return parties, nil
}

// GetActive returns the active party with shortname partyID. A party that
// does not exist or is inactive yields (nil, nil).
func (s *PartyService) GetActive(ctx context.Context, partyID string) (*model.Party, error) {
	if err := check(partyLookup{PartyID: partyID}); err != nil {
		return nil, err
	}

	party, err := s.parties.GetActiveByShortname(ctx, partyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party %q: %w", partyID, err)
	}
	return party, nil
}

// EventService serves event listings.
type EventService struct {
	events EventStore
}

// NewEventService constructs an EventService.
func NewEventService(events EventStore) *EventService {
	return &EventService{events: events}
}

// ListByParty returns every event of a party. The identifier is not
// validated.
func (s *EventService) ListByParty(ctx context.Context, party string) ([]model.Event, error) {
	events, err := s.events.ListByParty(ctx, party)
	if err != nil {
		return nil, fmt.Errorf("list events for party %q: %w", party, err)
	}
	return events, nil
}

// ListByTags returns the events of a party that carry every tag of tagSpec.
//
// The store is asked only for events carrying the first tag; the remaining
// tags are checked in memory. Store order is preserved.
func (s *EventService) ListByTags(ctx context.Context, party, tagSpec string) ([]model.Event, error) {
	if err := check(taggedLookup{Party: party, Tags: tagSpec}); err != nil {
		return nil, err
	}
	tags := ParseTagSpec(tagSpec)
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: tag spec %q names no tags", ErrInvalidRequest, tagSpec)
	}

	events, err := s.events.ListByPartyAndTag(ctx, party, tags[0])
	if err != nil {
		return nil, fmt.Errorf("list events for party %q with tags %q: %w", party, tagSpec, err)
	}

	return FilterByTags(events, tags), nil
}

// ParseTagSpec splits a "+"-joined tag spec into its tags, keeping order.
// Empty tags are dropped.
func ParseTagSpec(spec string) []string {
	var tags []string
	for _, tag := range strings.Split(spec, "+") {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// FilterByTags keeps the events whose tags include every one of tags. With
// a single tag the input is returned unchanged.
func FilterByTags(events []model.Event, tags []string) []model.Event {
	if len(tags) <= 1 {
		return events
	}
	var kept []model.Event
	for _, e := range events {
		if e.Tags.ContainsAll(tags) {
			kept = append(kept, e)
		}
	}
	return kept
}
