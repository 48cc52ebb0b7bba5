// Package repository implements all database queries for the party events API.
// It uses pgx directly (no ORM) and only ever reads.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/party-events/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

const partyColumns = `id, shortname, name, description, url, starts_at, ends_at,
	active, contact_email, internal_notes, created_at`

const eventColumns = `id, party, title, description, location_name, location_url, location_description,
	starts_at, ends_at, tags, status, organizer_notes, created_at`

// PartyRepository reads parties.
type PartyRepository struct {
	db *pgxpool.Pool
}

// NewPartyRepository constructs a PartyRepository.
func NewPartyRepository(db *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{db: db}
}

// ListActive returns every active party ordered by start time.
func (r *PartyRepository) ListActive(ctx context.Context) ([]model.Party, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+partyColumns+`
		 FROM parties
		 WHERE active = true
		 ORDER BY starts_at ASC, shortname ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	var parties []model.Party
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		parties = append(parties, p)
	}
	return parties, rows.Err()
}

// GetActiveByShortname returns the active party with the given shortname or
// ErrNotFound.
func (r *PartyRepository) GetActiveByShortname(ctx context.Context, shortname string) (*model.Party, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+partyColumns+`
		 FROM parties
		 WHERE shortname = $1 AND active = true`,
		shortname,
	)
	p, err := scanParty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanParty(row pgx.Row) (model.Party, error) {
	var p model.Party
	err := row.Scan(
		&p.ID, &p.Shortname, &p.Name, &p.Description, &p.URL, &p.StartsAt, &p.EndsAt,
		&p.Active, &p.ContactEmail, &p.InternalNotes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("scan party: %w", err)
	}
	return p, nil
}

// EventRepository reads events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// ListByParty returns the public events of a party ordered by start time.
func (r *EventRepository) ListByParty(ctx context.Context, party string) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE party = $1 AND status = $2
		 ORDER BY starts_at ASC, id ASC`,
		party, string(model.EventStatusPublic),
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return collectEvents(rows)
}

// ListByPartyAndTag returns the public events of a party carrying tag as
// one of their tokens, ordered by start time.
func (r *EventRepository) ListByPartyAndTag(ctx context.Context, party, tag string) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE party = $1 AND status = $2 AND $3 = ANY(tags)
		 ORDER BY starts_at ASC, id ASC`,
		party, string(model.EventStatusPublic), tag,
	)
	if err != nil {
		return nil, fmt.Errorf("list events by tag: %w", err)
	}
	return collectEvents(rows)
}

func collectEvents(rows pgx.Rows) ([]model.Event, error) {
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var (
			e      model.Event
			tags   []string
			status string
		)
		if err := rows.Scan(
			&e.ID, &e.Party, &e.Title, &e.Description, &e.Location.Name, &e.Location.URL, &e.Location.Description,
			&e.StartsAt, &e.EndsAt, &tags, &status, &e.OrganizerNotes, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Tags = model.Tags(tags)
		e.Status = model.EventStatus(status)
		events = append(events, e)
	}
	return events, rows.Err()
}
