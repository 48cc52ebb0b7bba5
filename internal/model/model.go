// Package model defines the core domain types for the party events API.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Party is a venue or gathering that hosts events. Only active parties are
// ever exposed.
type Party struct {
	ID            uuid.UUID
	Shortname     string
	Name          string
	Description   string
	URL           string
	StartsAt      time.Time
	EndsAt        time.Time
	Active        bool
	ContactEmail  string
	InternalNotes string
	CreatedAt     time.Time
}

// EventStatus is the publication state of an event.
type EventStatus string

const (
	EventStatusPublic EventStatus = "public"
	EventStatusDraft  EventStatus = "draft"
	EventStatusHidden EventStatus = "hidden"
)

// Location is where an event takes place inside a party.
type Location struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Event is a scheduled item belonging to exactly one party.
type Event struct {
	ID             uuid.UUID
	Party          string
	Title          string
	Description    string
	Location       Location
	StartsAt       time.Time
	EndsAt         time.Time
	Tags           Tags
	Status         EventStatus
	OrganizerNotes string
	CreatedAt      time.Time
}

// PublicParty is the client-facing view of a Party.
type PublicParty struct {
	ID          uuid.UUID `json:"id"`
	Shortname   string    `json:"shortname"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Active      bool      `json:"active"`
}

// Public projects the party onto its client-facing fields.
func (p *Party) Public() PublicParty {
	return PublicParty{
		ID:          p.ID,
		Shortname:   p.Shortname,
		Name:        p.Name,
		Description: p.Description,
		URL:         p.URL,
		StartsAt:    p.StartsAt,
		EndsAt:      p.EndsAt,
		Active:      p.Active,
	}
}

// PublicEvent is the client-facing view of an Event.
type PublicEvent struct {
	ID          uuid.UUID `json:"id"`
	Party       string    `json:"party"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    Location  `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Tags        Tags      `json:"tags"`
}

// Public projects the event onto its client-facing fields.
func (e *Event) Public() PublicEvent {
	tags := e.Tags
	if tags == nil {
		tags = Tags{}
	}
	return PublicEvent{
		ID:          e.ID,
		Party:       e.Party,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		Tags:        tags,
	}
}

// PublicParties projects a slice of parties. The result is never nil.
func PublicParties(parties []Party) []PublicParty {
	out := make([]PublicParty, 0, len(parties))
	for i := range parties {
		out = append(out, parties[i].Public())
	}
	return out
}

// PublicEvents projects a slice of events. The result is never nil.
func PublicEvents(events []Event) []PublicEvent {
	out := make([]PublicEvent, 0, len(events))
	for i := range events {
		out = append(out, events[i].Public())
	}
	return out
}

// Status is the body of the service status endpoint.
type Status struct {
	Status     string `json:"status"`
	ServerTime int64  `json:"server_time"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
