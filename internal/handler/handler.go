// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/Shivanand-hulikatti/party-events/internal/model"
	"github.com/Shivanand-hulikatti/party-events/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ─── Response boundary ────────────────────────────────────────────────────────

// writeJSON is the only place a response is written; every body is JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// pathParam returns the decoded value of a route parameter. chi hands back
// the raw segment when the request path carries escapes like %2B.
func pathParam(r *http.Request, name string) (string, error) {
	return url.PathUnescape(chi.URLParam(r, name))
}

// ─── Parties ──────────────────────────────────────────────────────────────────

// PartyHandler serves the party endpoints.
type PartyHandler struct {
	svc *service.PartyService
	log zerolog.Logger
}

// NewPartyHandler constructs a PartyHandler.
func NewPartyHandler(svc *service.PartyService, log zerolog.Logger) *PartyHandler {
	return &PartyHandler{svc: svc, log: log}
}

// ListParties handles GET /api/parties
// Returns every active party.
func (h *PartyHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	parties, err := h.svc.ListActive(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("error when fetching parties")
		writeError(w, http.StatusInternalServerError, "Error when fetching parties. Please check service status.")
		return
	}

	writeJSON(w, http.StatusOK, model.PublicParties(parties))
}

// GetParty handles GET /api/parties/{party}
// Returns the active party or JSON null when there is none.
func (h *PartyHandler) GetParty(w http.ResponseWriter, r *http.Request) {
	partyID, err := pathParam(r, "party")
	if err != nil {
		writeError(w, http.StatusNotFound, "Defined party does not meet requirements: "+chi.URLParam(r, "party"))
		return
	}

	party, err := h.svc.GetActive(r.Context(), partyID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			h.log.Warn().Str("party", partyID).Msg("party does not match requirements and cannot exist")
			writeError(w, http.StatusNotFound, "Defined party does not meet requirements: "+partyID)
			return
		}
		h.log.Error().Err(err).Str("party", partyID).Msg("error when fetching party")
		writeError(w, http.StatusInternalServerError, "Error when fetching party. Please check service status.")
		return
	}

	if party == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, party.Public())
}

// ─── Events ───────────────────────────────────────────────────────────────────

// EventHandler serves the event endpoints.
type EventHandler struct {
	svc *service.EventService
	log zerolog.Logger
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc *service.EventService, log zerolog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: log}
}

// ListEvents handles GET /api/parties/{party}/events
// Returns every event of the party.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	party, err := pathParam(r, "party")
	if err != nil {
		writeError(w, http.StatusNotFound, "Malformed party: "+chi.URLParam(r, "party"))
		return
	}

	events, err := h.svc.ListByParty(r.Context(), party)
	if err != nil {
		h.log.Error().Err(err).Str("party", party).Msg("error when fetching events")
		writeError(w, http.StatusInternalServerError, "Error when fetching events for party "+party)
		return
	}

	writeJSON(w, http.StatusOK, model.PublicEvents(events))
}

// ListTaggedEvents handles GET /api/parties/{party}/events/tags/{tags}
// Returns the events of the party carrying every "+"-joined tag.
func (h *EventHandler) ListTaggedEvents(w http.ResponseWriter, r *http.Request) {
	party, err := pathParam(r, "party")
	if err != nil {
		writeError(w, http.StatusNotFound, "Defined party or tags do not meet requirements: "+chi.URLParam(r, "party"))
		return
	}
	tags, err := pathParam(r, "tags")
	if err != nil {
		writeError(w, http.StatusNotFound, "Defined party or tags do not meet requirements: "+party)
		return
	}

	events, err := h.svc.ListByTags(r.Context(), party, tags)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			h.log.Warn().Str("party", party).Str("tags", tags).Msg("party or tags do not match requirements and cannot exist")
			writeError(w, http.StatusNotFound, "Defined party or tags do not meet requirements: "+party)
			return
		}
		h.log.Error().Err(err).Str("party", party).Str("tags", tags).Msg("error when fetching events")
		writeError(w, http.StatusInternalServerError, "Error when fetching events for party "+party)
		return
	}

	writeJSON(w, http.StatusOK, model.PublicEvents(events))
}

// ─── Status ───────────────────────────────────────────────────────────────────

// Status handles GET /api/status
func Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Status{Status: "OK", ServerTime: time.Now().UnixMilli()})
}
