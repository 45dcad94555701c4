package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/m02xime/fesipopApi/internal/metrics"
	"github.com/m02xime/fesipopApi/internal/store"
)

type eventsHandler struct {
	events  *store.EventStore
	artists *store.ArtistStore
	log     zerolog.Logger
}

// toEventResponse resolves the event's artist and embeds it. A null or
// dangling artiste_id yields "artiste": null rather than failing the whole
// response.
func (h *eventsHandler) toEventResponse(r *http.Request, e *store.Event) (*EventResponse, error) {
	resp := &EventResponse{
		ID:           e.ID,
		Lieu:         e.Lieu,
		NomEvenement: e.NomEvenement,
		Type:         e.Type,
		Longitude:    e.Longitude,
		Latitude:     e.Latitude,
		Photo:        e.Photo,
	}
	if e.ArtisteID.Valid {
		a, err := h.artists.GetByID(r.Context(), e.ArtisteID.Int64)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		if a != nil {
			resp.Artiste = toArtistResponse(a)
		}
	}
	return resp, nil
}

// List returns every event with its artist embedded.
// GET /evenements
//
// @Summary      List events
// @Tags         Events
// @Produce      json
// @Success      200  {array}   EventResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /evenements [get]
func (h *eventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list events")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	resp := make([]*EventResponse, 0, len(events))
	for _, e := range events {
		er, err := h.toEventResponse(r, e)
		if err != nil {
			h.log.Error().Err(err).Msg("list events: resolve artist")
			writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
			return
		}
		resp = append(resp, er)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single event by id with its artist embedded.
// GET /evenements/{id}
//
// @Summary      Get an event
// @Tags         Events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  EventResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /evenements/{id} [get]
func (h *eventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	e, err := h.events.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Evenement not found", codeNotFound)
			return
		}
		h.log.Error().Err(err).Msg("get event")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	er, err := h.toEventResponse(r, e)
	if err != nil {
		h.log.Error().Err(err).Msg("get event: resolve artist")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, er)
}

// Create inserts a new event.
// POST /evenements
//
// @Summary      Create an event
// @Tags         Events
// @Accept       json
// @Produce      json
// @Param        body  body      EventRequest  true  "Event fields"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /evenements [post]
func (h *eventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEventRequest(w, r)
	if !ok {
		return
	}

	e := eventFromRequest(req, 0)
	if _, err := h.events.Create(r.Context(), e); err != nil {
		h.log.Error().Err(err).Msg("create event")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Evenement added!"})
}

// Update fully replaces an event's fields.
// PUT /evenements/{id}
//
// @Summary      Update an event
// @Description  Full replace: every field is overwritten from the body.
// @Tags         Events
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Event ID"
// @Param        body  body      EventRequest  true  "Event fields"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /evenements/{id} [put]
func (h *eventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if _, err := h.events.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Evenement not found", codeNotFound)
			return
		}
		h.log.Error().Err(err).Msg("update event: lookup")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	req, ok := decodeEventRequest(w, r)
	if !ok {
		return
	}

	if err := h.events.Update(r.Context(), eventFromRequest(req, id)); err != nil {
		h.log.Error().Err(err).Msg("update event")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Evenement updated!"})
}

// Delete removes an event. Deleting an event still referenced by
// descriptions fails at the storage layer when the driver enforces foreign
// keys.
// DELETE /evenements/{id}
//
// @Summary      Delete an event
// @Tags         Events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /evenements/{id} [delete]
func (h *eventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if _, err := h.events.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Evenement not found", codeNotFound)
			return
		}
		h.log.Error().Err(err).Msg("delete event: lookup")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	if err := h.events.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Msg("delete event")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Evenement deleted!"})
}

// Search filters events by a free-text term and/or an exact description
// date. Events without descriptions never match; see store.EventStore.Search.
// GET /evenements/search?search_term=...&date=YYYY-MM-DD
//
// @Summary      Search events
// @Description  Case-insensitive substring match across artist name, artist genre, description city, and event name, optionally filtered by exact description date.
// @Tags         Events
// @Produce      json
// @Param        search_term  query     string  false  "Free-text term"
// @Param        date         query     string  false  "Exact date (YYYY-MM-DD)"
// @Success      200  {array}   EventSearchResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /evenements/search [get]
func (h *eventsHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search_term")
	date := r.URL.Query().Get("date")

	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", date), codeValidation)
			return
		}
	}

	metrics.SearchesTotal.Inc()
	events, err := h.events.Search(r.Context(), term, date)
	if err != nil {
		h.log.Error().Err(err).Msg("search events")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	resp := make([]*EventSearchResponse, 0, len(events))
	for _, e := range events {
		sr := &EventSearchResponse{
			ID:           e.ID,
			Lieu:         e.Lieu,
			NomEvenement: e.NomEvenement,
			Type:         e.Type,
			Longitude:    e.Longitude,
			Latitude:     e.Latitude,
			Photo:        e.Photo,
		}
		if e.ArtisteID.Valid {
			id := e.ArtisteID.Int64
			sr.ArtisteID = &id
		}
		resp = append(resp, sr)
	}
	writeJSON(w, http.StatusOK, resp)
}

func eventFromRequest(req *EventRequest, id int64) *store.Event {
	return &store.Event{
		ID:           id,
		Lieu:         *req.Lieu,
		NomEvenement: *req.NomEvenement,
		Type:         *req.Type,
		ArtisteID:    sql.NullInt64{Int64: *req.ArtisteID, Valid: true},
		Longitude:    *req.Longitude,
		Latitude:     *req.Latitude,
		Photo:        *req.Photo,
	}
}

// decodeEventRequest decodes the body and rejects any missing field:
// updates are full replaces, so every field is required on both create and
// update.
func decodeEventRequest(w http.ResponseWriter, r *http.Request) (*EventRequest, bool) {
	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeValidation)
		return nil, false
	}
	required := []struct {
		field   string
		present bool
	}{
		{"lieu", req.Lieu != nil},
		{"nom_evenement", req.NomEvenement != nil},
		{"type", req.Type != nil},
		{"artiste_id", req.ArtisteID != nil},
		{"longitude", req.Longitude != nil},
		{"latitude", req.Latitude != nil},
		{"photo", req.Photo != nil},
	}
	for _, f := range required {
		if !f.present {
			writeError(w, http.StatusBadRequest, f.field+" is required", codeValidation)
			return nil, false
		}
	}
	return &req, true
}
