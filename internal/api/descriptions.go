package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/m02xime/fesipopApi/internal/store"
)

type descriptionsHandler struct {
	descriptions *store.DescriptionStore
	log          zerolog.Logger
}

func toDescriptionResponse(d *store.Description) *DescriptionResponse {
	return &DescriptionResponse{
		ID:          d.ID,
		EvenementID: d.EvenementID,
		Titre:       d.Titre,
		Image:       d.Image,
		Date:        d.Date,
		Ville:       d.Ville,
		Description: d.Description,
	}
}

// List returns every description.
// GET /descriptions
//
// @Summary      List descriptions
// @Tags         Descriptions
// @Produce      json
// @Success      200  {array}   DescriptionResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /descriptions [get]
func (h *descriptionsHandler) List(w http.ResponseWriter, r *http.Request) {
	descriptions, err := h.descriptions.ListAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list descriptions")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	resp := make([]*DescriptionResponse, 0, len(descriptions))
	for _, d := range descriptions {
		resp = append(resp, toDescriptionResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns the first description belonging to the given EVENT id. The id
// here is an evenement_id, not the description's own primary key: "get
// description {id}" reads as "get the description of event {id}".
// GET /descriptions/{id}
//
// @Summary      Get the description of an event
// @Description  Looks up by event id, returning the event's first description.
// @Tags         Descriptions
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  DescriptionResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /descriptions/{id} [get]
func (h *descriptionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	d, err := h.descriptions.GetByEventID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Description not found", codeNotFound)
			return
		}
		h.log.Error().Err(err).Msg("get description")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, toDescriptionResponse(d))
}

// Create inserts a new description.
// POST /descriptions
//
// @Summary      Create a description
// @Tags         Descriptions
// @Accept       json
// @Produce      json
// @Param        body  body      DescriptionRequest  true  "Description fields"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /descriptions [post]
func (h *descriptionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeDescriptionRequest(w, r)
	if !ok {
		return
	}

	if _, err := h.descriptions.Create(r.Context(), descriptionFromRequest(req, 0)); err != nil {
		h.log.Error().Err(err).Msg("create description")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Description added!"})
}

// Update fully replaces a description's fields. Unlike Get, the id here is
// the description's own primary key.
// PUT /descriptions/{id}
//
// @Summary      Update a description
// @Description  Full replace: every field is overwritten from the body.
// @Tags         Descriptions
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Description ID"
// @Param        body  body      DescriptionRequest  true  "Description fields"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /descriptions/{id} [put]
func (h *descriptionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if _, err := h.descriptions.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Description not found", codeNotFound)
			return
		}
		h.log.Error().Err(err).Msg("update description: lookup")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	req, ok := decodeDescriptionRequest(w, r)
	if !ok {
		return
	}

	if err := h.descriptions.Update(r.Context(), descriptionFromRequest(req, id)); err != nil {
		h.log.Error().Err(err).Msg("update description")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Description updated!"})
}

// Delete removes a description by its primary key.
// DELETE /descriptions/{id}
//
// @Summary      Delete a description
// @Tags         Descriptions
// @Produce      json
// @Param        id   path      int  true  "Description ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /descriptions/{id} [delete]
func (h *descriptionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if _, err := h.descriptions.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Description not found", codeNotFound)
			return
		}
		h.log.Error().Err(err).Msg("delete description: lookup")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	if err := h.descriptions.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Msg("delete description")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Description deleted!"})
}

func descriptionFromRequest(req *DescriptionRequest, id int64) *store.Description {
	return &store.Description{
		ID:          id,
		EvenementID: *req.EvenementID,
		Titre:       *req.Titre,
		Image:       *req.Image,
		Date:        *req.Date,
		Ville:       *req.Ville,
		Description: *req.Description,
	}
}

// decodeDescriptionRequest decodes the body and rejects any missing field.
func decodeDescriptionRequest(w http.ResponseWriter, r *http.Request) (*DescriptionRequest, bool) {
	var req DescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeValidation)
		return nil, false
	}
	required := []struct {
		field   string
		present bool
	}{
		{"evenement_id", req.EvenementID != nil},
		{"titre", req.Titre != nil},
		{"image", req.Image != nil},
		{"date", req.Date != nil},
		{"ville", req.Ville != nil},
		{"description", req.Description != nil},
	}
	for _, f := range required {
		if !f.present {
			writeError(w, http.StatusBadRequest, f.field+" is required", codeValidation)
			return nil, false
		}
	}
	return &req, true
}
