package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/m02xime/fesipopApi/internal/store"
)

type artistsHandler struct {
	artists *store.ArtistStore
	log     zerolog.Logger
}

func toArtistResponse(a *store.Artist) *ArtistResponse {
	return &ArtistResponse{ID: a.ID, Nom: a.Nom, GenreMusical: a.GenreMusical}
}

// idParam parses the {id} route parameter. Routes only exist for integer
// ids, so a non-numeric id gets the framework 404 envelope rather than an
// application error.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeHTTPError(w, http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// List returns every artist.
// GET /artistes
//
// @Summary      List artists
// @Tags         Artists
// @Produce      json
// @Success      200  {array}   ArtistResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /artistes [get]
func (h *artistsHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artists.ListAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list artists")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	resp := make([]*ArtistResponse, 0, len(artists))
	for _, a := range artists {
		resp = append(resp, toArtistResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single artist by id.
// GET /artistes/{id}
//
// @Summary      Get an artist
// @Tags         Artists
// @Produce      json
// @Param        id   path      int  true  "Artist ID"
// @Success      200  {object}  ArtistResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /artistes/{id} [get]
func (h *artistsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	a, err := h.artists.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Artiste not found", codeNotFound)
			return
		}
		h.log.Error().Err(err).Msg("get artist")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, toArtistResponse(a))
}

// Create inserts a new artist.
// POST /artistes
//
// @Summary      Create an artist
// @Tags         Artists
// @Accept       json
// @Produce      json
// @Param        body  body      ArtistRequest  true  "Artist fields"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /artistes [post]
func (h *artistsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeArtistRequest(w, r)
	if !ok {
		return
	}

	if _, err := h.artists.Create(r.Context(), *req.Nom, *req.GenreMusical); err != nil {
		h.log.Error().Err(err).Msg("create artist")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Artiste added!"})
}

// Update fully replaces an artist's fields.
// PUT /artistes/{id}
//
// @Summary      Update an artist
// @Description  Full replace: every field is overwritten from the body.
// @Tags         Artists
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Artist ID"
// @Param        body  body      ArtistRequest  true  "Artist fields"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /artistes/{id} [put]
func (h *artistsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if _, err := h.artists.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Artiste not found", codeNotFound)
			return
		}
		h.log.Error().Err(err).Msg("update artist: lookup")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	req, ok := decodeArtistRequest(w, r)
	if !ok {
		return
	}

	if err := h.artists.Update(r.Context(), id, *req.Nom, *req.GenreMusical); err != nil {
		h.log.Error().Err(err).Msg("update artist")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Artiste updated!"})
}

// Delete removes an artist. Deleting an artist still referenced by events
// fails at the storage layer when the driver enforces foreign keys.
// DELETE /artistes/{id}
//
// @Summary      Delete an artist
// @Tags         Artists
// @Produce      json
// @Param        id   path      int  true  "Artist ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /artistes/{id} [delete]
func (h *artistsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if _, err := h.artists.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Artiste not found", codeNotFound)
			return
		}
		h.log.Error().Err(err).Msg("delete artist: lookup")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	if err := h.artists.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Msg("delete artist")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Artiste deleted!"})
}

// decodeArtistRequest decodes the body and rejects any missing field.
func decodeArtistRequest(w http.ResponseWriter, r *http.Request) (*ArtistRequest, bool) {
	var req ArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", codeValidation)
		return nil, false
	}
	required := []struct {
		field   string
		present bool
	}{
		{"nom", req.Nom != nil},
		{"genre_musical", req.GenreMusical != nil},
	}
	for _, f := range required {
		if !f.present {
			writeError(w, http.StatusBadRequest, f.field+" is required", codeValidation)
			return nil, false
		}
	}
	return &req, true
}
