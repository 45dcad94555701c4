package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m02xime/fesipopApi/internal/api"
)

func TestDescriptions_List_Empty(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest("GET", "/descriptions", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want empty array", got)
	}
}

func TestDescriptions_Create_Get(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice", "s3cret")
	token := seedToken(t, env, user)
	artistID := seedArtist(t, env, "Stromae", "pop")
	eventID := seedEvent(t, env, artistID, "Soiree Pop")

	body := fmt.Sprintf(`{
		"evenement_id": %d,
		"titre": "Grande soiree",
		"image": "affiche.jpg",
		"date": "2024-06-01",
		"ville": "Paris",
		"description": "Une soiree inoubliable"
	}`, eventID)
	req := httptest.NewRequest("POST", "/descriptions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var msg api.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Message != "Description added!" {
		t.Errorf("message = %q", msg.Message)
	}

	// The id path segment on GET is the event id, not the description's
	// own primary key.
	req = httptest.NewRequest("GET", fmt.Sprintf("/descriptions/%d", eventID), nil)
	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var d api.DescriptionResponse
	if err := json.NewDecoder(rec.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.EvenementID != eventID || d.Titre != "Grande soiree" || d.Date != "2024-06-01" ||
		d.Ville != "Paris" || d.Description != "Une soiree inoubliable" {
		t.Errorf("round-trip mismatch: %+v", d)
	}
}

func TestDescriptions_Get_ByEventID_FirstMatch(t *testing.T) {
	env := newTestEnv(t)
	artistID := seedArtist(t, env, "Stromae", "pop")
	eventID := seedEvent(t, env, artistID, "Soiree Pop")
	first := seedDescription(t, env, eventID, "Paris", "2024-06-01")
	seedDescription(t, env, eventID, "Lyon", "2024-06-02")

	req := httptest.NewRequest("GET", fmt.Sprintf("/descriptions/%d", eventID), nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var d api.DescriptionResponse
	if err := json.NewDecoder(rec.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Two descriptions share the event; the lowest id wins.
	if d.ID != first {
		t.Errorf("id = %d, want %d", d.ID, first)
	}
	if d.Ville != "Paris" {
		t.Errorf("ville = %q, want Paris", d.Ville)
	}
}

func TestDescriptions_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest("GET", "/descriptions/999", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "Description not found" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestDescriptions_Update_ByOwnID(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice", "s3cret")
	token := seedToken(t, env, user)
	artistID := seedArtist(t, env, "Stromae", "pop")
	eventID := seedEvent(t, env, artistID, "Soiree Pop")
	descID := seedDescription(t, env, eventID, "Paris", "2024-06-01")

	body := fmt.Sprintf(`{
		"evenement_id": %d,
		"titre": "Titre revu",
		"image": "nouvelle.jpg",
		"date": "2024-07-14",
		"ville": "Marseille",
		"description": "Programme mis a jour"
	}`, eventID)
	// Update addresses the description by its own primary key.
	req := httptest.NewRequest("PUT", fmt.Sprintf("/descriptions/%d", descID), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var msg api.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Message != "Description updated!" {
		t.Errorf("message = %q", msg.Message)
	}

	req = httptest.NewRequest("GET", fmt.Sprintf("/descriptions/%d", eventID), nil)
	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	var d api.DescriptionResponse
	if err := json.NewDecoder(rec.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Ville != "Marseille" || d.Date != "2024-07-14" || d.Titre != "Titre revu" {
		t.Errorf("update not applied: %+v", d)
	}
}

func TestDescriptions_Delete(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice", "s3cret")
	token := seedToken(t, env, user)
	artistID := seedArtist(t, env, "Stromae", "pop")
	eventID := seedEvent(t, env, artistID, "Soiree Pop")
	descID := seedDescription(t, env, eventID, "Paris", "2024-06-01")

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/descriptions/%d", descID), nil)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var msg api.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Message != "Description deleted!" {
		t.Errorf("message = %q", msg.Message)
	}

	req = httptest.NewRequest("GET", fmt.Sprintf("/descriptions/%d", eventID), nil)
	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDescriptions_Create_MissingField(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice", "s3cret")
	token := seedToken(t, env, user)

	// No ville.
	body := `{"evenement_id":1,"titre":"x","image":"x","date":"2024-06-01","description":"x"}`
	req := httptest.NewRequest("POST", "/descriptions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "ville is required" {
		t.Errorf("error = %q", resp.Error)
	}
}
