package api_test

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/m02xime/fesipopApi/internal/api"
	"github.com/m02xime/fesipopApi/internal/auth"
	"github.com/m02xime/fesipopApi/internal/store"
	"github.com/m02xime/fesipopApi/internal/testutil"
)

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router           http.Handler
	JWT              *auth.JWTManager
	UserStore        *store.UserStore
	ArtistStore      *store.ArtistStore
	EventStore       *store.EventStore
	DescriptionStore *store.DescriptionStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	users := store.NewUserStore(db)
	artists := store.NewArtistStore(db)
	events := store.NewEventStore(db)
	descriptions := store.NewDescriptionStore(db)
	jwt := auth.NewJWTManager([]string{"test-secret"}, time.Hour, "fesipop")

	router := api.NewRouter(api.Deps{
		Logger:           zerolog.Nop(),
		AuthMiddleware:   auth.NewMiddleware(jwt),
		JWT:              jwt,
		UserStore:        users,
		ArtistStore:      artists,
		EventStore:       events,
		DescriptionStore: descriptions,
	})

	return &testEnv{
		Router:           router,
		JWT:              jwt,
		UserStore:        users,
		ArtistStore:      artists,
		EventStore:       events,
		DescriptionStore: descriptions,
	}
}

// seedUser creates a user with the given password and returns the name.
func seedUser(t *testing.T, env *testEnv, name, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := env.UserStore.Create(context.Background(), name, hash); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return name
}

// seedToken returns a bearer token for the given user name.
func seedToken(t *testing.T, env *testEnv, name string) string {
	t.Helper()
	token, err := env.JWT.Generate(name)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// seedArtist inserts an artist and returns its id.
func seedArtist(t *testing.T, env *testEnv, nom, genre string) int64 {
	t.Helper()
	id, err := env.ArtistStore.Create(context.Background(), nom, genre)
	if err != nil {
		t.Fatalf("seed artist: %v", err)
	}
	return id
}

// seedEvent inserts an event owned by the given artist and returns its id.
func seedEvent(t *testing.T, env *testEnv, artistID int64, nom string) int64 {
	t.Helper()
	id, err := env.EventStore.Create(context.Background(), &store.Event{
		Lieu:         "Bercy",
		NomEvenement: nom,
		Type:         "concert",
		ArtisteID:    sql.NullInt64{Int64: artistID, Valid: true},
		Longitude:    2.37,
		Latitude:     48.83,
		Photo:        "photo.jpg",
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return id
}

// seedDescription inserts a description for the given event and returns its id.
func seedDescription(t *testing.T, env *testEnv, eventID int64, ville, date string) int64 {
	t.Helper()
	id, err := env.DescriptionStore.Create(context.Background(), &store.Description{
		EvenementID: eventID,
		Titre:       "titre",
		Image:       "image.jpg",
		Date:        date,
		Ville:       ville,
		Description: "texte",
	})
	if err != nil {
		t.Fatalf("seed description: %v", err)
	}
	return id
}

// authRequest adds a bearer token to the request.
func authRequest(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}
