package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/m02xime/fesipopApi/docs/swagger"
	"github.com/m02xime/fesipopApi/internal/auth"
	"github.com/m02xime/fesipopApi/internal/store"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Logger           zerolog.Logger
	AuthMiddleware   *auth.Middleware
	JWT              *auth.JWTManager
	UserStore        *store.UserStore
	ArtistStore      *store.ArtistStore
	EventStore       *store.EventStore
	DescriptionStore *store.DescriptionStore
}

// NewRouter assembles the full chi router with all middleware and routes.
// Reads are public; every write goes through the bearer-token middleware.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	// Browser frontends call the API from other origins, so CORS is open
	// to any origin. Authorization must be listed or preflighted writes
	// are blocked by the browser.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(RequestLogging(deps.Logger))
	r.Use(middleware.Recoverer)

	// Unmatched routes and disallowed methods get the framework envelope
	// instead of chi's plain-text defaults.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeHTTPError(w, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeHTTPError(w, http.StatusMethodNotAllowed)
	})

	authH := &authHandler{users: deps.UserStore, jwt: deps.JWT, log: deps.Logger}
	artistsH := &artistsHandler{artists: deps.ArtistStore, log: deps.Logger}
	eventsH := &eventsHandler{events: deps.EventStore, artists: deps.ArtistStore, log: deps.Logger}
	descriptionsH := &descriptionsHandler{descriptions: deps.DescriptionStore, log: deps.Logger}

	// The root greeting is the only non-JSON response.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello, fesipop!"))
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Post("/login", authH.Login)

	// Public reads. /evenements/search must be registered alongside
	// /evenements/{id}; chi prefers the static segment.
	r.Get("/evenements", eventsH.List)
	r.Get("/evenements/search", eventsH.Search)
	r.Get("/evenements/{id}", eventsH.Get)
	r.Get("/artistes", artistsH.List)
	r.Get("/artistes/{id}", artistsH.Get)
	r.Get("/descriptions", descriptionsH.List)
	r.Get("/descriptions/{id}", descriptionsH.Get)

	// Token-gated writes (and the token probe).
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireToken)

		r.Get("/protected", authH.Protected)

		r.Post("/evenements", eventsH.Create)
		r.Put("/evenements/{id}", eventsH.Update)
		r.Delete("/evenements/{id}", eventsH.Delete)

		r.Post("/artistes", artistsH.Create)
		r.Put("/artistes/{id}", artistsH.Update)
		r.Delete("/artistes/{id}", artistsH.Delete)

		r.Post("/descriptions", descriptionsH.Create)
		r.Put("/descriptions/{id}", descriptionsH.Update)
		r.Delete("/descriptions/{id}", descriptionsH.Delete)
	})

	return r
}
