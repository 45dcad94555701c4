package api

// Request bodies use pointer fields so a missing key can be told apart from
// a zero value: every field of an entity is required on create and update
// (full replace), and the missing field is named in the 400 response.

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// TokenResponse is the success body for POST /login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse acknowledges a successful write.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the application-level error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPErrorResponse is the framework-level error envelope for unmatched
// routes and disallowed methods.
type HTTPErrorResponse struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// --- Artist types ---

// ArtistRequest is the request body for artist create and update.
type ArtistRequest struct {
	Nom          *string `json:"nom"`
	GenreMusical *string `json:"genre_musical"`
}

// ArtistResponse is the JSON representation of an artist, embedded verbatim
// in event responses.
type ArtistResponse struct {
	ID           int64  `json:"id"`
	Nom          string `json:"nom"`
	GenreMusical string `json:"genre_musical"`
}

// --- Event types ---

// EventRequest is the request body for event create and update.
type EventRequest struct {
	Lieu         *string  `json:"lieu"`
	NomEvenement *string  `json:"nom_evenement"`
	Type         *string  `json:"type"`
	ArtisteID    *int64   `json:"artiste_id"`
	Longitude    *float64 `json:"longitude"`
	Latitude     *float64 `json:"latitude"`
	Photo        *string  `json:"photo"`
}

// EventResponse is the JSON representation of an event with its artist
// resolved and embedded. Artiste is null when the event has no live artist.
type EventResponse struct {
	ID           int64           `json:"id"`
	Lieu         string          `json:"lieu"`
	NomEvenement string          `json:"nom_evenement"`
	Type         string          `json:"type"`
	Artiste      *ArtistResponse `json:"artiste"`
	Longitude    float64         `json:"longitude"`
	Latitude     float64         `json:"latitude"`
	Photo        string          `json:"photo"`
}

// EventSearchResponse is the flat event representation returned by search:
// the raw artiste_id instead of an embedded artist.
type EventSearchResponse struct {
	ID           int64   `json:"id"`
	Lieu         string  `json:"lieu"`
	NomEvenement string  `json:"nom_evenement"`
	Type         string  `json:"type"`
	ArtisteID    *int64  `json:"artiste_id"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
	Photo        string  `json:"photo"`
}

// --- Description types ---

// DescriptionRequest is the request body for description create and update.
type DescriptionRequest struct {
	EvenementID *int64  `json:"evenement_id"`
	Titre       *string `json:"titre"`
	Image       *string `json:"image"`
	Date        *string `json:"date"`
	Ville       *string `json:"ville"`
	Description *string `json:"description"`
}

// DescriptionResponse is the JSON representation of a description.
type DescriptionResponse struct {
	ID          int64  `json:"id"`
	EvenementID int64  `json:"evenement_id"`
	Titre       string `json:"titre"`
	Image       string `json:"image"`
	Date        string `json:"date"`
	Ville       string `json:"ville"`
	Description string `json:"description"`
}
