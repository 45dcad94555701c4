package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Event struct {
	ID           int64         `db:"id"`
	Lieu         string        `db:"lieu"`
	NomEvenement string        `db:"nom_evenement"`
	Type         string        `db:"type"`
	ArtisteID    sql.NullInt64 `db:"artiste_id"`
	Longitude    float64       `db:"longitude"`
	Latitude     float64       `db:"latitude"`
	Photo        string        `db:"photo"`
}

type EventStore struct {
	db *sqlx.DB
}

func NewEventStore(db *sqlx.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) q(query string) string { return s.db.Rebind(query) }

func (s *EventStore) ListAll(ctx context.Context) ([]*Event, error) {
	events := []*Event{}
	err := s.db.SelectContext(ctx, &events, `SELECT * FROM evenements ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventStore) GetByID(ctx context.Context, id int64) (*Event, error) {
	var e Event
	err := s.db.GetContext(ctx, &e, s.q(`SELECT * FROM evenements WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EventStore) Create(ctx context.Context, e *Event) (int64, error) {
	return insertID(ctx, s.db, `
		INSERT INTO evenements (lieu, nom_evenement, type, artiste_id, longitude, latitude, photo)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.Lieu, e.NomEvenement, e.Type, e.ArtisteID, e.Longitude, e.Latitude, e.Photo)
}

// Update replaces every field of the event (full replace, not a patch).
// The caller checks existence first; a missing row is not an error here.
func (s *EventStore) Update(ctx context.Context, e *Event) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE evenements
		SET lieu = ?, nom_evenement = ?, type = ?, artiste_id = ?, longitude = ?, latitude = ?, photo = ?
		WHERE id = ?
	`), e.Lieu, e.NomEvenement, e.Type, e.ArtisteID, e.Longitude, e.Latitude, e.Photo, e.ID)
	return err
}

func (s *EventStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM evenements WHERE id = ?`), id)
	return err
}

// Search returns events matching a free-text term and/or an exact
// description date (ISO YYYY-MM-DD). The term matches case-insensitively as
// a substring against the artist's name and genre, the description's city,
// and the event's name, OR-combined; both filters AND together.
//
// The query inner-joins artistes and descriptions, so an event with no
// description rows (or no artist) never appears in the results even when
// another column would match. That mirrors the behavior existing clients
// depend on.
func (s *EventStore) Search(ctx context.Context, term, date string) ([]*Event, error) {
	query := `
		SELECT DISTINCT e.*
		FROM evenements e
		JOIN artistes a ON a.id = e.artiste_id
		JOIN descriptions d ON d.evenement_id = e.id
	`
	var (
		where []string
		args  []any
	)

	if term != "" {
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		where = append(where, `(`+
			`LOWER(a.nom) LIKE ? ESCAPE '\' OR `+
			`LOWER(a.genre_musical) LIKE ? ESCAPE '\' OR `+
			`LOWER(d.ville) LIKE ? ESCAPE '\' OR `+
			`LOWER(e.nom_evenement) LIKE ? ESCAPE '\'`+
			`)`)
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if date != "" {
		where = append(where, `d.date = ?`)
		args = append(args, date)
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY e.id ASC`

	events := []*Event{}
	if err := s.db.SelectContext(ctx, &events, s.q(query), args...); err != nil {
		return nil, err
	}
	return events, nil
}
