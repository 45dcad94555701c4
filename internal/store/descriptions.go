package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Description struct {
	ID          int64  `db:"id"`
	EvenementID int64  `db:"evenement_id"`
	Titre       string `db:"titre"`
	Image       string `db:"image"`
	Date        string `db:"date"` // ISO YYYY-MM-DD
	Ville       string `db:"ville"`
	Description string `db:"description"`
}

type DescriptionStore struct {
	db *sqlx.DB
}

func NewDescriptionStore(db *sqlx.DB) *DescriptionStore {
	return &DescriptionStore{db: db}
}

func (s *DescriptionStore) q(query string) string { return s.db.Rebind(query) }

func (s *DescriptionStore) ListAll(ctx context.Context) ([]*Description, error) {
	descriptions := []*Description{}
	err := s.db.SelectContext(ctx, &descriptions, `SELECT * FROM descriptions ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return descriptions, nil
}

// GetByID returns the description with the given primary key, or ErrNotFound.
// Used by update and delete; reads resolve by event instead (GetByEventID).
func (s *DescriptionStore) GetByID(ctx context.Context, id int64) (*Description, error) {
	var d Description
	err := s.db.GetContext(ctx, &d, s.q(`SELECT * FROM descriptions WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByEventID returns the first description attached to the given event, or
// ErrNotFound. "Get a description" means "get the description of event X".
func (s *DescriptionStore) GetByEventID(ctx context.Context, eventID int64) (*Description, error) {
	var d Description
	err := s.db.GetContext(ctx, &d, s.q(`
		SELECT * FROM descriptions WHERE evenement_id = ? ORDER BY id ASC LIMIT 1
	`), eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DescriptionStore) Create(ctx context.Context, d *Description) (int64, error) {
	return insertID(ctx, s.db, `
		INSERT INTO descriptions (evenement_id, titre, image, date, ville, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`, d.EvenementID, d.Titre, d.Image, d.Date, d.Ville, d.Description)
}

// Update replaces every field of the description (full replace, not a patch).
func (s *DescriptionStore) Update(ctx context.Context, d *Description) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE descriptions
		SET evenement_id = ?, titre = ?, image = ?, date = ?, ville = ?, description = ?
		WHERE id = ?
	`), d.EvenementID, d.Titre, d.Image, d.Date, d.Ville, d.Description, d.ID)
	return err
}

func (s *DescriptionStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM descriptions WHERE id = ?`), id)
	return err
}
