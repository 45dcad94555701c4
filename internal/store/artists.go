package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Artist struct {
	ID           int64  `db:"id"`
	Nom          string `db:"nom"`
	GenreMusical string `db:"genre_musical"`
}

type ArtistStore struct {
	db *sqlx.DB
}

func NewArtistStore(db *sqlx.DB) *ArtistStore {
	return &ArtistStore{db: db}
}

func (s *ArtistStore) q(query string) string { return s.db.Rebind(query) }

func (s *ArtistStore) ListAll(ctx context.Context) ([]*Artist, error) {
	artists := []*Artist{}
	err := s.db.SelectContext(ctx, &artists, `SELECT * FROM artistes ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (s *ArtistStore) GetByID(ctx context.Context, id int64) (*Artist, error) {
	var a Artist
	err := s.db.GetContext(ctx, &a, s.q(`SELECT * FROM artistes WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *ArtistStore) Create(ctx context.Context, nom, genreMusical string) (int64, error) {
	return insertID(ctx, s.db, `
		INSERT INTO artistes (nom, genre_musical) VALUES (?, ?)
	`, nom, genreMusical)
}

// Update replaces every field of the artist. The caller checks existence
// first; a missing row is not an error here.
func (s *ArtistStore) Update(ctx context.Context, id int64, nom, genreMusical string) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE artistes SET nom = ?, genre_musical = ? WHERE id = ?
	`), nom, genreMusical, id)
	return err
}

func (s *ArtistStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM artistes WHERE id = ?`), id)
	return err
}
