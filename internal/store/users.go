package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// User is an authentication account. Users are provisioned out-of-band by
// the seed-user CLI command; there is no signup endpoint and user records
// are never exposed over the API.
type User struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Password string `db:"password"` // bcrypt hash
}

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *UserStore) q(query string) string { return s.db.Rebind(query) }

// GetByName returns the user with the exact name, or ErrNotFound.
func (s *UserStore) GetByName(ctx context.Context, name string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE name = ?`), name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user with the given password hash. The name column is
// unique; inserting a duplicate surfaces the driver's constraint error.
func (s *UserStore) Create(ctx context.Context, name, passwordHash string) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO users (name, password) VALUES (?, ?)
	`), name, passwordHash)
	return err
}
