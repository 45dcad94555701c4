package migrations

// This is a Go migration rather than SQL because autoincrement primary keys
// and floating-point column types are spelled differently per driver
// (INTEGER PRIMARY KEY AUTOINCREMENT for SQLite, BIGSERIAL for PostgreSQL,
// BIGINT AUTO_INCREMENT for MySQL).
//
// descriptions.date is stored as ISO-8601 text (YYYY-MM-DD) in every dialect
// so that exact-match filtering and scanning behave identically across
// drivers.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSchema, downCreateSchema)
}

func upCreateSchema(ctx context.Context, tx *sql.Tx) error {
	var stmts []string
	switch dialect {
	case "postgres":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS users (
    id       BIGSERIAL PRIMARY KEY,
    name     TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS artistes (
    id            BIGSERIAL PRIMARY KEY,
    nom           TEXT,
    genre_musical TEXT
)`,
			`CREATE TABLE IF NOT EXISTS evenements (
    id            BIGSERIAL PRIMARY KEY,
    lieu          TEXT,
    nom_evenement TEXT,
    type          TEXT,
    artiste_id    BIGINT REFERENCES artistes(id),
    longitude     DOUBLE PRECISION,
    latitude      DOUBLE PRECISION,
    photo         TEXT
)`,
			`CREATE TABLE IF NOT EXISTS descriptions (
    id           BIGSERIAL PRIMARY KEY,
    evenement_id BIGINT REFERENCES evenements(id),
    titre        TEXT,
    image        TEXT,
    date         TEXT,
    ville        TEXT,
    description  TEXT
)`,
			`CREATE INDEX IF NOT EXISTS evenements_artiste_idx ON evenements (artiste_id)`,
			`CREATE INDEX IF NOT EXISTS descriptions_evenement_idx ON descriptions (evenement_id)`,
		}
	case "mysql":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS users (
    id       BIGINT AUTO_INCREMENT PRIMARY KEY,
    name     VARCHAR(255) NOT NULL UNIQUE,
    password VARCHAR(255) NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS artistes (
    id            BIGINT AUTO_INCREMENT PRIMARY KEY,
    nom           VARCHAR(255),
    genre_musical VARCHAR(255)
)`,
			`CREATE TABLE IF NOT EXISTS evenements (
    id            BIGINT AUTO_INCREMENT PRIMARY KEY,
    lieu          VARCHAR(255),
    nom_evenement VARCHAR(255),
    type          VARCHAR(255),
    artiste_id    BIGINT,
    longitude     DOUBLE,
    latitude      DOUBLE,
    photo         VARCHAR(1024),
    FOREIGN KEY (artiste_id) REFERENCES artistes(id)
)`,
			`CREATE TABLE IF NOT EXISTS descriptions (
    id           BIGINT AUTO_INCREMENT PRIMARY KEY,
    evenement_id BIGINT,
    titre        VARCHAR(255),
    image        VARCHAR(1024),
    date         VARCHAR(10),
    ville        VARCHAR(255),
    description  TEXT,
    FOREIGN KEY (evenement_id) REFERENCES evenements(id)
)`,
			// MySQL has no IF NOT EXISTS for CREATE INDEX; versioned
			// migrations run once, so the bare form is safe.
			`CREATE INDEX evenements_artiste_idx ON evenements (artiste_id)`,
			`CREATE INDEX descriptions_evenement_idx ON descriptions (evenement_id)`,
		}
	default: // sqlite3
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS users (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS artistes (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    nom           TEXT,
    genre_musical TEXT
)`,
			`CREATE TABLE IF NOT EXISTS evenements (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    lieu          TEXT,
    nom_evenement TEXT,
    type          TEXT,
    artiste_id    INTEGER REFERENCES artistes(id),
    longitude     REAL,
    latitude      REAL,
    photo         TEXT
)`,
			`CREATE TABLE IF NOT EXISTS descriptions (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    evenement_id INTEGER REFERENCES evenements(id),
    titre        TEXT,
    image        TEXT,
    date         TEXT,
    ville        TEXT,
    description  TEXT
)`,
			`CREATE INDEX IF NOT EXISTS evenements_artiste_idx ON evenements (artiste_id)`,
			`CREATE INDEX IF NOT EXISTS descriptions_evenement_idx ON descriptions (evenement_id)`,
		}
	}

	for _, ddl := range stmts {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

func downCreateSchema(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"descriptions", "evenements", "artistes", "users"} {
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
			return err
		}
	}
	return nil
}
