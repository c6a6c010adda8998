package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migration is one named DDL step applied on startup.
type migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// migrate applies all startup migrations in order.
func (db *DB) migrate(ctx context.Context) error {
	migrations := []migration{
		{Name: "create_user_resumes", Up: createUserResumes},
		{Name: "create_users", Up: createUsers},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, db.pool); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.Name, err)
		}
		log.Printf("migration completed: %s", m.Name)
	}
	return nil
}

func createUserResumes(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_resumes (
			id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			resume_id      TEXT UNIQUE NOT NULL,
			resume_title   TEXT NOT NULL DEFAULT '',
			candidate_name TEXT NOT NULL DEFAULT '',
			job_title      TEXT NOT NULL DEFAULT '',
			address        TEXT NOT NULL DEFAULT '',
			phone          TEXT NOT NULL DEFAULT '',
			email          TEXT NOT NULL DEFAULT '',
			linkedin       TEXT NOT NULL DEFAULT '',
			github         TEXT NOT NULL DEFAULT '',
			summary        TEXT NOT NULL DEFAULT '',
			education      JSONB NOT NULL DEFAULT '[]',
			experience     JSONB NOT NULL DEFAULT '[]',
			projects       JSONB NOT NULL DEFAULT '[]',
			skills         TEXT NOT NULL DEFAULT '',
			theme_color    TEXT NOT NULL DEFAULT '#3357FF',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			published_at   TIMESTAMPTZ
		)`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS idx_user_resumes_email ON user_resumes (email)`)
	return err
}

func createUsers(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name          TEXT NOT NULL,
			email         TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}
