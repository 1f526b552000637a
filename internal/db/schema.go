package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS articles (
	    id UUID PRIMARY KEY,
	    title TEXT NOT NULL,
	    excerpt TEXT NOT NULL,
	    category TEXT NOT NULL,
	    content TEXT NOT NULL DEFAULT '',
	    published_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS users (
	    id UUID PRIMARY KEY,
	    name TEXT NOT NULL,
	    email TEXT NOT NULL UNIQUE,
	    country TEXT NOT NULL,
	    password_hash TEXT NOT NULL,
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS admins (
	    id UUID PRIMARY KEY,
	    username TEXT NOT NULL UNIQUE,
	    password_hash TEXT NOT NULL,
	    must_change_password BOOLEAN NOT NULL DEFAULT true,
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS contacts (
	    id UUID PRIMARY KEY,
	    name TEXT NOT NULL,
	    email TEXT NOT NULL,
	    subject TEXT NOT NULL,
	    message TEXT NOT NULL,
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS investor_inquiries (
	    id UUID PRIMARY KEY,
	    name TEXT NOT NULL,
	    email TEXT NOT NULL,
	    company TEXT NOT NULL DEFAULT '',
	    investment_range TEXT NOT NULL DEFAULT '',
	    message TEXT NOT NULL DEFAULT '',
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS chat_logs (
	    id UUID PRIMARY KEY,
	    user_id UUID NOT NULL,
	    realm TEXT NOT NULL,
	    message TEXT NOT NULL,
	    response TEXT NOT NULL,
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
}

// Migrate creates missing tables.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// SeedAdmin creates the bootstrap console account when no admin exists
// yet. The account is created with a pending mandatory password change.
func (s *Store) SeedAdmin(ctx context.Context, username, password string) error {
	var count int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	_, err = s.db.Exec(ctx,
		`INSERT INTO admins (id, username, password_hash, must_change_password) VALUES ($1, $2, $3, true)`,
		uuid.NewString(), username, string(hash),
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
