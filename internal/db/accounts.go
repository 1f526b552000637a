package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/halcyon-ai/halcyon/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const query = `
		INSERT INTO users (id, name, email, country, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, name, email, country, password_hash, created_at
	`
	var created models.User
	err := s.db.QueryRow(ctx, query,
		uuid.NewString(), user.Name, user.Email, user.Country, user.PasswordHash,
	).Scan(&created.ID, &created.Name, &created.Email, &created.Country, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &created, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id::text, name, email, country, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	var user models.User
	err := s.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Country, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const query = `
		SELECT id::text, name, email, country, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	var user models.User
	err := s.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Country, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id::text, name, email, country, password_hash, created_at
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Country, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return users, nil
}

func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	const query = `
		SELECT id::text, username, password_hash, must_change_password, created_at
		FROM admins
		WHERE username = $1
	`
	var admin models.Admin
	err := s.db.QueryRow(ctx, query, username).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash, &admin.MustChangePassword, &admin.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by username: %w", err)
	}
	return &admin, nil
}

func (s *Store) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	const query = `
		SELECT id::text, username, password_hash, must_change_password, created_at
		FROM admins
		WHERE id = $1
	`
	var admin models.Admin
	err := s.db.QueryRow(ctx, query, id).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash, &admin.MustChangePassword, &admin.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by id: %w", err)
	}
	return &admin, nil
}

// AdminMustChangePassword reports whether the account still owes its
// mandatory password rotation. Unknown ids read as pending (fail
// closed).
func (s *Store) AdminMustChangePassword(ctx context.Context, id string) (bool, error) {
	var due bool
	err := s.db.QueryRow(ctx, `SELECT must_change_password FROM admins WHERE id = $1`, id).Scan(&due)
	if err != nil {
		if err == pgx.ErrNoRows {
			return true, nil
		}
		return true, fmt.Errorf("check rotation flag: %w", err)
	}
	return due, nil
}

// UpdateAdminPassword stores a new hash and clears the mandatory
// rotation flag in the same statement.
func (s *Store) UpdateAdminPassword(ctx context.Context, id, passwordHash string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE admins SET password_hash = $2, must_change_password = false WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update admin password: admin %s not found", id)
	}
	return nil
}
