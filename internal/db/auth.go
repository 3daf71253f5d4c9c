package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

// ErrEmailTaken is returned by CreateUser when the unique email index rejects the row.
var ErrEmailTaken = errors.New("email already registered")

// inserts a new admin and returns the stored row.
func (s *pgStore) CreateUser(name, email, hashedPassword string) (*model.User, error) {
	var u model.User
	query := `
	INSERT INTO users (name, email, hashed_password, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id, name, email, hashed_password, created_at, updated_at;
	`
	if err := s.db.Get(&u, query, name, email, hashedPassword); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		log.Error().Err(err).Str("email", email).Msg("failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

// fetches an admin by email, ignoring case. returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, name, email, hashed_password, created_at, updated_at
	FROM users
	WHERE lower(email) = lower($1);
	`
	if err := s.db.Get(&u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by email")
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// fetches an admin by ID. returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, name, email, hashed_password, created_at, updated_at
	FROM users
	WHERE id = $1;
	`
	if err := s.db.Get(&u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Int("id", id).Msg("failed to get user by id")
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}
