package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

const contentColumns = `id, page, content, image_url, heading, created_at, updated_at`

func (s *pgStore) CreateContent(page model.Page, content, imageURL, heading string) (model.Content, error) {
	var c model.Content
	query := `
	INSERT INTO contents
	(page, content, image_url, heading, created_at, updated_at)
	VALUES
	($1,   $2,      $3,        $4,      now(),      now())
	RETURNING ` + contentColumns + `;`

	if err := s.db.Get(&c, query, page, content, imageURL, heading); err != nil {
		log.Error().Err(err).Str("page", page.String()).Msg("failed to create content")
		return model.Content{}, fmt.Errorf("create content: %w", err)
	}
	return c, nil
}

func (s *pgStore) GetContentByID(id int) (model.Content, error) {
	var c model.Content
	query := `SELECT ` + contentColumns + ` FROM contents WHERE id = $1;`

	err := s.db.Get(&c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Content{}, sql.ErrNoRows
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get content by id")
		return model.Content{}, fmt.Errorf("get content: %w", err)
	}
	return c, nil
}

func (s *pgStore) ListContentByPage(page model.Page) ([]model.Content, error) {
	all := []model.Content{}
	query := `
	SELECT ` + contentColumns + `
	FROM contents
	WHERE page = $1
	ORDER BY id;
	`
	if err := s.db.Select(&all, query, page); err != nil {
		log.Error().Err(err).Str("page", page.String()).Msg("failed to list content")
		return nil, fmt.Errorf("list content: %w", err)
	}
	return all, nil
}

// UpdateContent overwrites the editable columns and bumps updated_at.
// Callers merge unchanged values in before calling; the last write wins.
func (s *pgStore) UpdateContent(id int, content, imageURL, heading string) (model.Content, error) {
	var c model.Content
	query := `
	UPDATE contents
	SET
	content    = $2,
	image_url  = $3,
	heading    = $4,
	updated_at = now()
	WHERE id = $1
	RETURNING ` + contentColumns + `;`

	err := s.db.Get(&c, query, id, content, imageURL, heading)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Content{}, sql.ErrNoRows
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to update content")
		return model.Content{}, fmt.Errorf("update content: %w", err)
	}
	return c, nil
}
