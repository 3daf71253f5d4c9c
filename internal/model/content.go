package model

import (
	"strings"
	"time"
)

// Content is one block of copy on a site page.
type Content struct {
	ID        int       `db:"id"         json:"id"`
	Page      Page      `db:"page"       json:"page"`
	Content   string    `db:"content"    json:"content"`
	ImageURL  string    `db:"image_url"  json:"image_url"`
	Heading   string    `db:"heading"    json:"heading"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// EscapeContent rewrites apostrophes to '#' the way the site renderer expects.
// It is not an injection guard; queries are parameterised.
func EscapeContent(s string) string {
	return strings.ReplaceAll(s, "'", "#")
}
