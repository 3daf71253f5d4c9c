// exposes a Store interface that is passed to API controllers
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

type Store interface {
	// admin functions
	CreateUser(name, email, hashedPassword string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)

	// content functions
	CreateContent(page model.Page, content, imageURL, heading string) (model.Content, error)
	GetContentByID(id int) (model.Content, error)
	ListContentByPage(page model.Page) ([]model.Content, error)
	UpdateContent(id int, content, imageURL, heading string) (model.Content, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

// NewStore wraps conn; a nil conn falls back to the package-level DB.
func NewStore(conn *sqlx.DB) Store {
	if conn == nil {
		conn = DB
	}
	return &pgStore{db: conn}
}
