package model

import "time"

// User is an admin account. The hash never leaves the server.
type User struct {
	ID             int       `db:"id"              json:"id"`
	Name           string    `db:"name"            json:"name"`
	Email          string    `db:"email"           json:"email"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	CreatedAt      time.Time `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"      json:"updated_at"`
}
