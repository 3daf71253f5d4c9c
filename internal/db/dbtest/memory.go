// Package dbtest provides an in-memory db.Store for handler tests.
package dbtest

import (
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Nixie-Tech-LLC/playhouse/internal/db"
	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

type MemoryStore struct {
	mu       sync.Mutex
	users    map[int]model.User
	contents map[int]model.Content
	nextUser int
	nextRow  int

	// FailWith makes every write return this error when set.
	FailWith error
}

var _ db.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    map[int]model.User{},
		contents: map[int]model.Content{},
	}
}

func (m *MemoryStore) CreateUser(name, email, hashedPassword string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return nil, db.ErrEmailTaken
		}
	}
	m.nextUser++
	now := time.Now()
	u := model.User{
		ID:             m.nextUser,
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.users[u.ID] = u
	return &u, nil
}

func (m *MemoryStore) GetUserByEmail(email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MemoryStore) GetUserByID(id int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (m *MemoryStore) CreateContent(page model.Page, content, imageURL, heading string) (model.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return model.Content{}, m.FailWith
	}
	m.nextRow++
	now := time.Now()
	c := model.Content{
		ID:        m.nextRow,
		Page:      page,
		Content:   content,
		ImageURL:  imageURL,
		Heading:   heading,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.contents[c.ID] = c
	return c, nil
}

func (m *MemoryStore) GetContentByID(id int) (model.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contents[id]
	if !ok {
		return model.Content{}, sql.ErrNoRows
	}
	return c, nil
}

func (m *MemoryStore) ListContentByPage(page model.Page) ([]model.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Content{}
	for _, c := range m.contents {
		if c.Page == page {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) UpdateContent(id int, content, imageURL, heading string) (model.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return model.Content{}, m.FailWith
	}
	c, ok := m.contents[id]
	if !ok {
		return model.Content{}, sql.ErrNoRows
	}
	c.Content = content
	c.ImageURL = imageURL
	c.Heading = heading
	c.UpdatedAt = time.Now()
	m.contents[id] = c
	return c, nil
}

// Count returns the number of stored content rows across all pages.
func (m *MemoryStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.contents)
}
