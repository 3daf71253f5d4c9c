package db

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/playhouse/internal/model"
)

// TestStoreIntegration runs against TEST_DATABASE_URL when it is set.
func TestStoreIntegration(t *testing.T) {
	store, err := InitTestDB("../../migrations")
	if errors.Is(err, ErrNoTestDatabase) {
		t.Skip(err.Error())
	}
	require.NoError(t, err)

	t.Run("Admin Management", func(t *testing.T) {
		email := fmt.Sprintf("admin-%d@example.com", time.Now().UnixNano())
		u, err := store.CreateUser("Admin", email, "hashed")
		require.NoError(t, err)
		assert.Greater(t, u.ID, 0)

		_, err = store.CreateUser("Admin", email, "hashed")
		assert.ErrorIs(t, err, ErrEmailTaken)

		_, err = store.CreateUser("Admin", strings.ToUpper(email), "hashed")
		assert.ErrorIs(t, err, ErrEmailTaken)

		found, err := store.GetUserByEmail(strings.ToUpper(email))
		require.NoError(t, err)
		assert.Equal(t, u.ID, found.ID)
	})

	t.Run("Content Management", func(t *testing.T) {
		c, err := store.CreateContent(model.PageFundayFridays, "body", "https://cdn.example.com/x.png", "Heading")
		require.NoError(t, err)

		list, err := store.ListContentByPage(model.PageFundayFridays)
		require.NoError(t, err)
		assert.NotEmpty(t, list)
		for _, x := range list {
			assert.Equal(t, model.PageFundayFridays, x.Page)
		}

		updated, err := store.UpdateContent(c.ID, c.Content, c.ImageURL, "New Heading")
		require.NoError(t, err)
		assert.Equal(t, "New Heading", updated.Heading)
		assert.Equal(t, c.ImageURL, updated.ImageURL)

		_, err = store.CreateContent(model.Page("Unknown"), "x", "y", "z")
		assert.Error(t, err, "page check constraint should reject unknown tags")
	})
}
