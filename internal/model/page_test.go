package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesAllowList(t *testing.T) {
	pages := Pages()
	assert.Len(t, pages, 7)

	seen := map[Page]bool{}
	for _, p := range pages {
		assert.True(t, p.Valid(), "page %s should be valid", p)
		assert.False(t, seen[p], "duplicate page %s", p)
		seen[p] = true
	}
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage("MusicMovement")
	require.NoError(t, err)
	assert.Equal(t, PageMusicMovement, p)
	assert.Equal(t, "Music & Movement", p.Label())

	_, err = ParsePage("Envirnoment")
	assert.Error(t, err)

	_, err = ParsePage("")
	assert.Error(t, err)
}

func TestPageScan(t *testing.T) {
	var p Page
	require.NoError(t, p.Scan([]byte("Outdoor")))
	assert.Equal(t, PageOutdoor, p)

	require.NoError(t, p.Scan("HomeReading"))
	assert.Equal(t, PageHomeReading, p)

	assert.Error(t, p.Scan("Gym"))
	assert.Error(t, p.Scan(nil))
	assert.Equal(t, PageHomeReading, p)
}

func TestEscapeContent(t *testing.T) {
	assert.Equal(t, "It#s fine", EscapeContent("It's fine"))
	assert.Equal(t, "##", EscapeContent("''"))
	assert.Equal(t, "no quotes", EscapeContent("no quotes"))
}
