package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewWebsite(t *testing.T) {
	site := NewWebsite("https://example.com", "owner@example.com", "+1-555-0100")

	assert.Equal(t, "https://example.com", site.URL)
	assert.Equal(t, "owner@example.com", site.Email)
	assert.Equal(t, "+1-555-0100", site.Phone)
}

func TestNewSnapshotSummary(t *testing.T) {
	createdAt := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	t.Run("short content is returned whole", func(t *testing.T) {
		summary := NewSnapshotSummary(1, "https://example.com", "hello world", createdAt)

		assert.Equal(t, int64(1), summary.ID)
		assert.Equal(t, "hello world", summary.Excerpt)
		assert.Equal(t, len("hello world"), summary.ContentLength)
		assert.Equal(t, createdAt, summary.CreatedAt)
	})

	t.Run("long content is truncated to the excerpt length", func(t *testing.T) {
		content := strings.Repeat("a", SnapshotExcerptLength*3)
		summary := NewSnapshotSummary(2, "https://example.com", content, createdAt)

		assert.Len(t, summary.Excerpt, SnapshotExcerptLength)
		assert.Equal(t, len(content), summary.ContentLength)
	})
}
