package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLink_JSONShape проверяет wire-формат записи: snake_case ключи,
// метки времени в ISO-8601 UTC, null для last_clicked до первого перехода
func TestLink_JSONShape(t *testing.T) {
	link := Link{
		ID:          1,
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		Clicks:      0,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(link)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"short_code": "abc123",
		"original_url": "https://example.com",
		"clicks": 0,
		"created_at": "2025-06-01T12:00:00Z",
		"last_clicked": null
	}`, string(data))
}

// TestLink_JSONShape_AfterClick проверяет формат после перехода
func TestLink_JSONShape_AfterClick(t *testing.T) {
	clicked := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	link := Link{
		ID:          1,
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		Clicks:      3,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		LastClicked: &clicked,
	}

	data, err := json.Marshal(link)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2025-06-02T09:30:00Z", decoded["last_clicked"])
	assert.Equal(t, float64(3), decoded["clicks"])
}
