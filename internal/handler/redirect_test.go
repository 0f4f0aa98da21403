package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/model"
	"github.com/Kranthi2741/tinylink/internal/service"
)

// TestRedirect_Success проверяет временный редирект на оригинальный URL
func TestRedirect_Success(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		originalURL string
	}{
		{
			name:        "plain URL",
			code:        "abc123",
			originalURL: "https://example.com",
		},
		{
			name:        "URL with path and query",
			code:        "xyz987",
			originalURL: "https://example.com/path?param=value&other=test",
		},
		{
			name:        "URL with anchor",
			code:        "qwe456",
			originalURL: "https://example.com/page#section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockService := &mockLinkService{
				ResolveAndTrackFunc: func(_ context.Context, code model.Code) (string, error) {
					assert.Equal(t, tt.code, string(code))
					return tt.originalURL, nil
				},
			}
			h := New(mockService, zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/"+tt.code, nil)
			req = withURLParam(req, "code", tt.code)

			// Act
			w := doRequest(h.Redirect, req)

			// Assert - строго 302, не 301
			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, tt.originalURL, resp.Header.Get("Location"))
		})
	}
}

// TestRedirect_NotFound проверяет ответ на несуществующий код
func TestRedirect_NotFound(t *testing.T) {
	// Arrange
	mockService := &mockLinkService{
		ResolveAndTrackFunc: func(_ context.Context, code model.Code) (string, error) {
			return "", fmt.Errorf("code %s: %w", code, service.ErrLinkNotFound)
		},
	}
	h := New(mockService, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/ghost1", nil)
	req = withURLParam(req, "code", "ghost1")

	// Act
	w := doRequest(h.Redirect, req)

	// Assert - простой текст, без редиректа
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, "Short URL not found", strings.TrimSpace(w.Body.String()))
}

// TestRedirect_StorageError проверяет что детали сбоя хранилища
// не попадают в ответ
func TestRedirect_StorageError(t *testing.T) {
	mockService := &mockLinkService{
		ResolveAndTrackFunc: func(_ context.Context, _ model.Code) (string, error) {
			return "", fmt.Errorf("failed to resolve code: connection refused")
		},
	}
	h := New(mockService, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	req = withURLParam(req, "code", "abc123")

	w := doRequest(h.Redirect, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error", strings.TrimSpace(w.Body.String()))
	assert.NotContains(t, w.Body.String(), "connection refused")
}
