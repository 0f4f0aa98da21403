package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/config"
	"github.com/Kranthi2741/tinylink/internal/handler"
	"github.com/Kranthi2741/tinylink/internal/model"
	"github.com/Kranthi2741/tinylink/internal/service"
	"github.com/Kranthi2741/tinylink/internal/store"
)

// newTestServer собирает полный стек приложения на хранилище в памяти
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zap.NewNop()
	memStore := store.NewMemoryStore()
	linkService := service.NewLinkService(memStore, config.NewDefaultConfig(), logger)
	h := handler.New(linkService, logger)

	srv := httptest.NewServer(newRouter(h, logger))
	t.Cleanup(srv.Close)

	return srv
}

// TestRouter_FullLifecycle проверяет полный сценарий:
// создание, редирект с учетом перехода, удаление, 404 после удаления
func TestRouter_FullLifecycle(t *testing.T) {
	srv := newTestServer(t)

	client := srv.Client()
	// Редиректы проверяем вручную
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	// Создаем ссылку
	resp, err := client.Post(srv.URL+"/api/links", "application/json",
		strings.NewReader(`{"url":"https://openai.com"}`))
	require.NoError(t, err)

	var created model.CreateLinkResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, created.Data.ShortCode, 6)
	code := created.Data.ShortCode

	// Редирект на оригинальный URL
	resp, err = client.Get(srv.URL + "/" + code)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://openai.com", resp.Header.Get("Location"))

	// Переход учтен
	resp, err = client.Get(srv.URL + "/api/links/" + code)
	require.NoError(t, err)

	var info model.Link
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), info.Clicks)
	assert.NotNil(t, info.LastClicked)

	// Удаляем ссылку
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/links/"+code, nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Удаленный код больше не разрешается
	resp, err = client.Get(srv.URL + "/" + code)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Повторное удаление тоже дает 404
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestRouter_CustomCodeConflict проверяет 409 на занятый пользовательский код
func TestRouter_CustomCodeConflict(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	resp, err := client.Post(srv.URL+"/api/links", "application/json",
		strings.NewReader(`{"url":"https://example.com","customCode":"MyCode1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = client.Post(srv.URL+"/api/links", "application/json",
		strings.NewReader(`{"url":"https://other.example.com","customCode":"MyCode1"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// TestRouter_ListSearchSort проверяет листинг через HTTP с фильтром
func TestRouter_ListSearchSort(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	for _, body := range []string{
		`{"url":"https://example.com","customCode":"codeAA"}`,
		`{"url":"https://golang.org","customCode":"codeBB"}`,
	} {
		resp, err := client.Post(srv.URL+"/api/links", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, err := client.Get(srv.URL + "/api/links?search=EXA&sort=oldest")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var links []model.Link
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&links))
	require.Len(t, links, 1)
	assert.Equal(t, "codeAA", links[0].ShortCode)
}

// TestRouter_HealthzNotShadowed проверяет что служебный маршрут
// не перехватывается шаблоном редиректа /{code}
func TestRouter_HealthzNotShadowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health handler.HealthzResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.True(t, health.OK)
	assert.Equal(t, "running", health.Status)
}
