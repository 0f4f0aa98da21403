package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/Kranthi2741/tinylink/internal/model"
)

// mockLinkService реализует LinkService через подставляемые функции
type mockLinkService struct {
	CreateFunc          func(ctx context.Context, originalURL, customCode string) (model.Link, string, error)
	ResolveAndTrackFunc func(ctx context.Context, code model.Code) (string, error)
	ListFunc            func(ctx context.Context, search, sortValue string) ([]model.Link, error)
	GetByCodeFunc       func(ctx context.Context, code model.Code) (model.Link, error)
	DeleteFunc          func(ctx context.Context, code model.Code) error
}

func (m *mockLinkService) Create(ctx context.Context, originalURL, customCode string) (model.Link, string, error) {
	return m.CreateFunc(ctx, originalURL, customCode)
}

func (m *mockLinkService) ResolveAndTrack(ctx context.Context, code model.Code) (string, error) {
	return m.ResolveAndTrackFunc(ctx, code)
}

func (m *mockLinkService) List(ctx context.Context, search, sortValue string) ([]model.Link, error) {
	return m.ListFunc(ctx, search, sortValue)
}

func (m *mockLinkService) GetByCode(ctx context.Context, code model.Code) (model.Link, error) {
	return m.GetByCodeFunc(ctx, code)
}

func (m *mockLinkService) Delete(ctx context.Context, code model.Code) error {
	return m.DeleteFunc(ctx, code)
}

// withURLParam добавляет в запрос chi-контекст с параметром пути
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// doRequest прогоняет запрос через обработчик и возвращает рекордер
func doRequest(handlerFunc http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handlerFunc(w, req)
	return w
}
