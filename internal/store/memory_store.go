package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Kranthi2741/tinylink/internal/model"
)

// MemoryStore реализует Store в памяти.
// Используется для локальной разработки и в тестах вместо PostgreSQL.
type MemoryStore struct {
	mutex  sync.Mutex
	links  map[model.Code]model.Link
	nextID int64
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links:  make(map[model.Code]model.Link),
		nextID: 1,
		now:    time.Now,
	}
}

func (s *MemoryStore) Insert(_ context.Context, code model.Code, originalURL string) (model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.links[code]; exists {
		return model.Link{}, fmt.Errorf("code %s: %w", code, ErrAlreadyExists)
	}

	link := model.Link{
		ID:          s.nextID,
		ShortCode:   string(code),
		OriginalURL: originalURL,
		Clicks:      0,
		CreatedAt:   s.now().UTC(),
	}
	s.nextID++
	s.links[code] = link

	return link, nil
}

func (s *MemoryStore) FindByCode(_ context.Context, code model.Code) (model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[code]
	if !ok {
		return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return link, nil
}

func (s *MemoryStore) Exists(_ context.Context, code model.Code) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ok := s.links[code]
	return ok, nil
}

func (s *MemoryStore) List(_ context.Context, search string, sortMode model.SortMode) ([]model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	needle := strings.ToLower(search)

	result := make([]model.Link, 0, len(s.links))
	for _, link := range s.links {
		if needle != "" &&
			!strings.Contains(strings.ToLower(link.ShortCode), needle) &&
			!strings.Contains(strings.ToLower(link.OriginalURL), needle) {
			continue
		}
		result = append(result, link)
	}

	// Порядок обхода map недетерминирован, поэтому сначала фиксируем
	// порядок по ID, чтобы stable-сортировка давала воспроизводимый результат
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	sortLinks(result, sortMode)

	return result, nil
}

func (s *MemoryStore) RegisterClick(_ context.Context, code model.Code) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[code]
	if !ok {
		// Запись удалили между чтением и обновлением - переход теряется
		return nil
	}

	now := s.now().UTC()
	link.Clicks++
	link.LastClicked = &now
	s.links[code] = link

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, code model.Code) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.links[code]; !ok {
		return fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	delete(s.links, code)

	return nil
}

// sortLinks сортирует срез ссылок согласно режиму сортировки.
// В памяти clicks не бывает NULL, поэтому правила NULLS FIRST/LAST
// базы данных здесь не требуются.
func sortLinks(links []model.Link, mode model.SortMode) {
	switch mode {
	case model.SortOldest:
		sort.SliceStable(links, func(i, j int) bool {
			if links[i].CreatedAt.Equal(links[j].CreatedAt) {
				return links[i].ID < links[j].ID
			}
			return links[i].CreatedAt.Before(links[j].CreatedAt)
		})
	case model.SortMostClicked:
		sort.SliceStable(links, func(i, j int) bool {
			return links[i].Clicks > links[j].Clicks
		})
	case model.SortLeastClicked:
		sort.SliceStable(links, func(i, j int) bool {
			return links[i].Clicks < links[j].Clicks
		})
	default:
		sort.SliceStable(links, func(i, j int) bool {
			if links[i].CreatedAt.Equal(links[j].CreatedAt) {
				return links[i].ID > links[j].ID
			}
			return links[i].CreatedAt.After(links[j].CreatedAt)
		})
	}
}
