package store

import (
	"context"
	"errors"

	"github.com/Kranthi2741/tinylink/internal/model"
)

var (
	ErrNotFound      = errors.New("link not found")
	ErrAlreadyExists = errors.New("short code already exists")
)

// Store определяет методы для работы с хранилищем ссылок
type Store interface {
	// Insert сохраняет новую ссылку и возвращает созданную запись
	// (идентификатор и created_at назначает хранилище).
	// Возвращает ErrAlreadyExists если код уже занят.
	Insert(ctx context.Context, code model.Code, originalURL string) (model.Link, error)

	// FindByCode возвращает запись по короткому коду.
	// Возвращает ErrNotFound если код не существует.
	FindByCode(ctx context.Context, code model.Code) (model.Link, error)

	// Exists проверяет занят ли короткий код
	Exists(ctx context.Context, code model.Code) (bool, error)

	// List возвращает все ссылки, отфильтрованные по подстроке search
	// (без учета регистра, по short_code или original_url) и отсортированные
	// согласно sort. Пустой search возвращает все записи.
	List(ctx context.Context, search string, sort model.SortMode) ([]model.Link, error)

	// RegisterClick увеличивает счетчик переходов и обновляет last_clicked.
	// Отсутствие записи не является ошибкой: переход, проигравший гонку
	// конкурентному удалению, просто теряется.
	RegisterClick(ctx context.Context, code model.Code) error

	// Delete удаляет запись навсегда.
	// Возвращает ErrNotFound если код не существует.
	Delete(ctx context.Context, code model.Code) error
}
