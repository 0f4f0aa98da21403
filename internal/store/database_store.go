package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kranthi2741/tinylink/internal/config/db"
	"github.com/Kranthi2741/tinylink/internal/model"
)

// Колонки, возвращаемые всеми запросами по таблице links.
// clicks может быть NULL в старых строках, поэтому COALESCE.
const linkColumns = `id, short_code, original_url, COALESCE(clicks, 0), created_at, last_clicked`

// uniqueViolation - код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// Закрытое перечисление ORDER BY: сортировка никогда не строится
// из пользовательского ввода.
var orderClauses = map[model.SortMode]string{
	model.SortNewest:       "ORDER BY created_at DESC",
	model.SortOldest:       "ORDER BY created_at ASC",
	model.SortMostClicked:  "ORDER BY clicks DESC NULLS LAST",
	model.SortLeastClicked: "ORDER BY clicks ASC NULLS FIRST",
}

// DatabaseStore реализует Store поверх PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}
}

func (ds *DatabaseStore) Insert(ctx context.Context, code model.Code, originalURL string) (model.Link, error) {
	query := `
		INSERT INTO links (short_code, original_url)
		VALUES ($1, $2)
		RETURNING ` + linkColumns

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code), originalURL))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			// Две конкурентные вставки одного кода: проверка существования
			// прошла у обеих, вторую останавливает ограничение уникальности
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrAlreadyExists)
		}
		return model.Link{}, fmt.Errorf("failed to insert link: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) FindByCode(ctx context.Context, code model.Code) (model.Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		WHERE short_code = $1`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS
		(SELECT 1 FROM links WHERE short_code = $1)`

	err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}

func (ds *DatabaseStore) List(ctx context.Context, search string, sortMode model.SortMode) ([]model.Link, error) {
	orderClause, ok := orderClauses[sortMode]
	if !ok {
		orderClause = orderClauses[model.SortNewest]
	}

	var (
		rows pgx.Rows
		err  error
	)

	if search != "" {
		query := `
			SELECT ` + linkColumns + `
			FROM links
			WHERE LOWER(short_code) LIKE $1 OR LOWER(original_url) LIKE $1
			` + orderClause
		pattern := "%" + strings.ToLower(search) + "%"
		rows, err = ds.pool.Query(ctx, query, pattern)
	} else {
		query := `
			SELECT ` + linkColumns + `
			FROM links
			` + orderClause
		rows, err = ds.pool.Query(ctx, query)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	links := make([]model.Link, 0)
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link row: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate link rows: %w", err)
	}

	return links, nil
}

func (ds *DatabaseStore) RegisterClick(ctx context.Context, code model.Code) error {
	query := `
		UPDATE links
		SET clicks = COALESCE(clicks, 0) + 1, last_clicked = NOW()
		WHERE short_code = $1`

	// Ноль затронутых строк не проверяем: запись могла быть удалена
	// конкурентным запросом, такой переход просто теряется
	_, err := ds.pool.Exec(ctx, query, string(code))
	if err != nil {
		return fmt.Errorf("failed to register click: %w", err)
	}

	return nil
}

func (ds *DatabaseStore) Delete(ctx context.Context, code model.Code) error {
	query := `
		DELETE FROM links
		WHERE short_code = $1`

	tag, err := ds.pool.Exec(ctx, query, string(code))
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return nil
}

// scanLink читает одну строку таблицы links и нормализует
// метки времени к UTC независимо от представления в базе.
func scanLink(row pgx.Row) (model.Link, error) {
	var link model.Link

	err := row.Scan(
		&link.ID,
		&link.ShortCode,
		&link.OriginalURL,
		&link.Clicks,
		&link.CreatedAt,
		&link.LastClicked,
	)
	if err != nil {
		return model.Link{}, err
	}

	link.CreatedAt = link.CreatedAt.UTC()
	if link.LastClicked != nil {
		utc := link.LastClicked.UTC()
		link.LastClicked = &utc
	}

	return link, nil
}
