package model

// SortMode определяет порядок сортировки при выводе списка ссылок
type SortMode string

const (
	SortNewest       SortMode = "newest"
	SortOldest       SortMode = "oldest"
	SortMostClicked  SortMode = "most-clicked"
	SortLeastClicked SortMode = "least-clicked"
)

// ParseSortMode преобразует строку из query-параметра в SortMode.
// Неизвестные значения трактуются как SortNewest.
func ParseSortMode(value string) SortMode {
	switch SortMode(value) {
	case SortOldest, SortMostClicked, SortLeastClicked:
		return SortMode(value)
	default:
		return SortNewest
	}
}
