package models

// SearchRequest — типизированный запрос поиска вакансий.
//
// Особенности:
//   - Categories — подстроки без учёта регистра (ищутся в position и title);
//   - Regions — точное совпадение с location;
//   - Cursor == "" -> первая страница;
//   - при Limit <= 0 применяется серверный default (config.LimitsConfig.Default).
type SearchRequest struct {
	Categories []string
	Regions    []string
	Cursor     string
	Limit      int
}

// JobFilter — нормализованные условия фильтрации, общие для выборки страницы и подсчёта.
type JobFilter struct {
	Categories []string
	Regions    []string
}

// SearchResult — страница результатов поиска с метаданными пагинации.
type SearchResult struct {
	Jobs        []JobPosting
	NextCursor  *string
	HasNextPage bool
	// TotalCount — число подходящих вакансий без учёта курсора и лимита.
	TotalCount int64
	// CategoryCounts/RegionCounts зарезервированы под фасеты и всегда пустые.
	CategoryCounts map[string]int64
	RegionCounts   map[string]int64
	// Degraded — результат собран как заглушка после ошибки хранилища.
	Degraded bool
}

// EmptySearchResult возвращает каноничный пустой результат.
func EmptySearchResult() *SearchResult {
	return &SearchResult{
		Jobs:           []JobPosting{},
		NextCursor:     nil,
		HasNextPage:    false,
		TotalCount:     0,
		CategoryCounts: map[string]int64{},
		RegionCounts:   map[string]int64{},
	}
}
