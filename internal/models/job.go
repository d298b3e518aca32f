// models содержит доменные сущности search-service.
// Эти типы используются слоями бизнес-логики, хранилища, кэша и транспорта.
package models

import "time"

// Статусы вакансии в таблице jobs.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// JobPosting — доменная сущность вакансии (строка таблицы jobs).
//
// Особенности:
//   - ID — serial, монотонно растёт, используется как ключ сортировки и курсора;
//   - nullable-колонки представлены указателями;
//   - сервис только читает вакансии, запись выполняет внешний парсер.
type JobPosting struct {
	ID         int64
	Source     string
	ExternalID string
	Title      string
	Company    string
	Location   *string
	AnnualFrom *int64
	AnnualTo   *int64
	DetailURL  *string
	DueTime    *time.Time
	// Description - полный текст вакансии.
	Description *string
	PostedDate  *time.Time
	ClosingDate *time.Time
	// ScrapedAt - время загрузки вакансии парсером.
	ScrapedAt time.Time
	Status    string
	// LastValidatedAt - время последней проверки актуальности.
	LastValidatedAt time.Time
	// Position - должность/направление, по ней (и по Title) работает фильтр категорий.
	Position *string
}
