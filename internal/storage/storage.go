// storage определяет контракты доступа к БД для search-service.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/jobsync-search/internal/models"
)

var (
	// ErrTimeout — запрос отменён по дедлайну или statement_timeout.
	ErrTimeout = errors.New("query timeout")
	// ErrSchema — схема БД не соответствует ожиданиям (нет таблицы/колонки).
	ErrSchema = errors.New("schema mismatch")
	// ErrUnavailable — БД недоступна (ошибки соединения, shutdown).
	ErrUnavailable = errors.New("storage unavailable")
)

// JobStorage описывает операции чтения над таблицей вакансий.
type JobStorage interface {
	// FindActive возвращает активные вакансии под фильтр, отсортированные по id DESC.
	// beforeID <= 0 — без ограничения по курсору, иначе id < beforeID.
	// limit — точное число строк, которое нужно выбрать (лимит страницы уже учтён вызывающим).
	FindActive(ctx context.Context, filter models.JobFilter, beforeID int64, limit int) ([]models.JobPosting, error)
	// CountActive возвращает число активных вакансий под фильтр без учёта пагинации.
	CountActive(ctx context.Context, filter models.JobFilter) (int64, error)
}

// Storage задаёт контракт доступа к хранилищу для search-service.
type Storage interface {
	JobStorage
	// Ping проверяет доступность БД (readiness).
	Ping(ctx context.Context) error
	Close()
}
