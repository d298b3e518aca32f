// cache — read-through кэш страниц поиска.
//
// Реализации:
//   - redisCache — Redis (go-redis/v9), значение — JSON страницы с TTL;
//   - noopCache — кэш выключен (пустой redis_url).
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/jobsync-search/internal/models"
)

// SearchCache — минимальный контракт кэша результатов поиска.
type SearchCache interface {
	// Get возвращает страницу и признак её наличия в кэше.
	Get(ctx context.Context, key string) (*models.SearchResult, bool, error)
	// Set сохраняет страницу с TTL.
	Set(ctx context.Context, key string, res *models.SearchResult, ttl time.Duration) error
	// Close освобождает ресурсы клиента.
	Close() error
}

// Key строит ключ кэша по уже нормализованному запросу.
// Порядок категорий/регионов входит в ключ.
func Key(req models.SearchRequest) string {
	var b strings.Builder
	b.WriteString("c=")
	b.WriteString(strings.Join(req.Categories, "\x1f"))
	b.WriteString("|r=")
	b.WriteString(strings.Join(req.Regions, "\x1f"))
	b.WriteString("|cur=")
	b.WriteString(req.Cursor)
	b.WriteString("|l=")
	b.WriteString(strconv.Itoa(req.Limit))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

type noopCache struct{}

// NewNoop возвращает выключенный кэш: Get всегда промах, Set ничего не делает.
func NewNoop() SearchCache { return noopCache{} }

func (noopCache) Get(context.Context, string) (*models.SearchResult, bool, error) {
	return nil, false, nil
}

func (noopCache) Set(context.Context, string, *models.SearchResult, time.Duration) error {
	return nil
}

func (noopCache) Close() error { return nil }
