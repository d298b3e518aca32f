package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pribylovaa/jobsync-search/internal/cache"
	"github.com/pribylovaa/jobsync-search/internal/metrics"
	"github.com/pribylovaa/jobsync-search/internal/models"
	"github.com/pribylovaa/jobsync-search/internal/pkg/cursor"
	"github.com/pribylovaa/jobsync-search/internal/storage"
	"github.com/pribylovaa/jobsync-search/pkg/log"

	"golang.org/x/sync/errgroup"
)

// Search возвращает страницу активных вакансий под фильтр категорий/регионов.
//
// Алгоритм:
//   - запрос нормализуется (см. normalize);
//   - битый cursor игнорируется (первая страница), это не ошибка;
//   - страница (limit+1 строк, id DESC) и общий счётчик читаются параллельно;
//   - лишняя строка означает наличие следующей страницы, nextCursor = id последней оставшейся.
//
// Ошибки наружу не возвращаются: любой сбой хранилища даёт каноничный пустой
// результат с Degraded=true (лог + метрика search_degraded_total).
// Ошибки кэша не влияют на ответ.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) *models.SearchResult {
	const op = "service.search.Search"

	req = s.normalize(req)

	lg := log.From(ctx)
	lg.Info("search_request",
		slog.String("op", op),
		slog.Any("categories", req.Categories),
		slog.Any("regions", req.Regions),
		slog.Bool("has_cursor", req.Cursor != ""),
		slog.Int("limit", req.Limit),
	)

	key := cache.Key(req)
	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		lg.Warn("search_cache_error",
			slog.String("op", op),
			slog.String("stage", "get"),
			slog.String("err", err.Error()),
		)
	} else if ok {
		lg.Info("search_cache_hit", slog.String("op", op))
		s.metrics.SearchOutcome(metrics.OutcomeCacheHit)

		return cached
	}

	var beforeID int64
	if req.Cursor != "" {
		id, err := cursor.Decode(req.Cursor)
		if err != nil {
			lg.Warn("search_invalid_cursor",
				slog.String("op", op),
				slog.String("cursor", req.Cursor),
			)
		} else {
			beforeID = id
		}
	}

	filter := models.JobFilter{
		Categories: req.Categories,
		Regions:    req.Regions,
	}

	var (
		jobs  []models.JobPosting
		total int64
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		// +1 строка — признак следующей страницы.
		jobs, err = s.storage.FindActive(gctx, filter, beforeID, req.Limit+1)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.storage.CountActive(gctx, filter)
		return err
	})
	err := g.Wait()
	s.metrics.ObserveStore(time.Since(start))

	if err != nil {
		reason := failureReason(err)
		lg.Error("search_degraded",
			slog.String("op", op),
			slog.String("reason", reason),
			slog.String("err", err.Error()),
		)
		s.metrics.SearchDegraded(reason)

		res := models.EmptySearchResult()
		res.Degraded = true
		return res
	}

	res := buildPage(jobs, total, req.Limit)

	if err := s.cache.Set(ctx, key, res, s.cfg.Cache.TTL); err != nil {
		lg.Warn("search_cache_error",
			slog.String("op", op),
			slog.String("stage", "set"),
			slog.String("err", err.Error()),
		)
	}

	s.metrics.SearchOutcome(metrics.OutcomeOK)
	lg.Info("search_ok",
		slog.String("op", op),
		slog.Int("items", len(res.Jobs)),
		slog.Bool("has_next_page", res.HasNextPage),
		slog.Int64("total", res.TotalCount),
	)

	return res
}

// buildPage режет выборку limit+1 до limit и вычисляет курсор продолжения.
func buildPage(jobs []models.JobPosting, total int64, limit int) *models.SearchResult {
	res := models.EmptySearchResult()
	res.TotalCount = total

	if len(jobs) > limit {
		res.HasNextPage = true
		jobs = jobs[:limit]
	}

	if jobs != nil {
		res.Jobs = jobs
	}

	if res.HasNextPage && len(res.Jobs) > 0 {
		next := cursor.Encode(res.Jobs[len(res.Jobs)-1].ID)
		res.NextCursor = &next
	}

	return res
}

// failureReason — метка причины деградации для логов и метрик.
func failureReason(err error) string {
	switch {
	case errors.Is(err, storage.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, storage.ErrSchema):
		return "schema"
	case errors.Is(err, storage.ErrUnavailable):
		return "unavailable"
	default:
		return "other"
	}
}
