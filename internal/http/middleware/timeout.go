package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/pribylovaa/jobsync-search/internal/http/handlers"
	logctx "github.com/pribylovaa/jobsync-search/pkg/log"
)

// Timeout ограничивает время поиска: дедлайн d покрывает оба запроса к БД
// (страница и total). Более ранний дедлайн родителя сохраняется.
// Значение <=0 делает мидлвар no-op.
//
// Бюджет попадает в request-scoped логгер (атрибут timeout), так что его видят
// все записи сервиса по этому запросу. Если ответ ушёл деградированным из-за
// истёкшего дедлайна, пишется search_deadline_exceeded.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logctx.With(r.Context(), slog.Duration("timeout", d))
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if w.Header().Get(handlers.HeaderDegraded) != "" && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logctx.From(ctx).Warn("search_deadline_exceeded",
					slog.String("path", r.URL.Path),
				)
			}
		})
	}
}
