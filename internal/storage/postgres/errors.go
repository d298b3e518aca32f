package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/jobsync-search/internal/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classify сопоставляет ошибку драйвера доменному sentinel из пакета storage.
// Исходная ошибка сохраняется в цепочке (errors.Is/As работают для обеих).
//
// Таблица:
//   - context.DeadlineExceeded / 57014 query_canceled -> storage.ErrTimeout;
//   - 42P01 undefined_table / 42703 undefined_column -> storage.ErrSchema;
//   - класс 08 (connection exception), 57P01..57P03, ConnectError -> storage.ErrUnavailable;
//   - прочее — без изменений.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", storage.ErrTimeout, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == pgerrcode.QueryCanceled:
		return fmt.Errorf("%w: %w", storage.ErrTimeout, err)
	case pgErr.Code == pgerrcode.UndefinedTable, pgErr.Code == pgerrcode.UndefinedColumn:
		return fmt.Errorf("%w: %w", storage.ErrSchema, err)
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgErr.Code == pgerrcode.AdminShutdown,
		pgErr.Code == pgerrcode.CrashShutdown,
		pgErr.Code == pgerrcode.CannotConnectNow:
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	default:
		return err
	}
}
