package postgres

import (
	"context"
	"fmt"

	"github.com/pribylovaa/jobsync-search/internal/models"

	"github.com/jackc/pgx/v5"
)

// FindActive возвращает до limit активных вакансий под фильтр, id DESC.
// beforeID <= 0 — первая страница.
// limit <= 0 трактуется как 1 (защита от пустого LIMIT).
func (s *Storage) FindActive(ctx context.Context, filter models.JobFilter, beforeID int64, limit int) ([]models.JobPosting, error) {
	const op = "storage.postgres.FindActive"

	if limit <= 0 {
		limit = 1
	}

	query, args := buildFindQuery(filter, beforeID, limit)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer rows.Close()

	jobs := make([]models.JobPosting, 0, limit)
	for rows.Next() {
		job, scanErr := scanJob(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, classify(scanErr))
		}

		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, classify(err))
	}

	return jobs, nil
}

// CountActive возвращает число активных вакансий под фильтр.
func (s *Storage) CountActive(ctx context.Context, filter models.JobFilter) (int64, error) {
	const op = "storage.postgres.CountActive"

	query, args := buildCountQuery(filter)

	var total int64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, classify(err))
	}

	return total, nil
}

func scanJob(row pgx.Row) (models.JobPosting, error) {
	var job models.JobPosting
	err := row.Scan(
		&job.ID,
		&job.Source,
		&job.ExternalID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.AnnualFrom,
		&job.AnnualTo,
		&job.DetailURL,
		&job.DueTime,
		&job.Description,
		&job.PostedDate,
		&job.ClosingDate,
		&job.ScrapedAt,
		&job.Status,
		&job.LastValidatedAt,
		&job.Position,
	)

	return job, err
}
