package postgres

import (
	"strconv"
	"strings"

	"github.com/pribylovaa/jobsync-search/internal/models"
)

// jobColumns — порядок колонок должен совпадать с порядком Scan в scanJob.
const jobColumns = `id, source, external_id, title, company, location, annual_from, annual_to,
	detailurl, due_time, description, posted_date, closing_date, scraped_at, status,
	last_validated_at, position`

// whereBuilder собирает WHERE с позиционными параметрами $n.
type whereBuilder struct {
	conds []string
	args  []any
}

// arg добавляет параметр и возвращает его плейсхолдер.
func (b *whereBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *whereBuilder) and(cond string) {
	b.conds = append(b.conds, cond)
}

func (b *whereBuilder) sql() string {
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// buildWhere формирует условия выборки активных вакансий.
//
// Правила:
//   - всегда status = 'active';
//   - beforeID > 0 -> id < beforeID;
//   - категории: для каждой c два предиката lower(position)/lower(title) LIKE %c%,
//     все 2×N объединены через OR в одну скобку;
//   - регионы: location = ANY($n) (эквивалент IN).
//
// Категории ожидаются уже в нижнем регистре (нормализация — в сервисе).
func buildWhere(filter models.JobFilter, beforeID int64) (string, []any) {
	var b whereBuilder

	b.and("status = " + b.arg(models.StatusActive))

	if beforeID > 0 {
		b.and("id < " + b.arg(beforeID))
	}

	if len(filter.Categories) > 0 {
		placeholders := make([]string, 0, len(filter.Categories))
		for _, c := range filter.Categories {
			placeholders = append(placeholders, b.arg("%"+escapeLike(c)+"%"))
		}

		ors := make([]string, 0, 2*len(placeholders))
		for _, p := range placeholders {
			ors = append(ors, "lower(position) LIKE "+p+` ESCAPE '\'`)
		}
		for _, p := range placeholders {
			ors = append(ors, "lower(title) LIKE "+p+` ESCAPE '\'`)
		}

		b.and("(" + strings.Join(ors, " OR ") + ")")
	}

	if len(filter.Regions) > 0 {
		b.and("location = ANY(" + b.arg(filter.Regions) + ")")
	}

	return b.sql(), b.args
}

// escapeLike экранирует метасимволы LIKE, чтобы пользовательский ввод
// матчился как обычная подстрока.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// buildFindQuery — выборка страницы: ORDER BY id DESC LIMIT n.
func buildFindQuery(filter models.JobFilter, beforeID int64, limit int) (string, []any) {
	where, args := buildWhere(filter, beforeID)
	args = append(args, limit)

	return "SELECT " + jobColumns + " FROM jobs " + where +
		" ORDER BY id DESC LIMIT $" + strconv.Itoa(len(args)), args
}

// buildCountQuery — подсчёт без курсора и лимита.
func buildCountQuery(filter models.JobFilter) (string, []any) {
	where, args := buildWhere(filter, 0)
	return "SELECT count(*) FROM jobs " + where, args
}
