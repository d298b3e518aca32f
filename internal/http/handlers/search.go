package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/jobsync-search/internal/http/dto"
	"github.com/pribylovaa/jobsync-search/internal/models"
	logctx "github.com/pribylovaa/jobsync-search/pkg/log"
)

// Фиксированный запрос /search/simple-categories.
const (
	simpleCategory = "개발"
	simpleLimit    = 20
)

const testMessage = "테스트 API가 정상 작동합니다."

// SearchCategories — GET /search/categories?categories=a,b&regions=x,y&cursor=...&limit=n.
func (h *Handlers) SearchCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := models.SearchRequest{
		Categories: splitList(q.Get("categories")),
		Regions:    splitList(q.Get("regions")),
		Cursor:     q.Get("cursor"),
		Limit:      parseLimit(q.Get("limit")),
	}

	logctx.From(r.Context()).Debug("search_categories_params",
		slog.Any("categories", req.Categories),
		slog.Any("regions", req.Regions),
		slog.String("cursor", req.Cursor),
		slog.Int("limit", req.Limit),
	)

	writeSearch(w, h.Searcher.Search(r.Context(), req))
}

// SimpleCategories — GET /search/simple-categories с фиксированными параметрами.
func (h *Handlers) SimpleCategories(w http.ResponseWriter, r *http.Request) {
	req := models.SearchRequest{
		Categories: []string{simpleCategory},
		Regions:    []string{},
		Limit:      simpleLimit,
	}

	writeSearch(w, h.Searcher.Search(r.Context(), req))
}

// CategoriesByPath — GET /search/cat/{categories}?limit=n.
// Категории берутся из сегмента пути (через запятую), регионов и курсора нет.
// chi маршрутизирует по RawPath, если он задан, иначе по уже декодированному Path:
// раскодируем параметр только в первом случае, чтобы не декодировать дважды.
func (h *Handlers) CategoriesByPath(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "categories")
	if r.URL.RawPath != "" {
		if v, err := url.PathUnescape(raw); err == nil {
			raw = v
		}
	}

	req := models.SearchRequest{
		Categories: splitList(raw),
		Regions:    []string{},
		Limit:      parseLimit(r.URL.Query().Get("limit")),
	}

	writeSearch(w, h.Searcher.Search(r.Context(), req))
}

// Test — GET /search/test, проверка доступности API.
func (h *Handlers) Test(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.TestResponse{Success: true, Message: testMessage})
}
