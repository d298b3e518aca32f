package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/jobsync-search/internal/http/dto"
	"github.com/pribylovaa/jobsync-search/internal/models"
)

// HeaderDegraded выставляется, если ответ — заглушка после сбоя хранилища.
const HeaderDegraded = "X-Search-Degraded"

// Searcher — то, что нужно хендлерам от сервисного слоя.
type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) *models.SearchResult
}

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	Searcher Searcher
}

func New(s Searcher) *Handlers {
	return &Handlers{Searcher: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeSearch пишет результат поиска; статус всегда 200,
// деградация сигнализируется заголовком.
func writeSearch(w http.ResponseWriter, res *models.SearchResult) {
	if res != nil && res.Degraded {
		w.Header().Set(HeaderDegraded, "1")
	}

	writeJSON(w, http.StatusOK, dto.SearchFromModel(res))
}
