// dto — JSON-представления ответов HTTP-слоя.
package dto

import "time"

// SearchResponse — тело ответа поисковых эндпойнтов.
type SearchResponse struct {
	Jobs           []Job            `json:"jobs"`
	NextCursor     *string          `json:"nextCursor"`
	HasNextPage    bool             `json:"hasNextPage"`
	TotalCount     int64            `json:"totalCount"`
	CategoryCounts map[string]int64 `json:"categoryCounts"`
	RegionCounts   map[string]int64 `json:"regionCounts"`
}

// Job — вакансия в ответе. nullable-колонки сериализуются как null.
type Job struct {
	ID              int64      `json:"id"`
	Source          string     `json:"source"`
	ExternalID      string     `json:"externalId"`
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	Location        *string    `json:"location"`
	AnnualFrom      *int64     `json:"annualFrom"`
	AnnualTo        *int64     `json:"annualTo"`
	DetailURL       *string    `json:"detailUrl"`
	DueTime         *time.Time `json:"dueTime"`
	Description     *string    `json:"description"`
	PostedDate      *time.Time `json:"postedDate"`
	ClosingDate     *time.Time `json:"closingDate"`
	ScrapedAt       time.Time  `json:"scrapedAt"`
	Status          string     `json:"status"`
	LastValidatedAt time.Time  `json:"lastValidatedAt"`
	Position        *string    `json:"position"`
}

// TestResponse — ответ /search/test.
type TestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
