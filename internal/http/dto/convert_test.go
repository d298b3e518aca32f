package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/jobsync-search/internal/models"
)

func TestSearchFromModel_EmptyPayloadShape(t *testing.T) {
	t.Parallel()

	for _, in := range []*models.SearchResult{nil, models.EmptySearchResult(), {}} {
		b, err := json.Marshal(SearchFromModel(in))
		require.NoError(t, err)
		require.JSONEq(t,
			`{"jobs":[],"nextCursor":null,"hasNextPage":false,"totalCount":0,"categoryCounts":{},"regionCounts":{}}`,
			string(b))
	}
}

func TestSearchFromModel_JobFields(t *testing.T) {
	t.Parallel()

	loc := "Seoul"
	pos := "백엔드 개발자"
	from := int64(40000000)
	next := "Ng=="
	ts := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	res := &models.SearchResult{
		Jobs: []models.JobPosting{{
			ID:              7,
			Source:          "saramin",
			ExternalID:      "ext-7",
			Title:           "Go developer",
			Company:         "acme",
			Location:        &loc,
			AnnualFrom:      &from,
			ScrapedAt:       ts,
			Status:          models.StatusActive,
			LastValidatedAt: ts,
			Position:        &pos,
		}},
		NextCursor:  &next,
		HasNextPage: true,
		TotalCount:  12,
		Degraded:    true,
	}

	b, err := json.Marshal(SearchFromModel(res))
	require.NoError(t, err)

	require.JSONEq(t, `{
		"jobs":[{
			"id":7,"source":"saramin","externalId":"ext-7","title":"Go developer","company":"acme",
			"location":"Seoul","annualFrom":40000000,"annualTo":null,"detailUrl":null,"dueTime":null,
			"description":null,"postedDate":null,"closingDate":null,
			"scrapedAt":"2025-03-01T09:00:00Z","status":"active",
			"lastValidatedAt":"2025-03-01T09:00:00Z","position":"백엔드 개발자"
		}],
		"nextCursor":"Ng==","hasNextPage":true,"totalCount":12,"categoryCounts":{},"regionCounts":{}
	}`, string(b))
}
