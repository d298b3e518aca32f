package dto

import "github.com/pribylovaa/jobsync-search/internal/models"

// SearchFromModel конвертирует результат поиска в тело ответа.
// Пустые коллекции сериализуются как [] и {}, а не null.
func SearchFromModel(res *models.SearchResult) SearchResponse {
	if res == nil {
		res = models.EmptySearchResult()
	}

	out := SearchResponse{
		Jobs:           make([]Job, 0, len(res.Jobs)),
		NextCursor:     res.NextCursor,
		HasNextPage:    res.HasNextPage,
		TotalCount:     res.TotalCount,
		CategoryCounts: res.CategoryCounts,
		RegionCounts:   res.RegionCounts,
	}

	if out.CategoryCounts == nil {
		out.CategoryCounts = map[string]int64{}
	}
	if out.RegionCounts == nil {
		out.RegionCounts = map[string]int64{}
	}

	for _, j := range res.Jobs {
		out.Jobs = append(out.Jobs, JobFromModel(j))
	}

	return out
}

func JobFromModel(j models.JobPosting) Job {
	return Job{
		ID:              j.ID,
		Source:          j.Source,
		ExternalID:      j.ExternalID,
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		AnnualFrom:      j.AnnualFrom,
		AnnualTo:        j.AnnualTo,
		DetailURL:       j.DetailURL,
		DueTime:         j.DueTime,
		Description:     j.Description,
		PostedDate:      j.PostedDate,
		ClosingDate:     j.ClosingDate,
		ScrapedAt:       j.ScrapedAt,
		Status:          j.Status,
		LastValidatedAt: j.LastValidatedAt,
		Position:        j.Position,
	}
}
