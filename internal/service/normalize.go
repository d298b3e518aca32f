package service

import (
	"strings"

	"github.com/pribylovaa/jobsync-search/internal/models"
)

// normalize доводит запрос до инвариантов поиска:
//   - limit <= 0 -> cfg.LimitsConfig.Default;
//   - limit > max -> cfg.LimitsConfig.Max, если max > 0 (по умолчанию ограничения нет);
//   - категории: TrimSpace, пустые отбрасываются, нижний регистр;
//   - регионы: TrimSpace, пустые отбрасываются, регистр сохраняется;
//   - cursor: TrimSpace.
func (s *Service) normalize(req models.SearchRequest) models.SearchRequest {
	if req.Limit <= 0 {
		req.Limit = s.cfg.LimitsConfig.Default
	}

	if s.cfg.LimitsConfig.Max > 0 && req.Limit > s.cfg.LimitsConfig.Max {
		req.Limit = s.cfg.LimitsConfig.Max
	}

	// Защита от незаполненного cfg.
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}

	req.Categories = cleanList(req.Categories, strings.ToLower)
	req.Regions = cleanList(req.Regions, nil)
	req.Cursor = strings.TrimSpace(req.Cursor)

	return req
}

const defaultLimit = 20

func cleanList(in []string, transform func(string) string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		if transform != nil {
			v = transform(v)
		}

		out = append(out, v)
	}

	return out
}
