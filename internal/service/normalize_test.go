package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/jobsync-search/internal/config"
	"github.com/pribylovaa/jobsync-search/internal/models"
)

func Test_normalize(t *testing.T) {
	t.Parallel()

	svc := New(nil, nil, nil, testConfig())

	tests := []struct {
		name string
		in   models.SearchRequest
		want models.SearchRequest
	}{
		{
			name: "zero limit -> default, nil lists -> empty",
			in:   models.SearchRequest{},
			want: models.SearchRequest{Categories: []string{}, Regions: []string{}, Limit: 20},
		},
		{
			name: "negative limit -> default",
			in:   models.SearchRequest{Limit: -3},
			want: models.SearchRequest{Categories: []string{}, Regions: []string{}, Limit: 20},
		},
		{
			name: "large limit passes through without max",
			in:   models.SearchRequest{Limit: 150},
			want: models.SearchRequest{Categories: []string{}, Regions: []string{}, Limit: 150},
		},
		{
			name: "categories lowercased, regions keep case, blanks dropped, cursor trimmed",
			in: models.SearchRequest{
				Categories: []string{" Go ", "", "   ", "BACKEND"},
				Regions:    []string{"Seoul ", " ", "Busan"},
				Cursor:     " MTA= ",
				Limit:      7,
			},
			want: models.SearchRequest{
				Categories: []string{"go", "backend"},
				Regions:    []string{"Seoul", "Busan"},
				Cursor:     "MTA=",
				Limit:      7,
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, svc.normalize(tc.in))
		})
	}
}

func Test_normalize_Capped(t *testing.T) {
	t.Parallel()

	svc := New(nil, nil, nil, cappedConfig(100))

	require.Equal(t, 100, svc.normalize(models.SearchRequest{Limit: 5000}).Limit)
	require.Equal(t, 100, svc.normalize(models.SearchRequest{Limit: 100}).Limit)
	require.Equal(t, 99, svc.normalize(models.SearchRequest{Limit: 99}).Limit)
	require.Equal(t, 20, svc.normalize(models.SearchRequest{Limit: 0}).Limit)
}

// Test_normalize_EmptyConfig — без лимитов в cfg применяется встроенный default.
func Test_normalize_EmptyConfig(t *testing.T) {
	t.Parallel()

	svc := New(nil, nil, nil, config.Config{})

	got := svc.normalize(models.SearchRequest{})
	require.Equal(t, defaultLimit, got.Limit)

	got = svc.normalize(models.SearchRequest{Limit: 500})
	require.Equal(t, 500, got.Limit)
}
