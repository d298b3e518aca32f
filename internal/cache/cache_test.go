package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pribylovaa/jobsync-search/internal/models"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestKey_StableAndDistinct(t *testing.T) {
	t.Parallel()

	base := models.SearchRequest{Categories: []string{"개발"}, Regions: []string{"Seoul"}, Limit: 20}

	require.Equal(t, Key(base), Key(base))
	require.Len(t, Key(base), 64)

	withCursor := base
	withCursor.Cursor = "Ng=="
	require.NotEqual(t, Key(base), Key(withCursor))

	otherLimit := base
	otherLimit.Limit = 5
	require.NotEqual(t, Key(base), Key(otherLimit))

	// Склейка не должна давать коллизий между категориями и регионами.
	a := models.SearchRequest{Categories: []string{"a", "b"}, Limit: 20}
	b := models.SearchRequest{Categories: []string{"a"}, Regions: []string{"b"}, Limit: 20}
	require.NotEqual(t, Key(a), Key(b))
}

func TestNoop(t *testing.T) {
	t.Parallel()

	c := NewNoop()
	require.NoError(t, c.Set(context.Background(), "k", models.EmptySearchResult(), time.Minute))

	got, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
	require.NoError(t, c.Close())
}

// Интеграционные тесты redisCache через testcontainers-go (образ redis:7-alpine).
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/cache -v -race -count=1

func startRedis(t *testing.T) (SearchCache, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "6379/tcp")

	rc, err := NewRedisCache(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()), "")
	require.NoError(t, err)

	cleanup := func() {
		_ = rc.Close()
		_ = c.Terminate(context.Background())
	}
	return rc, cleanup
}

func TestIntegration_Redis_SetGet_Roundtrip(t *testing.T) {
	rc, cleanup := startRedis(t)
	defer cleanup()

	loc := "Seoul"
	next := "Ng=="
	in := &models.SearchResult{
		Jobs: []models.JobPosting{{
			ID:              7,
			Title:           "백엔드 개발자",
			Company:         "ACME",
			Location:        &loc,
			Status:          models.StatusActive,
			ScrapedAt:       time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
			LastValidatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		}},
		NextCursor:     &next,
		HasNextPage:    true,
		TotalCount:     42,
		CategoryCounts: map[string]int64{},
		RegionCounts:   map[string]int64{},
	}

	require.NoError(t, rc.Set(context.Background(), "k1", in, time.Minute))

	got, ok, err := rc.Get(context.Background(), "k1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, in, got)
}

func TestIntegration_Redis_Miss(t *testing.T) {
	rc, cleanup := startRedis(t)
	defer cleanup()

	got, ok, err := rc.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestIntegration_Redis_TTLExpires(t *testing.T) {
	rc, cleanup := startRedis(t)
	defer cleanup()

	require.NoError(t, rc.Set(context.Background(), "short", models.EmptySearchResult(), 100*time.Millisecond))

	require.Eventually(t, func() bool {
		_, ok, err := rc.Get(context.Background(), "short")
		return err == nil && !ok
	}, 3*time.Second, 50*time.Millisecond)
}

func TestNewRedisCache_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache(context.Background(), "://bad", "")
	require.Error(t, err)
}
