package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCacheRepo struct{}

func (brokenCacheRepo) Get(context.Context, string, interface{}) error {
	return errors.New("redis down")
}
func (brokenCacheRepo) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("redis down")
}
func (brokenCacheRepo) DeleteByPattern(context.Context, string) error {
	return errors.New("redis down")
}

func TestCacheServiceRoundTripAndMetrics(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewCacheService(newFakeCacheRepo(), metrics, time.Minute, nil, true)
	ctx := context.Background()

	var out map[string]int
	hit, err := svc.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(ctx, "k", map[string]int{"a": 1}, 0))
	hit, err = svc.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, out["a"])

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.cacheMisses))
	assert.Equal(t, 0.5, testutil.ToFloat64(metrics.cacheHitRatio))
}

func TestCacheServiceDisabled(t *testing.T) {
	svc := NewCacheService(newFakeCacheRepo(), nil, 0, nil, false)
	assert.False(t, svc.Enabled())

	hit, err := svc.Get(context.Background(), "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)

	var nilSvc *CacheService
	assert.NoError(t, nilSvc.Invalidate(context.Background(), "k"))
}

func TestCacheServiceSurfacesBackendErrors(t *testing.T) {
	svc := NewCacheService(brokenCacheRepo{}, nil, 0, nil, true)
	ctx := context.Background()

	_, err := svc.Get(ctx, "k", &struct{}{})
	assert.Error(t, err)
	assert.Error(t, svc.Set(ctx, "k", 1, 0))
	assert.Error(t, svc.Invalidate(ctx, "k"))
}
