package cache

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/depot-route-service/internal/config"
	"github.com/depot-route-service/internal/domain"
)

type stubDirections struct {
	calls int
	leg   *domain.DrivingLeg
	err   error
}

func (s *stubDirections) Driving(ctx context.Context, from, to domain.Point) (*domain.DrivingLeg, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.leg, nil
}

func newTestRedis(t *testing.T) *Redis {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	r, err := NewRedis(&config.RedisConfig{Host: mr.Host(), Port: port}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	return r
}

func TestCachedDirections_Driving(t *testing.T) {
	from := domain.Point{Lng: 116.3, Lat: 39.9, Name: "A"}
	to := domain.Point{Lng: 116.4, Lat: 39.95, Name: "B"}

	leg := &domain.DrivingLeg{
		Polyline:  []domain.Coordinate{{116.3, 39.9}, {116.4, 39.95}},
		DistanceM: 4200,
		DurationS: 600,
	}

	t.Run("miss then hit", func(t *testing.T) {
		r := newTestRedis(t)
		stub := &stubDirections{leg: leg}

		cached := NewCachedDirections(stub, NewCacheRepository(r), time.Minute, 0, zap.NewNop())

		got, err := cached.Driving(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, leg, got)
		assert.Equal(t, 1, stub.calls)

		got, err = cached.Driving(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, leg, got)
		assert.Equal(t, 1, stub.calls, "second call must be served from cache")
	})

	t.Run("different pair is a different key", func(t *testing.T) {
		r := newTestRedis(t)
		stub := &stubDirections{leg: leg}

		cached := NewCachedDirections(stub, NewCacheRepository(r), time.Minute, 0, zap.NewNop())

		_, err := cached.Driving(context.Background(), from, to)
		require.NoError(t, err)
		_, err = cached.Driving(context.Background(), to, from)
		require.NoError(t, err)

		assert.Equal(t, 2, stub.calls)
	})

	t.Run("provider error is not cached", func(t *testing.T) {
		r := newTestRedis(t)
		stub := &stubDirections{err: fmt.Errorf("no route")}

		cached := NewCachedDirections(stub, NewCacheRepository(r), time.Minute, 0, zap.NewNop())

		_, err := cached.Driving(context.Background(), from, to)
		assert.Error(t, err)

		stub.err = nil
		stub.leg = leg

		got, err := cached.Driving(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, leg, got)
		assert.Equal(t, 2, stub.calls)
	})

	t.Run("redis down degrades to provider", func(t *testing.T) {
		r := newTestRedis(t)
		stub := &stubDirections{leg: leg}

		cached := NewCachedDirections(stub, NewCacheRepository(r), time.Minute, 0, zap.NewNop())
		require.NoError(t, r.Close())

		got, err := cached.Driving(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, leg, got)
		assert.Equal(t, 1, stub.calls)
	})
}
