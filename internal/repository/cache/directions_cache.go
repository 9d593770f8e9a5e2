package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/depot-route-service/internal/domain"
	"github.com/depot-route-service/internal/domain/repository"
)

// cachedDirections оборачивает провайдера направлений кешем. Политика
// кеширования живет на стороне провайдера и не видна сборке маршрута;
// отказ кеша не валит запрос, идем напрямую к провайдеру.
type cachedDirections struct {
	next    repository.DirectionsRepository
	cache   repository.CacheRepository
	ttl     time.Duration
	tactics int
	logger  *zap.Logger
}

// NewCachedDirections декорирует провайдера направлений Redis-кешем.
// tactics входит в ключ: разные стратегии проезда дают разные маршруты.
func NewCachedDirections(
	next repository.DirectionsRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
	tactics int,
	logger *zap.Logger,
) repository.DirectionsRepository {
	return &cachedDirections{
		next:    next,
		cache:   cacheRepo,
		ttl:     ttl,
		tactics: tactics,
		logger:  logger,
	}
}

func (c *cachedDirections) Driving(ctx context.Context, from, to domain.Point) (*domain.DrivingLeg, error) {
	key := c.key(from, to)

	if data, err := c.cache.Get(ctx, key); err == nil && data != nil {
		var leg domain.DrivingLeg
		if err := json.Unmarshal(data, &leg); err == nil {
			return &leg, nil
		}
		c.logger.Warn("Corrupt cached leg, refetching", zap.String("key", key))
	}

	leg, err := c.next.Driving(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(leg); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.Warn("Failed to cache driving leg",
				zap.String("key", key),
				zap.Error(err))
		}
	}

	return leg, nil
}

func (c *cachedDirections) key(from, to domain.Point) string {
	return "directions:driving:" + strconv.Itoa(c.tactics) + ":" +
		formatCoord(from.Lng, from.Lat) + ":" + formatCoord(to.Lng, to.Lat)
}

func formatCoord(lng, lat float64) string {
	return strconv.FormatFloat(lng, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64)
}
