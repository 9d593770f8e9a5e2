package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/depot-route-service/internal/domain"
	"github.com/depot-route-service/internal/domain/repository"
	"github.com/depot-route-service/internal/pkg/errors"
	"github.com/depot-route-service/internal/pkg/utils"
)

// RouteUseCase - use case построения маршрута по точкам сети
type RouteUseCase struct {
	directions repository.DirectionsRepository
	logger     *zap.Logger
}

func NewRouteUseCase(
	directions repository.DirectionsRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		directions: directions,
		logger:     logger,
	}
}

// ComputeOrderedRoute собирает маршрут в заданном порядке точек
func (uc *RouteUseCase) ComputeOrderedRoute(
	ctx context.Context,
	points []domain.Point,
) (*domain.RouteResult, error) {
	if err := validateRoutePoints(points); err != nil {
		return nil, err
	}

	return uc.buildRouteResult(ctx, points)
}

// ComputeOptimizedRoute переупорядочивает точки жадной эвристикой
// ближайшего соседа и собирает маршрут. startName задает стартовую точку;
// пустое или неизвестное имя оставляет старт на нулевом индексе.
func (uc *RouteUseCase) ComputeOptimizedRoute(
	ctx context.Context,
	points []domain.Point,
	startName string,
) (*domain.RouteResult, error) {
	if err := validateRoutePoints(points); err != nil {
		return nil, err
	}

	ordered := NearestNeighborOrder(points, startName)

	return uc.buildRouteResult(ctx, ordered)
}

// validateRoutePoints отклоняет невалидный вход до первого обращения
// к провайдеру направлений
func validateRoutePoints(points []domain.Point) error {
	if len(points) < 2 {
		return errors.ErrNotEnoughPoints
	}
	for _, p := range points {
		if p.Name == "" {
			return errors.ErrEmptyPointName
		}
		if !utils.ValidateCoordinates(p.Lat, p.Lng) {
			return errors.ErrInvalidCoordinates
		}
	}
	return nil
}

// buildRouteResult опрашивает провайдера по каждой паре соседних точек
// строго последовательно: решение о склейке стыка зависит от хвоста уже
// собранной полилинии. Любой отказ провайдера валит сборку целиком,
// частичный результат не возвращается.
func (uc *RouteUseCase) buildRouteResult(
	ctx context.Context,
	route []domain.Point,
) (*domain.RouteResult, error) {
	polyline := make([]domain.Coordinate, 0, 256)
	legs := make([]domain.Leg, 0, len(route)-1)

	totalDistance := 0
	totalDuration := 0

	for i := 0; i+1 < len(route); i++ {
		from, to := route[i], route[i+1]

		driving, err := uc.directions.Driving(ctx, from, to)
		if err != nil {
			uc.logger.Error("Leg directions failed",
				zap.String("from", from.Name),
				zap.String("to", to.Name),
				zap.Error(err))
			return nil, errors.Directions(fmt.Errorf("leg %q -> %q: %w", from.Name, to.Name, err))
		}

		legPoly := driving.Polyline
		if len(polyline) > 0 && len(legPoly) > 0 && polyline[len(polyline)-1] == legPoly[0] {
			// Общая точка стыка уже лежит в хвосте собранной полилинии
			legPoly = legPoly[1:]
		}
		polyline = append(polyline, legPoly...)

		var midPoint *domain.Coordinate
		if len(legPoly) > 0 {
			mid := legPoly[len(legPoly)/2]
			midPoint = &mid
		}

		legs = append(legs, domain.Leg{
			From:         from.Name,
			To:           to.Name,
			DistanceM:    driving.DistanceM,
			DurationS:    driving.DurationS,
			DistanceText: utils.FormatDistance(driving.DistanceM),
			DurationText: utils.FormatDuration(driving.DurationS),
			MidPoint:     midPoint,
		})

		totalDistance += driving.DistanceM
		totalDuration += driving.DurationS
	}

	result := &domain.RouteResult{
		Route:             route,
		Polyline:          polyline,
		Legs:              legs,
		TotalDistanceM:    totalDistance,
		TotalDurationS:    totalDuration,
		TotalDistanceText: utils.FormatDistance(totalDistance),
		TotalDurationText: utils.FormatDuration(totalDuration),
	}

	if a, b, dist, ok := FarthestPointPair(route); ok {
		meters := int(dist)
		result.FarthestPoints = &domain.FarthestPoints{
			PointA:               a,
			PointB:               b,
			StraightDistanceM:    meters,
			StraightDistanceText: utils.FormatDistance(meters),
		}
	}

	uc.logger.Info("Route assembled",
		zap.Int("points", len(route)),
		zap.Int("legs", len(legs)),
		zap.Int("total_distance_m", totalDistance),
		zap.Int("total_duration_s", totalDuration))

	return result, nil
}
