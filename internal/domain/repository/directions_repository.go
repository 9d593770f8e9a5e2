package repository

import (
	"context"

	"github.com/depot-route-service/internal/domain"
)

// DirectionsRepository определяет доступ к провайдеру автомобильных
// направлений. Отказ провайдера (после его собственных ретраев)
// возвращается ошибкой; частичных результатов нет.
type DirectionsRepository interface {
	// Driving возвращает полилинию, дистанцию и длительность проезда
	// между двумя точками; порядок точек полилинии принимается как есть
	Driving(ctx context.Context, from, to domain.Point) (*domain.DrivingLeg, error)
}
