package usecase

import (
	"github.com/depot-route-service/internal/domain"
	"github.com/depot-route-service/internal/pkg/utils"
)

// FarthestPointPair перебирает все неупорядоченные пары точек и возвращает
// пару с наибольшим расстоянием по прямой в метрах. Сравнение строгое,
// поэтому при равенстве побеждает первая найденная пара. ok == false, если
// точек меньше двух либо все попарные расстояния нулевые. O(N²), маршруты
// здесь - десятки точек.
func FarthestPointPair(points []domain.Point) (a, b domain.Point, distanceM float64, ok bool) {
	if len(points) < 2 {
		return domain.Point{}, domain.Point{}, 0, false
	}

	var maxDist float64
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := utils.HaversineDistance(points[i].Lat, points[i].Lng, points[j].Lat, points[j].Lng)
			if d > maxDist {
				maxDist = d
				a = points[i]
				b = points[j]
				ok = true
			}
		}
	}

	return a, b, maxDist, ok
}
