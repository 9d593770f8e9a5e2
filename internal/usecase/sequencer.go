package usecase

import (
	"github.com/depot-route-service/internal/domain"
)

// NearestNeighborOrder строит порядок обхода точек жадным выбором
// ближайшего соседа. Стартовая точка - первая с именем startName, иначе
// нулевая. Близость меряется квадратом плоского расстояния Δlng²+Δlat²:
// для локального выбора следующего шага важен только относительный
// порядок, не геодезическая точность. При равных расстояниях побеждает
// меньший индекс в текущем пуле. Вход не мутируется, результат - его
// перестановка. Заведомо не оптимальный тур, только жадное приближение.
func NearestNeighborOrder(points []domain.Point, startName string) []domain.Point {
	if len(points) <= 2 {
		out := make([]domain.Point, len(points))
		copy(out, points)
		return out
	}

	startIdx := 0
	if startName != "" {
		for i, p := range points {
			if p.Name == startName {
				startIdx = i
				break
			}
		}
	}

	remaining := make([]domain.Point, 0, len(points)-1)
	remaining = append(remaining, points[:startIdx]...)
	remaining = append(remaining, points[startIdx+1:]...)

	route := make([]domain.Point, 0, len(points))
	route = append(route, points[startIdx])

	for len(remaining) > 0 {
		last := route[len(route)-1]

		best := 0
		bestDist := planarSquaredDistance(last, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := planarSquaredDistance(last, remaining[i]); d < bestDist {
				best = i
				bestDist = d
			}
		}

		route = append(route, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return route
}

func planarSquaredDistance(a, b domain.Point) float64 {
	dLng := a.Lng - b.Lng
	dLat := a.Lat - b.Lat
	return dLng*dLng + dLat*dLat
}
