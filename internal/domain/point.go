package domain

// Coordinate - пара [lng, lat] в порядке, который отдает directionlite.
// Массив, а не срез: точки полилинии сравниваются на точное равенство
// при склейке смежных отрезков.
type Coordinate [2]float64

func NewCoordinate(lng, lat float64) Coordinate {
	return Coordinate{lng, lat}
}

func (c Coordinate) Lng() float64 { return c[0] }

func (c Coordinate) Lat() float64 { return c[1] }

// Point - именованная точка сети (отделение, депо). Координаты передаются
// дальше без перепроецирования. Name обязателен: по нему ищется стартовая
// точка и подписываются отрезки маршрута.
type Point struct {
	Lng    float64           `json:"lng"`
	Lat    float64           `json:"lat"`
	Name   string            `json:"name"`
	Remark string            `json:"remark"`
	Group  string            `json:"group"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Coordinate возвращает координату точки в формате полилинии
func (p Point) Coordinate() Coordinate {
	return Coordinate{p.Lng, p.Lat}
}
