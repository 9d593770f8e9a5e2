package domain

// DrivingLeg - сырой результат directions-провайдера для пары точек
type DrivingLeg struct {
	Polyline  []Coordinate `json:"polyline"`
	DistanceM int          `json:"distance"`
	DurationS int          `json:"duration"`
}

// Leg - собранный отрезок маршрута между двумя соседними точками.
// MidPoint - элемент len(poly)/2 полилинии отрезка после склейки,
// nil если полилиния пуста; используется для подписи отрезка на карте.
type Leg struct {
	From         string      `json:"from"`
	To           string      `json:"to"`
	DistanceM    int         `json:"distance"`
	DurationS    int         `json:"duration"`
	DistanceText string      `json:"distance_text"`
	DurationText string      `json:"duration_text"`
	MidPoint     *Coordinate `json:"mid_point"`
}

// FarthestPoints - самая удаленная по прямой пара точек маршрута
type FarthestPoints struct {
	PointA               Point  `json:"point1"`
	PointB               Point  `json:"point2"`
	StraightDistanceM    int    `json:"straight_distance"`
	StraightDistanceText string `json:"straight_distance_text"`
}

// RouteResult - итог сборки маршрута: фактический порядок обхода,
// единая полилиния без дублей на стыках, отрезки и суммарные показатели
type RouteResult struct {
	Route             []Point         `json:"route"`
	Polyline          []Coordinate    `json:"polyline"`
	Legs              []Leg           `json:"legs"`
	TotalDistanceM    int             `json:"total_distance"`
	TotalDurationS    int             `json:"total_duration"`
	TotalDistanceText string          `json:"total_distance_text"`
	TotalDurationText string          `json:"total_duration_text"`
	FarthestPoints    *FarthestPoints `json:"farthest_points"`
}
