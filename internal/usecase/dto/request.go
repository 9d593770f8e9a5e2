package dto

import (
	"strings"

	"github.com/depot-route-service/internal/domain"
)

// Location - точка сети в теле запроса
type Location struct {
	Lng    float64           `json:"lng" validate:"min=-180,max=180"`
	Lat    float64           `json:"lat" validate:"min=-90,max=90"`
	Name   string            `json:"name" validate:"required"`
	Remark string            `json:"remark"`
	Group  string            `json:"group"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// CalculateRouteRequest - запрос сборки маршрута в заданном порядке точек
type CalculateRouteRequest struct {
	Locations []Location `json:"locations" validate:"required,min=2,dive"`
}

// OptimizeRouteRequest - запрос маршрута с оптимизацией порядка обхода
type OptimizeRouteRequest struct {
	Locations []Location `json:"locations" validate:"required,min=2,dive"`
	StartName string     `json:"start_name"`
}

// ConvertLocations переводит DTO в доменные точки, обрезая пробелы в строках
func ConvertLocations(locations []Location) []domain.Point {
	points := make([]domain.Point, 0, len(locations))
	for _, l := range locations {
		points = append(points, domain.Point{
			Lng:    l.Lng,
			Lat:    l.Lat,
			Name:   strings.TrimSpace(l.Name),
			Remark: strings.TrimSpace(l.Remark),
			Group:  strings.TrimSpace(l.Group),
			Tags:   l.Tags,
		})
	}
	return points
}
