package dto

import "github.com/depot-route-service/internal/domain"

// UploadLocationsResponse - ответ на загрузку книги с точками сети
type UploadLocationsResponse struct {
	Locations  []domain.Point            `json:"locations"`
	Count      int                       `json:"count"`
	Groups     map[string][]domain.Point `json:"groups"`
	GroupCount int                       `json:"group_count"`
}

// HealthResponse - ответ health-проверки
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
