package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/depot-route-service/internal/usecase/dto"
)

const (
	serviceName    = "depot-route-service"
	serviceVersion = "1.0.0"
)

// HealthHandler - обработчик health-проверки
type HealthHandler struct{}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check godoc
// @Summary Проверка состояния сервиса
// @Description Возвращает статус сервиса, его имя и версию. Используется для liveness-проверок.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: serviceVersion,
	})
}
