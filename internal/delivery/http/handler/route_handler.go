package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/depot-route-service/internal/pkg/errors"
	"github.com/depot-route-service/internal/pkg/utils"
	"github.com/depot-route-service/internal/pkg/validator"
	"github.com/depot-route-service/internal/usecase"
	"github.com/depot-route-service/internal/usecase/dto"
)

// RouteHandler - обработчик маршрутных запросов
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Calculate godoc
// @Summary Сборка маршрута в заданном порядке точек
// @Description Строит сквозной автомобильный маршрут по точкам в порядке их следования в запросе: полилинии соседних пар склеиваются в одну, дистанции и длительности суммируются. Дополнительно возвращает самую удалённую пару точек по прямой.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.CalculateRouteRequest true "Точки маршрута (минимум 2)"
// @Success 200 {object} utils.SuccessResponse{data=domain.RouteResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routes/calculate [post]
func (h *RouteHandler) Calculate(c *fiber.Ctx) error {
	var req dto.CalculateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "failed to parse request body",
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.Details(err)))
	}

	start := time.Now()
	result, err := h.routeUC.ComputeOrderedRoute(c.Context(), dto.ConvertLocations(req.Locations))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    len(result.Legs),
		TimeMSec: float64(time.Since(start).Milliseconds()),
	})
}

// Optimize godoc
// @Summary Маршрут с оптимизацией порядка обхода
// @Description Переупорядочивает точки жадной эвристикой ближайшего соседа (старт задаётся параметром start_name, по умолчанию первая точка) и строит по ним сквозной маршрут.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.OptimizeRouteRequest true "Точки маршрута (минимум 2) и опциональная стартовая точка"
// @Success 200 {object} utils.SuccessResponse{data=domain.RouteResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routes/optimize [post]
func (h *RouteHandler) Optimize(c *fiber.Ctx) error {
	var req dto.OptimizeRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "failed to parse request body",
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.Details(err)))
	}

	start := time.Now()
	result, err := h.routeUC.ComputeOptimizedRoute(c.Context(), dto.ConvertLocations(req.Locations), req.StartName)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    len(result.Legs),
		TimeMSec: float64(time.Since(start).Milliseconds()),
	})
}
