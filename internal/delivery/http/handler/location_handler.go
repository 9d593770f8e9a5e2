package handler

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/depot-route-service/internal/pkg/errors"
	"github.com/depot-route-service/internal/pkg/utils"
	"github.com/depot-route-service/internal/usecase"
)

// LocationHandler - обработчик загрузки точек сети
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// Upload godoc
// @Summary Загрузка точек сети из книги Excel
// @Description Принимает книгу .xlsx с колонками 经度, 纬度, 网点名称 (опционально 备注 и 网组), разбирает точки и раскладывает их по группам. Строки без имени или с нечитаемыми координатами пропускаются.
// @Tags Locations
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Книга Excel (.xlsx)"
// @Success 200 {object} utils.SuccessResponse{data=dto.UploadLocationsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/locations/upload [post]
func (h *LocationHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"file": "multipart file field is required",
		}))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xlsm" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"file": "only .xlsx and .xlsm workbooks are supported",
		}))
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded workbook", zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}
	defer src.Close()

	result, err := h.locationUC.ParseWorkbook(src)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Count,
	})
}
