package usecase

import (
	"io"

	"go.uber.org/zap"

	"github.com/depot-route-service/internal/domain"
	"github.com/depot-route-service/internal/pkg/errors"
	"github.com/depot-route-service/internal/usecase/dto"
)

// defaultGroup - корзина для точек без значения в колонке 网组
const defaultGroup = "未分组"

// WorkbookParser читает точки сети из книги Excel
type WorkbookParser interface {
	ParseLocations(r io.Reader) ([]domain.Point, error)
}

// LocationUseCase - use case загрузки точек сети из книги Excel
type LocationUseCase struct {
	parser WorkbookParser
	logger *zap.Logger
}

func NewLocationUseCase(parser WorkbookParser, logger *zap.Logger) *LocationUseCase {
	return &LocationUseCase{
		parser: parser,
		logger: logger,
	}
}

// ParseWorkbook разбирает книгу и раскладывает точки по группам
func (uc *LocationUseCase) ParseWorkbook(src io.Reader) (*dto.UploadLocationsResponse, error) {
	points, err := uc.parser.ParseLocations(src)
	if err != nil {
		uc.logger.Error("Failed to parse workbook", zap.Error(err))
		return nil, errors.Workbook(err)
	}
	if len(points) == 0 {
		return nil, errors.ErrEmptyWorkbook
	}

	groups := make(map[string][]domain.Point)
	for _, p := range points {
		g := p.Group
		if g == "" {
			g = defaultGroup
		}
		groups[g] = append(groups[g], p)
	}

	uc.logger.Info("Workbook parsed",
		zap.Int("locations", len(points)),
		zap.Int("groups", len(groups)))

	return &dto.UploadLocationsResponse{
		Locations:  points,
		Count:      len(points),
		Groups:     groups,
		GroupCount: len(groups),
	}, nil
}
