package baidu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/depot-route-service/internal/config"
	"github.com/depot-route-service/internal/domain"
	"github.com/depot-route-service/internal/domain/repository"
)

const drivingPath = "/directionlite/v1/driving"

type client struct {
	httpClient   *http.Client
	baseURL      string
	ak           string
	coordType    string
	tactics      int
	retryMax     int
	retryBackoff time.Duration
	logger       *zap.Logger
}

// NewClient создает клиент Baidu directionlite API
func NewClient(cfg *config.BaiduConfig, logger *zap.Logger) (repository.DirectionsRepository, error) {
	if cfg.AK == "" {
		return nil, fmt.Errorf("baidu AK is not configured")
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:      cfg.BaseURL,
		ak:           cfg.AK,
		coordType:    cfg.CoordType,
		tactics:      cfg.Tactics,
		retryMax:     cfg.RetryMax,
		retryBackoff: cfg.RetryBackoff,
		logger:       logger,
	}, nil
}

// Driving возвращает полилинию, дистанцию и длительность проезда между
// двумя точками через directionlite/v1/driving
func (c *client) Driving(ctx context.Context, from, to domain.Point) (*domain.DrivingLeg, error) {
	params := url.Values{}
	params.Set("ak", c.ak)
	params.Set("origin", formatLatLng(from))
	params.Set("destination", formatLatLng(to))
	params.Set("coord_type", c.coordType)
	params.Set("ret_coordtype", c.coordType)
	params.Set("steps_info", "1")
	params.Set("tactics", strconv.Itoa(c.tactics))

	reqURL := c.baseURL + drivingPath + "?" + params.Encode()

	c.logger.Debug("Calling Baidu directionlite API",
		zap.String("from", from.Name),
		zap.String("to", to.Name))

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	})
	if err != nil {
		c.logger.Error("Baidu directionlite request failed",
			zap.String("from", from.Name),
			zap.String("to", to.Name),
			zap.Error(err))
		return nil, fmt.Errorf("driving directions %q -> %q: %w", from.Name, to.Name, err)
	}
	defer resp.Body.Close()

	var dr drivingResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		c.logger.Error("Failed to decode directionlite response", zap.Error(err))
		return nil, fmt.Errorf("decode directionlite response: %w", err)
	}

	if dr.Status != 0 {
		c.logger.Error("Baidu API returned non-zero status",
			zap.Int("status", dr.Status),
			zap.String("message", dr.Message))
		return nil, fmt.Errorf("baidu API status %d: %s", dr.Status, dr.Message)
	}

	if len(dr.Result.Routes) == 0 {
		return nil, fmt.Errorf("baidu API returned no routes for %q -> %q", from.Name, to.Name)
	}

	route := dr.Result.Routes[0]
	leg := &domain.DrivingLeg{
		Polyline:  parseSteps(route.Steps),
		DistanceM: route.Distance,
		DurationS: route.Duration,
	}

	c.logger.Debug("Baidu directionlite call successful",
		zap.Int("distance_m", leg.DistanceM),
		zap.Int("duration_s", leg.DurationS),
		zap.Int("polyline_points", len(leg.Polyline)))

	return leg, nil
}

type drivingResponse struct {
	Status  int           `json:"status"`
	Message string        `json:"message"`
	Result  drivingResult `json:"result"`
}

type drivingResult struct {
	Routes []drivingRoute `json:"routes"`
}

type drivingRoute struct {
	Distance int           `json:"distance"`
	Duration int           `json:"duration"`
	Steps    []drivingStep `json:"steps"`
}

type drivingStep struct {
	Path string `json:"path"`
}

// parseSteps разбирает step.path вида "lng,lat;lng,lat;..." в полилинию;
// пары, которые не парсятся, пропускаются
func parseSteps(steps []drivingStep) []domain.Coordinate {
	poly := make([]domain.Coordinate, 0, 64)
	for _, step := range steps {
		if step.Path == "" {
			continue
		}
		for _, pair := range strings.Split(step.Path, ";") {
			lngStr, latStr, ok := strings.Cut(pair, ",")
			if !ok {
				continue
			}
			lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
			if err != nil {
				continue
			}
			lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
			if err != nil {
				continue
			}
			poly = append(poly, domain.NewCoordinate(lng, lat))
		}
	}
	return poly
}

// formatLatLng форматирует точку как "lat,lng" без потери точности
func formatLatLng(p domain.Point) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}
