package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/depot-route-service/internal/domain"
)

// Ожидаемые заголовки колонок книги с точками сети
const (
	colLng    = "经度"
	colLat    = "纬度"
	colName   = "网点名称"
	colRemark = "备注"
	colGroup  = "网组"
)

type Reader struct {
	logger *zap.Logger
}

// NewReader создает парсер книг Excel с точками сети
func NewReader(logger *zap.Logger) *Reader {
	return &Reader{logger: logger}
}

// ParseLocations читает первый лист книги: обязательные колонки 经度/纬度/网点名称,
// опциональные 备注/网组; прочие непустые колонки уходят в Tags как есть.
// Строки без имени или с нечисловыми координатами пропускаются.
func (r *Reader) ParseLocations(src io.Reader) ([]domain.Point, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook is empty")
	}

	header := rows[0]
	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, ok := colIdx[h]; !ok {
			colIdx[h] = i
		}
	}

	var missing []string
	for _, col := range []string{colLng, colLat, colName} {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	points := make([]domain.Point, 0, len(rows)-1)
	skipped := 0

	for _, row := range rows[1:] {
		name := strings.TrimSpace(cellAt(row, colIdx[colName]))
		if name == "" {
			skipped++
			continue
		}

		lng, errLng := strconv.ParseFloat(strings.TrimSpace(cellAt(row, colIdx[colLng])), 64)
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(cellAt(row, colIdx[colLat])), 64)
		if errLng != nil || errLat != nil {
			skipped++
			continue
		}

		p := domain.Point{
			Lng:  lng,
			Lat:  lat,
			Name: name,
		}
		if idx, ok := colIdx[colRemark]; ok {
			p.Remark = strings.TrimSpace(cellAt(row, idx))
		}
		if idx, ok := colIdx[colGroup]; ok {
			p.Group = strings.TrimSpace(cellAt(row, idx))
		}

		for h, idx := range colIdx {
			switch h {
			case colLng, colLat, colName, colRemark, colGroup:
				continue
			}
			if v := strings.TrimSpace(cellAt(row, idx)); v != "" {
				if p.Tags == nil {
					p.Tags = make(map[string]string)
				}
				p.Tags[h] = v
			}
		}

		points = append(points, p)
	}

	r.logger.Debug("Parsed workbook locations",
		zap.Int("parsed", len(points)),
		zap.Int("skipped", skipped))

	return points, nil
}

// cellAt достает значение ячейки с учетом того, что GetRows
// обрезает хвостовые пустые ячейки строки
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
