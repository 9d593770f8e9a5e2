package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/depot-route-service/internal/domain"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestReader_ParseLocations(t *testing.T) {
	reader := NewReader(zap.NewNop())

	t.Run("parses rows with optional and extra columns", func(t *testing.T) {
		src := buildWorkbook(t, [][]interface{}{
			{"经度", "纬度", "网点名称", "备注", "网组", "负责人"},
			{116.3, 39.9, "网点A", "总部", "一组", "张三"},
			{116.4, 39.95, "网点B", "", "", ""},
		})

		points, err := reader.ParseLocations(src)
		require.NoError(t, err)
		require.Len(t, points, 2)

		assert.Equal(t, domain.Point{
			Lng:    116.3,
			Lat:    39.9,
			Name:   "网点A",
			Remark: "总部",
			Group:  "一组",
			Tags:   map[string]string{"负责人": "张三"},
		}, points[0])

		assert.Equal(t, "网点B", points[1].Name)
		assert.Empty(t, points[1].Remark)
		assert.Empty(t, points[1].Group)
		assert.Nil(t, points[1].Tags)
	})

	t.Run("skips rows with blank name or bad coordinates", func(t *testing.T) {
		src := buildWorkbook(t, [][]interface{}{
			{"经度", "纬度", "网点名称"},
			{116.3, 39.9, "网点A"},
			{116.4, 39.95, "  "},
			{"不是数字", 39.95, "网点C"},
			{116.5, "", "网点D"},
			{116.6, 40.0, "网点E"},
		})

		points, err := reader.ParseLocations(src)
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, "网点A", points[0].Name)
		assert.Equal(t, "网点E", points[1].Name)
	})

	t.Run("missing required column", func(t *testing.T) {
		src := buildWorkbook(t, [][]interface{}{
			{"经度", "网点名称"},
			{116.3, "网点A"},
		})

		points, err := reader.ParseLocations(src)
		assert.Error(t, err)
		assert.Nil(t, points)
		assert.Contains(t, err.Error(), "纬度")
	})

	t.Run("header only workbook yields no points", func(t *testing.T) {
		src := buildWorkbook(t, [][]interface{}{
			{"经度", "纬度", "网点名称"},
		})

		points, err := reader.ParseLocations(src)
		require.NoError(t, err)
		assert.Empty(t, points)
	})

	t.Run("not a workbook", func(t *testing.T) {
		_, err := reader.ParseLocations(bytes.NewReader([]byte("definitely not xlsx")))
		assert.Error(t, err)
	})
}
