package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depot-route-service/internal/domain"
	"github.com/depot-route-service/internal/usecase"
)

func names(points []domain.Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Name
	}
	return out
}

func TestNearestNeighborOrder(t *testing.T) {
	t.Run("two or fewer points stay unchanged", func(t *testing.T) {
		points := []domain.Point{
			{Lng: 0, Lat: 0, Name: "A"},
			{Lng: 1, Lat: 0, Name: "B"},
		}

		// Even an explicit start does not reorder a two-point route
		got := usecase.NearestNeighborOrder(points, "B")
		assert.Equal(t, []string{"A", "B"}, names(got))

		got = usecase.NearestNeighborOrder(points[:1], "")
		assert.Equal(t, []string{"A"}, names(got))

		got = usecase.NearestNeighborOrder(nil, "")
		assert.Empty(t, got)
	})

	t.Run("result is a permutation of the input", func(t *testing.T) {
		points := []domain.Point{
			{Lng: 116.30, Lat: 39.90, Name: "网点A"},
			{Lng: 116.52, Lat: 39.88, Name: "网点B"},
			{Lng: 116.41, Lat: 40.01, Name: "网点C"},
			{Lng: 116.33, Lat: 39.77, Name: "网点B"},
			{Lng: 116.47, Lat: 39.95, Name: "网点E"},
		}

		got := usecase.NearestNeighborOrder(points, "")

		require.Len(t, got, len(points))
		assert.ElementsMatch(t, names(points), names(got))
		assert.Equal(t, points[0].Name, got[0].Name)
	})

	t.Run("start selection by name", func(t *testing.T) {
		points := []domain.Point{
			{Lng: 0, Lat: 0, Name: "A"},
			{Lng: 1, Lat: 0, Name: "B"},
			{Lng: 2, Lat: 0, Name: "C"},
		}

		got := usecase.NearestNeighborOrder(points, "B")
		assert.Equal(t, "B", got[0].Name)

		got = usecase.NearestNeighborOrder(points, "unknown")
		assert.Equal(t, "A", got[0].Name)
	})

	t.Run("greedy chain follows nearest neighbor", func(t *testing.T) {
		points := []domain.Point{
			{Lng: 0, Lat: 0, Name: "A"},
			{Lng: 10, Lat: 0, Name: "D"},
			{Lng: 2, Lat: 0, Name: "C"},
			{Lng: 1, Lat: 0, Name: "B"},
		}

		got := usecase.NearestNeighborOrder(points, "A")
		assert.Equal(t, []string{"A", "B", "C", "D"}, names(got))
	})

	t.Run("ties resolve to the earliest pool index", func(t *testing.T) {
		// B and C are equidistant from A; then C and D are equidistant from B
		points := []domain.Point{
			{Lng: 0, Lat: 0, Name: "A"},
			{Lng: 1, Lat: 0, Name: "B"},
			{Lng: -1, Lat: 0, Name: "C"},
			{Lng: 3, Lat: 0, Name: "D"},
		}

		got := usecase.NearestNeighborOrder(points, "")
		assert.Equal(t, []string{"A", "B", "C", "D"}, names(got))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		points := []domain.Point{
			{Lng: 5, Lat: 0, Name: "A"},
			{Lng: 0, Lat: 0, Name: "B"},
			{Lng: 4, Lat: 0, Name: "C"},
		}
		original := make([]domain.Point, len(points))
		copy(original, points)

		usecase.NearestNeighborOrder(points, "B")
		assert.Equal(t, original, points)
	})
}
