package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_WireFormat(t *testing.T) {
	tests := []struct {
		name        string
		coord       Coordinate
		expected    string
		description string
	}{
		{
			name:        "lng first lat second",
			coord:       NewCoordinate(116.404, 39.915),
			expected:    "[116.404,39.915]",
			description: "Polyline points are serialized as [lng, lat] arrays",
		},
		{
			name:        "zero coordinate",
			coord:       Coordinate{},
			expected:    "[0,0]",
			description: "Zero value marshals as the origin",
		},
		{
			name:        "negative longitude",
			coord:       NewCoordinate(-73.9857, 40.7484),
			expected:    "[-73.9857,40.7484]",
			description: "Western hemisphere keeps the sign",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.coord)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(raw), tt.description)
		})
	}
}

func TestCoordinate_Accessors(t *testing.T) {
	c := NewCoordinate(116.404, 39.915)

	assert.Equal(t, 116.404, c.Lng())
	assert.Equal(t, 39.915, c.Lat())
}

func TestCoordinate_Equality(t *testing.T) {
	a := NewCoordinate(116.404, 39.915)
	b := NewCoordinate(116.404, 39.915)
	c := NewCoordinate(116.404, 39.916)

	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestPoint_Coordinate(t *testing.T) {
	p := Point{Lng: 121.4737, Lat: 31.2304, Name: "上海网点"}

	assert.Equal(t, NewCoordinate(121.4737, 31.2304), p.Coordinate())
}

func TestPoint_WireFormat(t *testing.T) {
	p := Point{Lng: 116.404, Lat: 39.915, Name: "北京网点", Remark: "", Group: "华北"}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	// remark и group присутствуют в ответе даже пустыми
	assert.JSONEq(t, `{"lng":116.404,"lat":39.915,"name":"北京网点","remark":"","group":"华北"}`, string(raw))
}
