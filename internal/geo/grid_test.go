package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nalssiboard/nalssiboard/internal/geo"
)

func TestProject_KnownCells(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want geo.GridCell
	}{
		{"seoul city hall", 37.5665, 126.978, geo.GridCell{NX: 60, NY: 127}},
		{"grid origin", 38.0, 126.0, geo.GridCell{NX: 43, NY: 136}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.Project(tt.lat, tt.lon))
		})
	}
}

func TestProject_Deterministic(t *testing.T) {
	first := geo.Project(35.8242, 127.1480)
	second := geo.Project(35.8242, 127.1480)
	assert.Equal(t, first, second)
}

func TestProjectCoordinate(t *testing.T) {
	c := geo.Coordinate{Lat: 37.5665, Lon: 126.978}
	assert.Equal(t, geo.Project(c.Lat, c.Lon), geo.ProjectCoordinate(c))
}

func TestCoordinate_Validate(t *testing.T) {
	assert.NoError(t, geo.Coordinate{Lat: 37.5, Lon: 127.0}.Validate())
	assert.ErrorIs(t, geo.Coordinate{Lat: 91, Lon: 0}.Validate(), geo.ErrInvalidCoordinates)
	assert.ErrorIs(t, geo.Coordinate{Lat: 0, Lon: -181}.Validate(), geo.ErrInvalidCoordinates)
}

func TestKoreaBounds(t *testing.T) {
	// Jeonju is inside the service area, Tokyo is not.
	assert.True(t, geo.KoreaBounds.Contains(35.8242, 127.1480))
	assert.False(t, geo.KoreaBounds.Contains(35.6762, 139.6503))

	lat, lon := geo.KoreaBounds.Center()
	assert.InDelta(t, 35.815, lat, 0.001)
	assert.InDelta(t, 128.235, lon, 0.001)
}
