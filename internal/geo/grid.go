// Package geo provides coordinate types and the projection onto the
// national forecast grid.
package geo

import (
	"errors"
	"math"
)

// Geo errors.
var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate checks that the coordinate is within valid ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

// GridCell is a discrete (nx, ny) index into the KMA forecast grid.
// It is derived deterministically from a Coordinate and never mutated
// independently of its source.
type GridCell struct {
	NX int `json:"nx"`
	NY int `json:"ny"`
}

// Lambert conformal conic parameters of the KMA 5 km forecast grid.
const (
	earthRadiusKm = 6371.00877 // earth radius
	gridSpacingKm = 5.0        // grid spacing
	stdParallel1  = 30.0       // first standard parallel
	stdParallel2  = 60.0       // second standard parallel
	originLon     = 126.0      // reference longitude
	originLat     = 38.0       // reference latitude
	originX       = 43.0       // grid x offset at the origin
	originY       = 136.0      // grid y offset at the origin
)

// Project maps a latitude/longitude onto the KMA forecast grid.
// Pure and deterministic; assumes already-validated finite coordinates.
func Project(lat, lon float64) GridCell {
	re := earthRadiusKm / gridSpacingKm
	degrad := math.Pi / 180.0

	slat1 := stdParallel1 * degrad
	slat2 := stdParallel2 * degrad
	olon := originLon * degrad
	olat := originLat * degrad

	sn := math.Tan(math.Pi*0.25+slat2*0.5) / math.Tan(math.Pi*0.25+slat1*0.5)
	sn = math.Log(math.Cos(slat1)/math.Cos(slat2)) / math.Log(sn)
	sf := math.Tan(math.Pi*0.25 + slat1*0.5)
	sf = math.Pow(sf, sn) * math.Cos(slat1) / sn
	ro := math.Tan(math.Pi*0.25 + olat*0.5)
	ro = re * sf / math.Pow(ro, sn)

	ra := math.Tan(math.Pi*0.25 + lat*degrad*0.5)
	ra = re * sf / math.Pow(ra, sn)

	theta := lon*degrad - olon
	if theta > math.Pi {
		theta -= 2.0 * math.Pi
	}
	if theta < -math.Pi {
		theta += 2.0 * math.Pi
	}
	theta *= sn

	return GridCell{
		NX: int(math.Floor(ra*math.Sin(theta) + originX + 0.5)),
		NY: int(math.Floor(ro - ra*math.Cos(theta) + originY + 0.5)),
	}
}

// ProjectCoordinate is Project for a Coordinate value.
func ProjectCoordinate(c Coordinate) GridCell {
	return Project(c.Lat, c.Lon)
}

// BoundingBox represents a geographic bounding box.
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// Contains checks if a point is within the bounding box.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Center returns the center point of the bounding box.
func (b BoundingBox) Center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}

// KoreaBounds is the map-picker restriction box covering the supported
// service area.
var KoreaBounds = BoundingBox{
	MinLat: 33.0,
	MaxLat: 38.63,
	MinLon: 124.6,
	MaxLon: 131.87,
}
