// Package location resolves user-selected coordinates and free-text
// queries into named places on the supported national grid.
package location

import (
	"errors"

	"github.com/nalssiboard/nalssiboard/internal/geo"
)

// Location errors.
var (
	// ErrOutOfBounds means the place resolved to a country other than
	// the supported one. Callers keep their previous location state.
	ErrOutOfBounds = errors.New("location outside supported country")

	// ErrNotFound means the geocoder matched nothing.
	ErrNotFound = errors.New("location not found")

	// ErrGeocoderUnavailable means the geocoding call itself failed.
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
)

// SupportedCountryCode is the only country this service covers.
const SupportedCountryCode = "KR"

// Address is a geocoder result reduced to the components this service
// cares about. Every component is independently optional; an absent one
// is an empty string, never a failure.
type Address struct {
	Country     string
	CountryCode string // ISO 3166-1 alpha-2
	Province    string // first-level division
	Locality    string // city
	SubLocality string // district
	Coordinate  geo.Coordinate
}

// Info is a fully resolved location: names plus the forecast grid cell
// derived from its coordinate. Instances are immutable; a failed
// resolution never produces a partially updated Info.
type Info struct {
	Coordinate  geo.Coordinate `json:"coordinate"`
	Grid        geo.GridCell   `json:"grid"`
	Country     string         `json:"country"`
	Province    string         `json:"province"`
	Locality    string         `json:"locality,omitempty"`
	SubLocality string         `json:"subLocality,omitempty"`
}

// CityLabel is the canonical display key: "{locality}, {province}" when
// a locality was resolved, otherwise just the province. Downstream code
// uses it both for display and for station-name matching.
func (i *Info) CityLabel() string {
	if i.Locality != "" {
		return i.Locality + ", " + i.Province
	}
	return i.Province
}
