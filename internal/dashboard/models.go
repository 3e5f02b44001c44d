// Package dashboard assembles the per-location view model from the
// weather and air-quality providers.
package dashboard

import (
	"errors"
	"time"

	"github.com/nalssiboard/nalssiboard/internal/airquality"
	"github.com/nalssiboard/nalssiboard/internal/forecast"
	"github.com/nalssiboard/nalssiboard/internal/location"
)

// Dashboard errors.
var (
	// ErrRefreshFailed means at least one of the four data sources
	// failed; no partial snapshot is ever published.
	ErrRefreshFailed = errors.New("dashboard refresh failed")
)

// Snapshot is the immutable view model for one location, rebuilt whole
// on every refresh cycle. A nil Air means the region currently has no
// air-quality readings, which is an absent state, not a failure.
type Snapshot struct {
	Location *location.Info              `json:"location"`
	Current  forecast.CurrentObservation `json:"current"`
	Hourly   []forecast.HourlySlot       `json:"hourly"`
	Daily    []forecast.DailySlot        `json:"daily"`
	Air      *airquality.Reading         `json:"air,omitempty"`

	SidoName  string    `json:"sidoName"`
	CityLabel string    `json:"cityLabel"`
	FetchedAt time.Time `json:"fetchedAt"`
}
