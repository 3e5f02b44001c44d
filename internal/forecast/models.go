// Package forecast provides the weather domain model and the reduction
// of flat KMA category records into per-time and per-date slots.
package forecast

import (
	"errors"
	"math"
	"strconv"
)

// Forecast errors.
var (
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrEmptyResponse       = errors.New("weather response contained no records")
)

// Category codes used by the KMA forecast APIs. The provider may add
// categories at any time; anything not listed here is ignored.
const (
	CategoryTemperature = "T1H" // hourly temperature (°C)
	CategoryDailyTemp   = "TMP" // forecast temperature (°C)
	CategoryHumidity    = "REH" // relative humidity (%)
	CategoryPrecipType  = "PTY" // precipitation type code
	CategorySky         = "SKY" // sky condition code
	CategoryMaxTemp     = "TMX" // daily maximum temperature (°C)
	CategoryMinTemp     = "TMN" // daily minimum temperature (°C)
	CategoryPrecipProb  = "POP" // precipitation probability (%)
)

// CategoryRecord is one flat record from a KMA response: a discriminant
// category code, a time or date key, and a string-encoded value.
type CategoryRecord struct {
	Category string
	Date     string // "YYYYMMDD"
	Time     string // "HHMM"
	Value    string
}

// SkyCondition is the categorical cloud-cover state. The empty value
// means the provider sent an unmapped code; renderers must tolerate a
// missing sky value.
type SkyCondition string

const (
	SkyClear        SkyCondition = "clear"
	SkyMostlyCloudy SkyCondition = "mostly_cloudy"
	SkyCloudy       SkyCondition = "cloudy"
)

// SkyFromCode maps a KMA SKY code to a SkyCondition.
func SkyFromCode(code string) SkyCondition {
	switch code {
	case "1":
		return SkyClear
	case "3":
		return SkyMostlyCloudy
	case "4":
		return SkyCloudy
	default:
		return ""
	}
}

// PrecipType is the categorical precipitation state. Unmapped codes
// yield PrecipUnknown, rendered as a literal placeholder.
type PrecipType string

const (
	PrecipClear       PrecipType = "clear"
	PrecipRain        PrecipType = "rain"
	PrecipRainAndSnow PrecipType = "rain_and_snow"
	PrecipSnow        PrecipType = "snow"
	PrecipUnknown     PrecipType = "-"
)

// PrecipFromCode maps a KMA PTY code to a PrecipType.
func PrecipFromCode(code string) PrecipType {
	switch code {
	case "0":
		return PrecipClear
	case "1", "5":
		return PrecipRain
	case "2", "6":
		return PrecipRainAndSnow
	case "3", "7":
		return PrecipSnow
	default:
		return PrecipUnknown
	}
}

// CurrentObservation is the latest ground observation. It is rebuilt
// whole on every fetch, never merged with prior state.
type CurrentObservation struct {
	Temperature   string     `json:"temperature"`
	Humidity      string     `json:"humidity"`
	Precipitation PrecipType `json:"precipitation"`
}

// HourlySlot is one hour of the short-term forecast. Only categories
// present in the response populate fields.
type HourlySlot struct {
	Time        string       `json:"time"` // "HHMM"
	Temperature string       `json:"temperature,omitempty"`
	Sky         SkyCondition `json:"sky,omitempty"`
}

// DailySlot is one date of the multi-day forecast.
type DailySlot struct {
	Date       string       `json:"date"` // "YYYYMMDD"
	MaxTemp    string       `json:"maxTemp,omitempty"`
	MinTemp    string       `json:"minTemp,omitempty"`
	PrecipProb string       `json:"precipProb,omitempty"`
	Sky        SkyCondition `json:"sky,omitempty"`
}

// FormatRounded renders a string-encoded number as an integer string,
// rounding halves away from zero ("23.6" -> "24", "-0.5" -> "-1").
// Non-numeric input is returned unchanged.
func FormatRounded(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.Itoa(int(math.Round(v)))
}
