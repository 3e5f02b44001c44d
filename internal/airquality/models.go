// Package airquality provides the air-quality domain model and station
// reading selection.
package airquality

import "errors"

// Air quality errors.
var (
	ErrProviderUnavailable = errors.New("air quality provider unavailable")
)

// Grade is the ordinal air-quality severity category. Missing or
// unparsable grades map to GradeUnknown rather than failing.
type Grade string

const (
	GradeGood     Grade = "good"     // 좋음
	GradeModerate Grade = "moderate" // 보통
	GradeBad      Grade = "bad"      // 나쁨
	GradeVeryBad  Grade = "very_bad" // 매우나쁨
	GradeUnknown  Grade = "unknown"
)

// GradeFromCode maps the provider's 1..4 grade code to a Grade.
func GradeFromCode(code string) Grade {
	switch code {
	case "1":
		return GradeGood
	case "2":
		return GradeModerate
	case "3":
		return GradeBad
	case "4":
		return GradeVeryBad
	default:
		return GradeUnknown
	}
}

// Label returns the Korean display label for the grade.
func (g Grade) Label() string {
	switch g {
	case GradeGood:
		return "좋음"
	case GradeModerate:
		return "보통"
	case GradeBad:
		return "나쁨"
	case GradeVeryBad:
		return "매우나쁨"
	default:
		return "알수없음"
	}
}

// Reading is one station's latest particulate measurement. Values stay
// string-encoded the way the provider sends them; "-" means the station
// did not report that pollutant.
type Reading struct {
	StationName string `json:"stationName"`
	PM10Value   string `json:"pm10Value"`
	PM10Grade   Grade  `json:"pm10Grade"`
	PM25Value   string `json:"pm25Value"`
	PM25Grade   Grade  `json:"pm25Grade"`
	MeasuredAt  string `json:"measuredAt"`
}

// SelectReading picks the reading for the resolved locality: an exact
// station-name match wins, otherwise the first reading in the response
// (deterministic but approximate). A nil result means the region has no
// readings at all, which is an absent state rather than an error.
func SelectReading(readings []Reading, locality string) *Reading {
	if len(readings) == 0 {
		return nil
	}
	if locality != "" {
		for i := range readings {
			if readings[i].StationName == locality {
				return &readings[i]
			}
		}
	}
	return &readings[0]
}
