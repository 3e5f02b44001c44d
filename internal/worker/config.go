// Package worker provides background jobs for the dashboard service.
package worker

import (
	"time"
)

// PrewarmTarget is one city whose dashboard snapshot is kept warm.
// Targets carry their province so the snapshot can be built without a
// geocoder round trip.
type PrewarmTarget struct {
	// Name is the city name, used as the locality for station matching.
	Name string

	// Province is the long-form first-level division name.
	Province string

	// Point is the city-center coordinate.
	Point Point

	// Priority determines refresh order (lower = higher priority).
	Priority int
}

// Point represents a geographic coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// PrewarmConfig holds configuration for the snapshot prewarm job.
type PrewarmConfig struct {
	// Targets are the cities to keep warm. If empty, uses
	// DefaultPrewarmTargets.
	Targets []PrewarmTarget

	// Concurrency is the number of concurrent warm operations.
	// Default: 3
	Concurrency int

	// Timeout is the timeout for each warm operation.
	// Default: 30 seconds
	Timeout time.Duration

	// Interval is the delay between periodic runs.
	// Default: 30 minutes
	Interval time.Duration
}

// DefaultPrewarmConfig returns the default prewarm configuration.
func DefaultPrewarmConfig() PrewarmConfig {
	return PrewarmConfig{
		Targets:     DefaultPrewarmTargets(),
		Concurrency: 3,
		Timeout:     30 * time.Second,
		Interval:    30 * time.Minute,
	}
}

// DefaultPrewarmTargets returns the default targets: the capital area
// and the other major metropolitan cities.
func DefaultPrewarmTargets() []PrewarmTarget {
	return []PrewarmTarget{
		{
			Name:     "중구",
			Province: "서울특별시",
			Priority: 1,
			Point:    Point{Lat: 37.5665, Lon: 126.9780}, // Seoul City Hall
		},
		{
			Name:     "남동구",
			Province: "인천광역시",
			Priority: 1,
			Point:    Point{Lat: 37.4563, Lon: 126.7052},
		},
		{
			Name:     "수원시",
			Province: "경기도",
			Priority: 1,
			Point:    Point{Lat: 37.2636, Lon: 127.0286},
		},
		{
			Name:     "연제구",
			Province: "부산광역시",
			Priority: 2,
			Point:    Point{Lat: 35.1796, Lon: 129.0756},
		},
		{
			Name:     "중구",
			Province: "대구광역시",
			Priority: 2,
			Point:    Point{Lat: 35.8714, Lon: 128.6014},
		},
		{
			Name:     "서구",
			Province: "대전광역시",
			Priority: 2,
			Point:    Point{Lat: 36.3504, Lon: 127.3845},
		},
		{
			Name:     "서구",
			Province: "광주광역시",
			Priority: 2,
			Point:    Point{Lat: 35.1595, Lon: 126.8526},
		},
		{
			Name:     "남구",
			Province: "울산광역시",
			Priority: 2,
			Point:    Point{Lat: 35.5384, Lon: 129.3114},
		},
		{
			Name:     "전주시",
			Province: "전라북도",
			Priority: 3,
			Point:    Point{Lat: 35.8242, Lon: 127.1480},
		},
		{
			Name:     "제주시",
			Province: "제주특별자치도",
			Priority: 3,
			Point:    Point{Lat: 33.4996, Lon: 126.5312},
		},
	}
}
