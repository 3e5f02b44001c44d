package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalssiboard/nalssiboard/internal/airquality"
	"github.com/nalssiboard/nalssiboard/internal/dashboard"
	"github.com/nalssiboard/nalssiboard/internal/forecast"
	"github.com/nalssiboard/nalssiboard/internal/geo"
	"github.com/nalssiboard/nalssiboard/internal/location"
)

func TestToDashboard_RendersRoundedNumbers(t *testing.T) {
	coord := geo.Coordinate{Lat: 37.5665, Lon: 126.978}
	snap := &dashboard.Snapshot{
		Location: &location.Info{
			Coordinate: coord,
			Grid:       geo.ProjectCoordinate(coord),
			Country:    "대한민국",
			Province:   "서울특별시",
			Locality:   "중구",
		},
		Current: forecast.CurrentObservation{
			Temperature:   "3.2",
			Humidity:      "60.5",
			Precipitation: forecast.PrecipClear,
		},
		Hourly: []forecast.HourlySlot{
			{Time: "1400", Temperature: "23.6", Sky: forecast.SkyClear},
		},
		Daily: []forecast.DailySlot{
			{Date: "20240116", MaxTemp: "-0.5", MinTemp: "-4.4", PrecipProb: "30", Sky: forecast.SkyCloudy},
		},
		SidoName:  "서울",
		FetchedAt: time.Date(2024, 1, 15, 14, 10, 0, 0, time.Local),
	}

	out := toDashboard(snap)

	assert.Equal(t, "3", out.Current.Temperature)
	assert.Equal(t, "61", out.Current.Humidity)

	require.Len(t, out.Hourly, 1)
	assert.Equal(t, "24", out.Hourly[0].Temperature)

	require.Len(t, out.Daily, 1)
	assert.Equal(t, "-1", out.Daily[0].MaxTemp)
	assert.Equal(t, "-4", out.Daily[0].MinTemp)
	assert.Equal(t, "30", out.Daily[0].PrecipProb)
}

func TestToDashboard_AirGradeLabels(t *testing.T) {
	coord := geo.Coordinate{Lat: 37.5665, Lon: 126.978}
	snap := &dashboard.Snapshot{
		Location: &location.Info{Coordinate: coord, Grid: geo.ProjectCoordinate(coord)},
		Air: &airquality.Reading{
			StationName: "중구",
			PM10Value:   "45",
			PM10Grade:   airquality.GradeModerate,
			PM25Value:   "12",
			PM25Grade:   airquality.GradeGood,
		},
	}

	out := toDashboard(snap)

	require.NotNil(t, out.Air)
	assert.Equal(t, "보통", out.Air.PM10GradeLabel)
	assert.Equal(t, "좋음", out.Air.PM25GradeLabel)
}
