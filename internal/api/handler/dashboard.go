package handler

import (
	"errors"
	"net/http"

	"github.com/nalssiboard/nalssiboard/internal/api/models"
	"github.com/nalssiboard/nalssiboard/internal/api/response"
	"github.com/nalssiboard/nalssiboard/internal/dashboard"
	"github.com/nalssiboard/nalssiboard/internal/forecast"
	"github.com/nalssiboard/nalssiboard/internal/location"
)

// DashboardHandler handles the aggregated dashboard endpoint.
type DashboardHandler struct {
	resolver   *location.Resolver
	dashboards *dashboard.Service
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(resolver *location.Resolver, dashboards *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		resolver:   resolver,
		dashboards: dashboards,
	}
}

// Get handles GET /v1/dashboard - resolve a coordinate, refresh all data
// sources and return the assembled snapshot.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	coord, fieldErrors := parseCoordinate(r)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid coordinate", fieldErrors)
		return
	}

	info, err := h.resolver.FromCoordinate(r.Context(), coord)
	if err != nil {
		writeLocationError(w, r, err)
		return
	}

	snap, err := h.dashboards.Refresh(r.Context(), info)
	if err != nil {
		if errors.Is(err, dashboard.ErrRefreshFailed) {
			response.BadGateway(w, r, "one or more data sources failed")
			return
		}
		response.InternalError(w, r, "dashboard refresh failed")
		return
	}

	response.JSON(w, r, http.StatusOK, toDashboard(snap))
}

// toDashboard converts a snapshot to its API representation. Numeric
// readings are rendered as rounded integers here; the snapshot keeps
// the raw provider values.
func toDashboard(snap *dashboard.Snapshot) models.Dashboard {
	out := models.Dashboard{
		Location:  toLocation(snap.Location),
		SidoName:  snap.SidoName,
		FetchedAt: models.Timestamp(snap.FetchedAt),
		Current: models.CurrentWeather{
			Temperature:   forecast.FormatRounded(snap.Current.Temperature),
			Humidity:      forecast.FormatRounded(snap.Current.Humidity),
			Precipitation: string(snap.Current.Precipitation),
		},
		Hourly: make([]models.HourlyEntry, 0, len(snap.Hourly)),
		Daily:  make([]models.DailyEntry, 0, len(snap.Daily)),
	}

	for _, slot := range snap.Hourly {
		out.Hourly = append(out.Hourly, models.HourlyEntry{
			Time:        slot.Time,
			Temperature: forecast.FormatRounded(slot.Temperature),
			Sky:         string(slot.Sky),
		})
	}
	for _, slot := range snap.Daily {
		out.Daily = append(out.Daily, models.DailyEntry{
			Date:       slot.Date,
			MaxTemp:    forecast.FormatRounded(slot.MaxTemp),
			MinTemp:    forecast.FormatRounded(slot.MinTemp),
			PrecipProb: forecast.FormatRounded(slot.PrecipProb),
			Sky:        string(slot.Sky),
		})
	}

	if snap.Air != nil {
		out.Air = &models.AirQuality{
			StationName:    snap.Air.StationName,
			PM10Value:      snap.Air.PM10Value,
			PM10Grade:      string(snap.Air.PM10Grade),
			PM10GradeLabel: snap.Air.PM10Grade.Label(),
			PM25Value:      snap.Air.PM25Value,
			PM25Grade:      string(snap.Air.PM25Grade),
			PM25GradeLabel: snap.Air.PM25Grade.Label(),
			MeasuredAt:     snap.Air.MeasuredAt,
		}
	}

	return out
}
