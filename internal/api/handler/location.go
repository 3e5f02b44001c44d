package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/nalssiboard/nalssiboard/internal/api/models"
	"github.com/nalssiboard/nalssiboard/internal/api/response"
	"github.com/nalssiboard/nalssiboard/internal/geo"
	"github.com/nalssiboard/nalssiboard/internal/location"
)

// LocationHandler handles location resolution endpoints.
type LocationHandler struct {
	resolver *location.Resolver
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(resolver *location.Resolver) *LocationHandler {
	return &LocationHandler{resolver: resolver}
}

// Resolve handles GET /v1/location - resolve a map-click coordinate.
func (h *LocationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
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

	response.JSON(w, r, http.StatusOK, toLocation(info))
}

// Search handles GET /v1/location/search - resolve a free-text query.
func (h *LocationHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		response.BadRequest(w, r, "missing query", []models.FieldError{
			{Field: "q", Message: "required", Code: "REQUIRED"},
		})
		return
	}

	info, err := h.resolver.FromQuery(r.Context(), query)
	if err != nil {
		writeLocationError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toLocation(info))
}

// parseCoordinate reads and validates lat/lon query parameters.
func parseCoordinate(r *http.Request) (geo.Coordinate, []models.FieldError) {
	var fieldErrors []models.FieldError

	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")

	lat, err := strconv.ParseFloat(latStr, 64)
	if latStr == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "lat", Message: "required", Code: "REQUIRED"})
	} else if err != nil {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "lat", Message: "must be a number", Code: "INVALID"})
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if lonStr == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "lon", Message: "required", Code: "REQUIRED"})
	} else if err != nil {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "lon", Message: "must be a number", Code: "INVALID"})
	}

	return geo.Coordinate{Lat: lat, Lon: lon}, fieldErrors
}

// writeLocationError maps resolver errors to problem responses.
func writeLocationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, geo.ErrInvalidCoordinates):
		response.BadRequest(w, r, "coordinate out of range", nil)
	case errors.Is(err, location.ErrOutOfBounds):
		response.UnprocessableEntity(w, r, "location is outside the supported country")
	case errors.Is(err, location.ErrNotFound):
		response.NotFound(w, r, "no address found for the given input")
	case errors.Is(err, location.ErrGeocoderUnavailable):
		response.BadGateway(w, r, "geocoding provider unavailable")
	default:
		response.InternalError(w, r, "location resolution failed")
	}
}

// toLocation converts a resolved location to its API representation.
func toLocation(info *location.Info) models.Location {
	return models.Location{
		Point:       models.Point{Lat: info.Coordinate.Lat, Lon: info.Coordinate.Lon},
		NX:          info.Grid.NX,
		NY:          info.Grid.NY,
		Country:     info.Country,
		Province:    info.Province,
		Locality:    info.Locality,
		SubLocality: info.SubLocality,
		CityLabel:   info.CityLabel(),
	}
}
