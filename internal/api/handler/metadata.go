package handler

import (
	"net/http"

	"github.com/nalssiboard/nalssiboard/internal/airquality"
	"github.com/nalssiboard/nalssiboard/internal/api/models"
	"github.com/nalssiboard/nalssiboard/internal/api/response"
	"github.com/nalssiboard/nalssiboard/internal/forecast"
	"github.com/nalssiboard/nalssiboard/internal/geo"
	"github.com/nalssiboard/nalssiboard/internal/region"
	"github.com/nalssiboard/nalssiboard/internal/theme"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// GetBounds handles GET /v1/metadata/bounds - the coordinate box the map
// view is restricted to.
func (h *MetadataHandler) GetBounds(w http.ResponseWriter, r *http.Request) {
	centerLat, centerLon := geo.KoreaBounds.Center()
	bounds := models.MapBounds{
		Box: models.GeoBox{
			MinLat: geo.KoreaBounds.MinLat,
			MinLon: geo.KoreaBounds.MinLon,
			MaxLat: geo.KoreaBounds.MaxLat,
			MaxLon: geo.KoreaBounds.MaxLon,
		},
		Center: models.Point{Lat: centerLat, Lon: centerLon},
	}
	response.JSON(w, r, http.StatusOK, bounds)
}

// GetEnums handles GET /v1/metadata/enums - enum values used by the API.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	enums := models.Enums{
		Grades: []string{
			string(airquality.GradeGood),
			string(airquality.GradeModerate),
			string(airquality.GradeBad),
			string(airquality.GradeVeryBad),
			string(airquality.GradeUnknown),
		},
		SkyConditions: []string{
			string(forecast.SkyClear),
			string(forecast.SkyMostlyCloudy),
			string(forecast.SkyCloudy),
		},
		PrecipTypes: []string{
			string(forecast.PrecipClear),
			string(forecast.PrecipRain),
			string(forecast.PrecipRainAndSnow),
			string(forecast.PrecipSnow),
			string(forecast.PrecipUnknown),
		},
		Themes: []string{
			string(theme.ThemeLight),
			string(theme.ThemeDark),
		},
	}
	response.JSON(w, r, http.StatusOK, enums)
}

// GetRegions handles GET /v1/metadata/regions - the region normalization
// table used for air-quality lookups.
func (h *MetadataHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	mappings := region.Mappings()
	regions := models.Regions{
		Default: region.DefaultShortName,
		Items:   make([]models.RegionMapping, 0, len(mappings)),
	}
	for _, m := range mappings {
		regions.Items = append(regions.Items, models.RegionMapping{
			LongName:  m.LongName,
			ShortName: m.ShortName,
		})
	}
	response.JSON(w, r, http.StatusOK, regions)
}
