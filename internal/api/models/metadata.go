package models

// MapBounds represents the coordinate box the map view is restricted to.
type MapBounds struct {
	Box    GeoBox `json:"box"`
	Center Point  `json:"center"`
}

// Enums represents the enum values used by the API.
type Enums struct {
	Grades        []string `json:"grades"`
	SkyConditions []string `json:"skyConditions"`
	PrecipTypes   []string `json:"precipTypes"`
	Themes        []string `json:"themes"`
}

// RegionMapping represents one administrative division and its short
// name used by the air-quality API.
type RegionMapping struct {
	LongName  string `json:"longName"`
	ShortName string `json:"shortName"`
}

// Regions represents the full region normalization table.
type Regions struct {
	Default string          `json:"default"`
	Items   []RegionMapping `json:"items"`
}
