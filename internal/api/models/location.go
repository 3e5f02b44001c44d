package models

// Location represents a resolved location with its forecast grid cell.
type Location struct {
	Point       Point  `json:"point"`
	NX          int    `json:"nx"`
	NY          int    `json:"ny"`
	Country     string `json:"country"`
	Province    string `json:"province"`
	Locality    string `json:"locality,omitempty"`
	SubLocality string `json:"subLocality,omitempty"`
	CityLabel   string `json:"cityLabel"`
}
