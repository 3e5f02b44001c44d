package models

// Dashboard represents one fully assembled dashboard snapshot.
type Dashboard struct {
	Location  Location       `json:"location"`
	Current   CurrentWeather `json:"current"`
	Hourly    []HourlyEntry  `json:"hourly"`
	Daily     []DailyEntry   `json:"daily"`
	Air       *AirQuality    `json:"air,omitempty"`
	SidoName  string         `json:"sidoName"`
	FetchedAt Timestamp      `json:"fetchedAt"`
}

// CurrentWeather represents the latest observed conditions.
type CurrentWeather struct {
	Temperature   string `json:"temperature"`
	Humidity      string `json:"humidity"`
	Precipitation string `json:"precipitation"`
}

// HourlyEntry represents one upcoming hour of the short-term forecast.
type HourlyEntry struct {
	Time        string `json:"time"`
	Temperature string `json:"temperature"`
	Sky         string `json:"sky,omitempty"`
}

// DailyEntry represents one day of the mid-term outlook.
type DailyEntry struct {
	Date       string `json:"date"`
	MaxTemp    string `json:"maxTemp"`
	MinTemp    string `json:"minTemp"`
	PrecipProb string `json:"precipProb"`
	Sky        string `json:"sky,omitempty"`
}

// AirQuality represents particulate readings from the nearest station.
type AirQuality struct {
	StationName    string `json:"stationName"`
	PM10Value      string `json:"pm10Value"`
	PM10Grade      string `json:"pm10Grade"`
	PM10GradeLabel string `json:"pm10GradeLabel"`
	PM25Value      string `json:"pm25Value"`
	PM25Grade      string `json:"pm25Grade"`
	PM25GradeLabel string `json:"pm25GradeLabel"`
	MeasuredAt     string `json:"measuredAt,omitempty"`
}
