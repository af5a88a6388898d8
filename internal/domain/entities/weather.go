package entities

import "time"

// Location is the place a report was resolved to.
type Location struct {
	Name      string
	Region    string
	Country   string
	Lat       float64
	Lon       float64
	TZID      string
	LocalTime time.Time
}

// CurrentWeather holds the conditions at report time.
type CurrentWeather struct {
	LastUpdated   time.Time
	TempC         float64
	TempF         float64
	IsDay         bool
	ConditionCode int
	ConditionIcon string
	WindKPH       float64
	WindMPH       float64
	WindDegree    int
	WindDir       string
	PressureMB    float64
	PrecipMM      float64
	Humidity      int
	Cloud         int
	FeelsLikeC    float64
	FeelsLikeF    float64
	VisKM         float64
	UV            float64
	GustKPH       float64
}

// ForecastDay is the daily summary of a forecast.
type ForecastDay struct {
	Date              time.Time
	MaxTempC          float64
	MaxTempF          float64
	MinTempC          float64
	MinTempF          float64
	AvgTempC          float64
	AvgTempF          float64
	MaxWindKPH        float64
	TotalPrecipMM     float64
	TotalSnowCM       float64
	AvgHumidity       float64
	DailyChanceOfRain int
	DailyChanceOfSnow int
	ConditionCode     int
	ConditionIcon     string
	UV                float64
}

// Alert is a weather warning issued for the location.
type Alert struct {
	Headline    string
	MsgType     string
	Severity    string
	Urgency     string
	Areas       string
	Category    string
	Certainty   string
	Event       string
	Note        string
	Effective   time.Time
	Expires     time.Time
	Description string
	Instruction string
}

// Report is everything the weather source returned for one query.
type Report struct {
	Location Location
	Current  CurrentWeather
	Forecast []ForecastDay
	Alerts   []Alert
}
