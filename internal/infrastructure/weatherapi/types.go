package weatherapi

import (
	"time"

	"weatherbot/internal/domain/entities"
)

type forecastResponse struct {
	Location locationJSON `json:"location"`
	Current  currentJSON  `json:"current"`
	Forecast struct {
		ForecastDay []forecastDayJSON `json:"forecastday"`
	} `json:"forecast"`
	Alerts struct {
		Alert []alertJSON `json:"alert"`
	} `json:"alerts"`
}

type locationJSON struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TZID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
}

type conditionJSON struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type currentJSON struct {
	LastUpdatedEpoch int64         `json:"last_updated_epoch"`
	TempC            float64       `json:"temp_c"`
	TempF            float64       `json:"temp_f"`
	IsDay            int           `json:"is_day"`
	Condition        conditionJSON `json:"condition"`
	WindMPH          float64       `json:"wind_mph"`
	WindKPH          float64       `json:"wind_kph"`
	WindDegree       int           `json:"wind_degree"`
	WindDir          string        `json:"wind_dir"`
	PressureMB       float64       `json:"pressure_mb"`
	PrecipMM         float64       `json:"precip_mm"`
	Humidity         int           `json:"humidity"`
	Cloud            int           `json:"cloud"`
	FeelsLikeC       float64       `json:"feelslike_c"`
	FeelsLikeF       float64       `json:"feelslike_f"`
	VisKM            float64       `json:"vis_km"`
	UV               float64       `json:"uv"`
	GustKPH          float64       `json:"gust_kph"`
}

type forecastDayJSON struct {
	DateEpoch int64   `json:"date_epoch"`
	Day       dayJSON `json:"day"`
}

type dayJSON struct {
	MaxTempC          float64       `json:"maxtemp_c"`
	MaxTempF          float64       `json:"maxtemp_f"`
	MinTempC          float64       `json:"mintemp_c"`
	MinTempF          float64       `json:"mintemp_f"`
	AvgTempC          float64       `json:"avgtemp_c"`
	AvgTempF          float64       `json:"avgtemp_f"`
	MaxWindKPH        float64       `json:"maxwind_kph"`
	TotalPrecipMM     float64       `json:"totalprecip_mm"`
	TotalSnowCM       float64       `json:"totalsnow_cm"`
	AvgHumidity       float64       `json:"avghumidity"`
	DailyChanceOfRain int           `json:"daily_chance_of_rain"`
	DailyChanceOfSnow int           `json:"daily_chance_of_snow"`
	Condition         conditionJSON `json:"condition"`
	UV                float64       `json:"uv"`
}

type alertJSON struct {
	Headline    string `json:"headline"`
	MsgType     string `json:"msgtype"`
	Severity    string `json:"severity"`
	Urgency     string `json:"urgency"`
	Areas       string `json:"areas"`
	Category    string `json:"category"`
	Certainty   string `json:"certainty"`
	Event       string `json:"event"`
	Note        string `json:"note"`
	Effective   string `json:"effective"`
	Expires     string `json:"expires"`
	Desc        string `json:"desc"`
	Instruction string `json:"instruction"`
}

type errorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func unixUTC(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

// parseAlertTime accepts the RFC 3339 timestamps the API sends; anything else
// yields the zero time.
func parseAlertTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r *forecastResponse) toReport() *entities.Report {
	report := &entities.Report{
		Location: entities.Location{
			Name:      r.Location.Name,
			Region:    r.Location.Region,
			Country:   r.Location.Country,
			Lat:       r.Location.Lat,
			Lon:       r.Location.Lon,
			TZID:      r.Location.TZID,
			LocalTime: unixUTC(r.Location.LocaltimeEpoch),
		},
		Current: entities.CurrentWeather{
			LastUpdated:   unixUTC(r.Current.LastUpdatedEpoch),
			TempC:         r.Current.TempC,
			TempF:         r.Current.TempF,
			IsDay:         r.Current.IsDay != 0,
			ConditionCode: r.Current.Condition.Code,
			ConditionIcon: r.Current.Condition.Icon,
			WindKPH:       r.Current.WindKPH,
			WindMPH:       r.Current.WindMPH,
			WindDegree:    r.Current.WindDegree,
			WindDir:       r.Current.WindDir,
			PressureMB:    r.Current.PressureMB,
			PrecipMM:      r.Current.PrecipMM,
			Humidity:      r.Current.Humidity,
			Cloud:         r.Current.Cloud,
			FeelsLikeC:    r.Current.FeelsLikeC,
			FeelsLikeF:    r.Current.FeelsLikeF,
			VisKM:         r.Current.VisKM,
			UV:            r.Current.UV,
			GustKPH:       r.Current.GustKPH,
		},
		Forecast: make([]entities.ForecastDay, 0, len(r.Forecast.ForecastDay)),
		Alerts:   make([]entities.Alert, 0, len(r.Alerts.Alert)),
	}

	for _, fd := range r.Forecast.ForecastDay {
		report.Forecast = append(report.Forecast, entities.ForecastDay{
			Date:              unixUTC(fd.DateEpoch),
			MaxTempC:          fd.Day.MaxTempC,
			MaxTempF:          fd.Day.MaxTempF,
			MinTempC:          fd.Day.MinTempC,
			MinTempF:          fd.Day.MinTempF,
			AvgTempC:          fd.Day.AvgTempC,
			AvgTempF:          fd.Day.AvgTempF,
			MaxWindKPH:        fd.Day.MaxWindKPH,
			TotalPrecipMM:     fd.Day.TotalPrecipMM,
			TotalSnowCM:       fd.Day.TotalSnowCM,
			AvgHumidity:       fd.Day.AvgHumidity,
			DailyChanceOfRain: fd.Day.DailyChanceOfRain,
			DailyChanceOfSnow: fd.Day.DailyChanceOfSnow,
			ConditionCode:     fd.Day.Condition.Code,
			ConditionIcon:     fd.Day.Condition.Icon,
			UV:                fd.Day.UV,
		})
	}

	for _, a := range r.Alerts.Alert {
		report.Alerts = append(report.Alerts, entities.Alert{
			Headline:    a.Headline,
			MsgType:     a.MsgType,
			Severity:    a.Severity,
			Urgency:     a.Urgency,
			Areas:       a.Areas,
			Category:    a.Category,
			Certainty:   a.Certainty,
			Event:       a.Event,
			Note:        a.Note,
			Effective:   parseAlertTime(a.Effective),
			Expires:     parseAlertTime(a.Expires),
			Description: a.Desc,
			Instruction: a.Instruction,
		})
	}
	return report
}
