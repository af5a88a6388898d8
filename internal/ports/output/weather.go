package output

import (
	"context"

	"weatherbot/internal/domain/entities"
)

// WeatherProvider fetches current conditions, forecast days and alerts for a city.
type WeatherProvider interface {
	Forecast(ctx context.Context, city string, days int) (*entities.Report, error)
}
