package input

import (
	"context"

	"weatherbot/internal/domain/entities"
)

type WeatherUseCase interface {
	Current(ctx context.Context, userID, city string) (*entities.Report, error)
	Forecast(ctx context.Context, userID, city string) (*entities.Report, error)
	SetHomeCity(ctx context.Context, userID, city string) (*entities.Location, error)
}
