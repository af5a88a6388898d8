package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weatherbot/internal/domain"
	"weatherbot/internal/domain/entities"
	"weatherbot/internal/ports/input"
	"weatherbot/internal/ports/output"
)

// DefaultForecastDays is the number of days /weather forecast shows.
const DefaultForecastDays = 3

var _ input.WeatherUseCase = (*WeatherService)(nil)

type WeatherService struct {
	provider     output.WeatherProvider
	prefRepo     output.PreferenceRepository
	forecastDays int
	now          func() time.Time
}

func NewWeatherService(
	provider output.WeatherProvider,
	prefRepo output.PreferenceRepository,
	forecastDays int,
) *WeatherService {
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}
	return &WeatherService{
		provider:     provider,
		prefRepo:     prefRepo,
		forecastDays: forecastDays,
		now:          time.Now,
	}
}

// Current returns today's report for city, or for the user's home city when
// city is blank.
func (s *WeatherService) Current(ctx context.Context, userID, city string) (*entities.Report, error) {
	city, err := s.resolveCity(ctx, userID, city)
	if err != nil {
		return nil, err
	}
	return s.provider.Forecast(ctx, city, 1)
}

// Forecast returns a multi-day report for city, or for the user's home city
// when city is blank.
func (s *WeatherService) Forecast(ctx context.Context, userID, city string) (*entities.Report, error) {
	city, err := s.resolveCity(ctx, userID, city)
	if err != nil {
		return nil, err
	}
	return s.provider.Forecast(ctx, city, s.forecastDays)
}

// SetHomeCity checks that the weather source knows city and saves it as the
// user's default.
func (s *WeatherService) SetHomeCity(ctx context.Context, userID, city string) (*entities.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domain.ErrNoCity
	}
	report, err := s.provider.Forecast(ctx, city, 1)
	if err != nil {
		return nil, err
	}
	pref := &entities.UserPreference{
		UserID:    userID,
		HomeCity:  city,
		UpdatedAt: s.now(),
	}
	if err := s.prefRepo.Save(ctx, pref); err != nil {
		return nil, fmt.Errorf("save preference: %w", err)
	}
	return &report.Location, nil
}

func (s *WeatherService) resolveCity(ctx context.Context, userID, city string) (string, error) {
	if city = strings.TrimSpace(city); city != "" {
		return city, nil
	}
	pref, err := s.prefRepo.FindByUserID(ctx, userID)
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		return "", domain.ErrNoCity
	}
	if err != nil {
		return "", fmt.Errorf("find preference: %w", err)
	}
	if strings.TrimSpace(pref.HomeCity) == "" {
		return "", domain.ErrNoCity
	}
	return pref.HomeCity, nil
}
