package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"weatherbot/internal/domain"
	"weatherbot/internal/domain/entities"
	"weatherbot/internal/ports/output"
)

const (
	// DefaultBaseURL is the WeatherAPI.com v1 endpoint.
	DefaultBaseURL = "https://api.weatherapi.com/v1"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

var _ output.WeatherProvider = (*Client)(nil)

// Client talks to the WeatherAPI.com forecast endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("weatherapi"),
	}
}

// Forecast fetches current conditions, days of forecast and active alerts for city.
// API-level failures are returned as *domain.UpstreamError.
func (c *Client) Forecast(ctx context.Context, city string, days int) (*entities.Report, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", city)
	q.Set("days", strconv.Itoa(days))
	q.Set("alerts", "yes")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast.json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read weather api response: %w", err)
	}
	c.logger.Debug("forecast fetched",
		zap.String("city", city),
		zap.Int("days", days),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp.StatusCode, body)
	}

	var payload forecastResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode weather api response: %w", err)
	}
	return payload.toReport(), nil
}

func upstreamError(status int, body []byte) error {
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error == nil {
		return &domain.UpstreamError{Status: status, Message: http.StatusText(status)}
	}
	return &domain.UpstreamError{
		Status:  status,
		Code:    apiErr.Error.Code,
		Message: apiErr.Error.Message,
	}
}
