package weatherapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherbot/internal/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "secret", time.Second, nil)
}

func TestClient_Forecast(t *testing.T) {
	fixture, err := os.ReadFile("testdata/forecast.json")
	require.NoError(t, err)

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "secret", q.Get("key"))
		assert.Equal(t, "Sao Paulo", q.Get("q"))
		assert.Equal(t, "3", q.Get("days"))
		assert.Equal(t, "yes", q.Get("alerts"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	})

	report, err := client.Forecast(context.Background(), "Sao Paulo", 3)
	require.NoError(t, err)

	assert.Equal(t, "Sao Paulo", report.Location.Name)
	assert.Equal(t, "Brazil", report.Location.Country)
	assert.Equal(t, time.Unix(1714575300, 0).UTC(), report.Current.LastUpdated)
	assert.True(t, report.Current.IsDay)
	assert.Equal(t, 1003, report.Current.ConditionCode)
	assert.Equal(t, "//cdn.weatherapi.com/weather/64x64/day/116.png", report.Current.ConditionIcon)
	assert.InDelta(t, 24.0, report.Current.TempC, 0.001)
	assert.InDelta(t, 75.2, report.Current.TempF, 0.001)
	assert.Equal(t, 65, report.Current.Humidity)
	assert.InDelta(t, 11.2, report.Current.WindKPH, 0.001)
	assert.InDelta(t, 6.0, report.Current.UV, 0.001)

	require.Len(t, report.Forecast, 2)
	assert.Equal(t, time.Unix(1714521600, 0).UTC(), report.Forecast[0].Date)
	assert.Equal(t, 20, report.Forecast[0].DailyChanceOfRain)
	assert.Equal(t, 1063, report.Forecast[0].ConditionCode)
	assert.InDelta(t, 27.1, report.Forecast[0].MaxTempC, 0.001)
	assert.Equal(t, 1000, report.Forecast[1].ConditionCode)

	require.Len(t, report.Alerts, 1)
	alert := report.Alerts[0]
	assert.Equal(t, "Heavy rain warning", alert.Headline)
	assert.Equal(t, "Rain accumulations of 50mm expected.", alert.Description)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), alert.Effective.UTC())
}

func TestClient_CityNotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	})

	_, err := client.Forecast(context.Background(), "Atlantis", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCityNotFound)

	var upErr *domain.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusBadRequest, upErr.Status)
	assert.Equal(t, "No matching location found.", upErr.Message)
}

func TestClient_OtherAPIError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":2007,"message":"API key has exceeded calls per month quota."}}`))
	})

	_, err := client.Forecast(context.Background(), "Recife", 1)
	assert.NotErrorIs(t, err, domain.ErrCityNotFound)
	code, ok := domain.UpstreamCode(err)
	require.True(t, ok)
	assert.Equal(t, 2007, code)
}

func TestClient_NonJSONError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := client.Forecast(context.Background(), "Recife", 1)
	var upErr *domain.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusBadGateway, upErr.Status)
	assert.Zero(t, upErr.Code)
}

func TestClient_MalformedBody(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"location":`))
	})

	_, err := client.Forecast(context.Background(), "Recife", 1)
	require.Error(t, err)
	_, isUpstream := domain.UpstreamCode(err)
	assert.False(t, isUpstream)
}

func TestClient_ContextCanceled(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Forecast(ctx, "Recife", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", "k", 0, nil)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
}
