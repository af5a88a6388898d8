package discord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"weatherbot/internal/domain/entities"
	"weatherbot/internal/infrastructure/i18n"
)

const testLocaleJSON = `{
  "commands": {
    "weather": {
      "name": "weather",
      "description": "Weather commands",
      "current": {"name": "current", "description": "Current weather", "options": {"city": {"name": "city", "description": "City to look up"}}},
      "forecast": {"name": "forecast", "description": "Weather forecast", "options": {"city": {"name": "city", "description": "City to look up"}}},
      "home": {"name": "home", "description": "Save your home city", "options": {"city": {"name": "city", "description": "Your city"}}, "saved": "Home city set to {city}."},
      "temperature": "Temperature",
      "humidity": "Humidity",
      "wind_speed": "Wind speed",
      "uv_index": "UV index",
      "uv_index_rating": {"low": "Low", "moderate": "Moderate", "high": "High", "very_high": "Very high", "extreme": "Extreme"},
      "last_updated": "Last updated",
      "alert_available": "There are weather alerts for this location.",
      "show_alert": "Show alerts",
      "chance_of_rain": "Chance of rain",
      "chance_of_snow": "Chance of snow",
      "codes": {"1000": {"day": "Sunny", "night": "Clear"}, "1183": {"day": "Light rain", "night": "Light rain"}}
    },
    "ping": {"name": "ping", "description": "Bot latency", "pong": "Pong!", "response": "Latency: {latency}"}
  },
  "errors": {
    "request_error": "Could not reach the weather service.",
    "city_not_found": "City not found.",
    "error_code": "Error code: {error_code}",
    "no_city": "Give a city or save one with /weather home.",
    "command_on_cooldown": "Try again in {retry_after}s.",
    "exec_error": "Something went wrong: {error}"
  }
}`

func testLocales(t *testing.T, extra fstest.MapFS) *i18n.Registry {
	t.Helper()
	fsys := fstest.MapFS{"en-US.json": &fstest.MapFile{Data: []byte(testLocaleJSON)}}
	for name, f := range extra {
		fsys[name] = f
	}
	r := i18n.NewRegistry(nil)
	require.NoError(t, r.LoadFS(fsys, "."))
	return r
}

// fakeResponder records what the handlers send. Like Discord, it rejects a
// second initial response to the same interaction.
type fakeResponder struct {
	mu        sync.Mutex
	responses []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
	followups []*discordgo.WebhookParams
	answered  map[string]bool
	latency   time.Duration
}

func newFakeResponder() *fakeResponder {
	return &fakeResponder{answered: make(map[string]bool)}
}

func (f *fakeResponder) InteractionRespond(i *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.answered[i.ID] {
		return errors.New("interaction has already been acknowledged")
	}
	f.answered[i.ID] = true
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, edit)
	return &discordgo.Message{ID: "m1"}, nil
}

func (f *fakeResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, params *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.followups = append(f.followups, params)
	return &discordgo.Message{ID: "m2"}, nil
}

func (f *fakeResponder) HeartbeatLatency() time.Duration {
	return f.latency
}

func (f *fakeResponder) lastResponse(t *testing.T) *discordgo.InteractionResponse {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.responses)
	return f.responses[len(f.responses)-1]
}

func (f *fakeResponder) lastEdit(t *testing.T) *discordgo.WebhookEdit {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.edits)
	return f.edits[len(f.edits)-1]
}

func (f *fakeResponder) editCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.edits)
}

type fakeWeather struct {
	report   *entities.Report
	err      error
	panicMsg string
	saved    map[string]string
}

func (f *fakeWeather) fetch(_ string) (*entities.Report, error) {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func (f *fakeWeather) Current(_ context.Context, _, city string) (*entities.Report, error) {
	return f.fetch(city)
}

func (f *fakeWeather) Forecast(_ context.Context, _, city string) (*entities.Report, error) {
	return f.fetch(city)
}

func (f *fakeWeather) SetHomeCity(_ context.Context, userID, city string) (*entities.Location, error) {
	r, err := f.fetch(city)
	if err != nil {
		return nil, err
	}
	if f.saved == nil {
		f.saved = make(map[string]string)
	}
	f.saved[userID] = city
	return &r.Location, nil
}

func commandInteraction(userID, command, sub, city string) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{Name: command}
	if sub != "" {
		opt := &discordgo.ApplicationCommandInteractionDataOption{Name: sub, Type: discordgo.ApplicationCommandOptionSubCommand}
		if city != "" {
			opt.Options = []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: optionCity, Type: discordgo.ApplicationCommandOptionString, Value: city},
			}
		}
		data.Options = []*discordgo.ApplicationCommandInteractionDataOption{opt}
	}
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     uuid.NewString(),
		Type:   discordgo.InteractionApplicationCommand,
		Locale: discordgo.EnglishUS,
		Member: &discordgo.Member{User: &discordgo.User{ID: userID}},
		Data:   data,
	}}
}

func componentInteraction(userID, customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     uuid.NewString(),
		Type:   discordgo.InteractionMessageComponent,
		Locale: discordgo.EnglishUS,
		User:   &discordgo.User{ID: userID},
		Data:   discordgo.MessageComponentInteractionData{CustomID: customID, ComponentType: discordgo.ButtonComponent},
	}}
}

func sampleReport(alerts ...entities.Alert) *entities.Report {
	updated := time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)
	return &entities.Report{
		Location: entities.Location{Name: "Lisbon", Country: "Portugal"},
		Current: entities.CurrentWeather{
			LastUpdated:   updated,
			TempC:         21.5,
			TempF:         70.7,
			IsDay:         true,
			ConditionCode: 1000,
			ConditionIcon: "//cdn.weatherapi.com/weather/64x64/day/113.png",
			WindKPH:       14.4,
			Humidity:      60,
			UV:            7,
		},
		Forecast: []entities.ForecastDay{
			{Date: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), MaxTempC: 24, MaxTempF: 75.2, MinTempC: 15, MinTempF: 59, ConditionCode: 1000, ConditionIcon: "//cdn.weatherapi.com/weather/64x64/day/113.png"},
			{Date: time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), MaxTempC: 19, MaxTempF: 66.2, MinTempC: 13, MinTempF: 55.4, DailyChanceOfRain: 80, ConditionCode: 1183},
		},
		Alerts: alerts,
	}
}
