package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSuccessEmbed(t *testing.T) {
	e := SuccessEmbed("saved")
	assert.Equal(t, "✅ saved", e.Description)
	assert.Equal(t, ColorBrandGreen, e.Color)
	assert.Nil(t, e.Footer)
}

func TestErrorEmbed(t *testing.T) {
	e := WithFooter(ErrorEmbed("request failed"), "code 2007")
	assert.Equal(t, "❌ request failed", e.Description)
	assert.Equal(t, ColorBrandRed, e.Color)
	if assert.NotNil(t, e.Footer) {
		assert.Equal(t, "code 2007", e.Footer.Text)
	}

	assert.Nil(t, WithFooter(ErrorEmbed("x"), "").Footer)
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "<t:1715299200:d>", FormatTimestamp(ts, ShortDate))
	assert.Equal(t, "<t:1715299200:R>", FormatTimestamp(ts, Relative))
	assert.Equal(t, "<t:1715299200>", FormatTimestamp(ts, ""))
	assert.Empty(t, FormatTimestamp(time.Time{}, ShortDate))
}

func TestEmbedTimestamp(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	ts := time.Date(2024, 5, 10, 9, 30, 0, 0, loc)

	assert.Equal(t, "2024-05-10T12:30:00Z", EmbedTimestamp(ts))
	assert.Empty(t, EmbedTimestamp(time.Time{}))
}
