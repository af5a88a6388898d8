package discord

import (
	"fmt"
	"time"
)

// TimestampStyle is the Discord markdown style letter for a <t:unix:style> tag.
type TimestampStyle string

const (
	ShortTime     TimestampStyle = "t"
	LongTime      TimestampStyle = "T"
	ShortDate     TimestampStyle = "d"
	LongDate      TimestampStyle = "D"
	ShortDateTime TimestampStyle = "f"
	LongDateTime  TimestampStyle = "F"
	Relative      TimestampStyle = "R"
)

// FormatTimestamp renders t as a Discord timestamp tag, which each client
// displays in its own timezone and locale. A zero time renders empty.
func FormatTimestamp(t time.Time, style TimestampStyle) string {
	if t.IsZero() {
		return ""
	}
	if style == "" {
		return fmt.Sprintf("<t:%d>", t.Unix())
	}
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}

// EmbedTimestamp formats t for MessageEmbed.Timestamp (ISO 8601).
func EmbedTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
