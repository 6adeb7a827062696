// Package core defines the shared types and pipeline interfaces for the
// session list exporter.
// Each stage of the pipeline (fetch, normalize, format) is a small,
// testable interface operating on these types.
package core

import (
	"context"
	"time"
)

// SpeakerTable maps a speaker post ID to its display name.
type SpeakerTable map[int]string

// TrackTable maps a session_track term ID to its slug.
type TrackTable map[int]string

// RawSession is a session post as returned by the WordPress REST API,
// decoded into explicit fields.
type RawSession struct {
	Title       string // rendered title HTML
	Content     string // rendered content HTML
	SessionTime int64  // epoch seconds, 0 when missing
	SessionType string
	SpeakerIDs  []int
	TrackIDs    []int
}

// Session is a normalized session record. All lookups are resolved and
// the display fields are derived in the site timezone.
type Session struct {
	Timestamp int64     `json:"timestamp"`
	Start     time.Time `json:"start"`
	Date      string    `json:"date"` // dd/mm/yyyy
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Speakers  string    `json:"speakers"`
	Track     string    `json:"track"`
}

// OutputMode selects how a formatter renders its rows.
type OutputMode string

const (
	ModeTable        OutputMode = "table"
	ModeGoogleSheets OutputMode = "google_sheets"
	ModeChatGPT      OutputMode = "ChatGPT"
)

// Fetcher issues a GET against a JSON endpoint and decodes the body into v.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string, v any) error
}

// Formatter turns a normalized session sequence into one export format.
type Formatter interface {
	// Name identifies the formatter (e.g. "photos").
	Name() string
	// Modes lists the accepted output modes, default first.
	Modes() []OutputMode
	// Format renders sessions in the given mode. It must not mutate sessions.
	Format(sessions []Session, mode OutputMode) (string, error)
}
