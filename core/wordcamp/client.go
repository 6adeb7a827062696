// Package wordcamp reads the speakers, tracks and sessions collections of a
// WordCamp site through its public WordPress REST API.
// Payloads are decoded into typed structs; missing or oddly-typed fields
// fall back to zero values instead of failing the whole collection.
package wordcamp

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nilovelez/wptv-sessions-list/core"
)

// Endpoint paths, relative to the sanitized base URL.
const (
	SpeakersPath = "wp-json/wp/v2/speakers?status=publish&_fields=id,title&per_page=100"
	TracksPath   = "wp-json/wp/v2/session_track?per_page=100"
	SessionsPath = "wp-json/wp/v2/sessions?status=publish&_fields=title,content,meta._wcpt_session_time,session_track,meta._wcpt_speaker_id,meta._wcpt_session_type&per_page=100"
)

// Collection names, as reported to the user.
const (
	CollectionSpeakers = "speakers"
	CollectionTracks   = "tracks"
	CollectionSessions = "sessions"
)

// CollectionError reports which collection could not be retrieved.
type CollectionError struct {
	Collection string
	Err        error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("retrieving %s: %v", e.Collection, e.Err)
}

func (e *CollectionError) Unwrap() error { return e.Err }

// Client fetches the three collections from one site.
type Client struct {
	fetcher core.Fetcher
	tracer  trace.Tracer
}

// NewClient creates a Client on top of the given Fetcher.
func NewClient(fetcher core.Fetcher) *Client {
	return &Client{
		fetcher: fetcher,
		tracer:  otel.Tracer("github.com/nilovelez/wptv-sessions-list/core/wordcamp"),
	}
}

// Speakers returns the speaker ID -> display name table.
func (c *Client) Speakers(ctx context.Context, baseURL string) (core.SpeakerTable, error) {
	var posts []speakerPost
	if err := c.get(ctx, CollectionSpeakers, baseURL+SpeakersPath, &posts); err != nil {
		return nil, err
	}

	speakers := make(core.SpeakerTable, len(posts))
	for _, p := range posts {
		speakers[p.ID] = p.Title.Rendered
	}
	return speakers, nil
}

// Tracks returns the track ID -> slug table.
func (c *Client) Tracks(ctx context.Context, baseURL string) (core.TrackTable, error) {
	var terms []trackTerm
	if err := c.get(ctx, CollectionTracks, baseURL+TracksPath, &terms); err != nil {
		return nil, err
	}

	tracks := make(core.TrackTable, len(terms))
	for _, t := range terms {
		tracks[t.ID] = t.Slug
	}
	return tracks, nil
}

// Sessions returns the published sessions in API order.
func (c *Client) Sessions(ctx context.Context, baseURL string) ([]core.RawSession, error) {
	var posts []sessionPost
	if err := c.get(ctx, CollectionSessions, baseURL+SessionsPath, &posts); err != nil {
		return nil, err
	}

	sessions := make([]core.RawSession, 0, len(posts))
	for _, p := range posts {
		sessions = append(sessions, p.raw())
	}
	return sessions, nil
}

func (c *Client) get(ctx context.Context, collection, url string, v any) error {
	ctx, span := c.tracer.Start(ctx, "wordcamp."+collection,
		trace.WithAttributes(
			attribute.String("wordcamp.collection", collection),
			attribute.String("http.url", url),
		),
	)
	defer span.End()

	if err := c.fetcher.FetchJSON(ctx, url, v); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return &CollectionError{Collection: collection, Err: err}
	}
	return nil
}
