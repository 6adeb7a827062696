// Package export runs one export request end to end:
// sanitize URL → speakers → tracks → sessions → normalize → format.
// Nothing is kept between requests.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/nilovelez/wptv-sessions-list/core"
	"github.com/nilovelez/wptv-sessions-list/core/fetch"
	"github.com/nilovelez/wptv-sessions-list/core/normalize"
	"github.com/nilovelez/wptv-sessions-list/core/render"
	"github.com/nilovelez/wptv-sessions-list/core/siteurl"
	"github.com/nilovelez/wptv-sessions-list/core/wordcamp"
)

// ErrNoSessions is wrapped in a sessions CollectionError when the site
// has no exportable sessions.
var ErrNoSessions = errors.New("no sessions found")

// Request selects the site, the export and its output mode.
type Request struct {
	SiteURL string
	Format  string
	Mode    core.OutputMode // empty selects the formatter default
}

// Result is a rendered export.
type Result struct {
	BaseURL  string
	Format   string
	Mode     core.OutputMode
	Sessions int
	Output   string
}

// Service wires the pipeline stages together.
type Service struct {
	client     *wordcamp.Client
	normalizer *normalize.SessionNormalizer
	formatters *render.Registry
	logger     *slog.Logger
	exported   metric.Int64Counter
}

// NewService creates a Service.
func NewService(client *wordcamp.Client, normalizer *normalize.SessionNormalizer, formatters *render.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	meter := otel.Meter("github.com/nilovelez/wptv-sessions-list/core/export")
	exported, err := meter.Int64Counter("sessionlist.sessions.exported",
		metric.WithDescription("Sessions written to an export"),
	)
	if err != nil {
		logger.Warn("creating exported sessions counter", "error", err)
	}

	return &Service{
		client:     client,
		normalizer: normalizer,
		formatters: formatters,
		logger:     logger,
		exported:   exported,
	}
}

// Formatters returns the formatter registry.
func (s *Service) Formatters() *render.Registry {
	return s.formatters
}

// Sessions sanitizes rawURL and returns the normalized sessions of the site.
func (s *Service) Sessions(ctx context.Context, rawURL string) (string, []core.Session, error) {
	baseURL, err := siteurl.Sanitize(rawURL)
	if err != nil {
		return "", nil, err
	}

	speakers, err := s.client.Speakers(ctx, baseURL)
	if err != nil {
		s.logFetchError(baseURL, err)
		return baseURL, nil, err
	}

	tracks, err := s.client.Tracks(ctx, baseURL)
	if err != nil {
		s.logFetchError(baseURL, err)
		return baseURL, nil, err
	}

	raw, err := s.client.Sessions(ctx, baseURL)
	if err != nil {
		s.logFetchError(baseURL, err)
		return baseURL, nil, err
	}

	sessions := s.normalizer.Normalize(raw, speakers, tracks)
	if len(sessions) == 0 {
		err := &wordcamp.CollectionError{Collection: wordcamp.CollectionSessions, Err: ErrNoSessions}
		s.logger.Warn("no exportable sessions", "base_url", baseURL, "raw_sessions", len(raw))
		return baseURL, nil, err
	}

	s.logger.Debug("sessions normalized",
		"base_url", baseURL,
		"speakers", len(speakers),
		"tracks", len(tracks),
		"raw_sessions", len(raw),
		"sessions", len(sessions),
	)
	return baseURL, sessions, nil
}

// Export runs the whole pipeline for one request. The format and mode are
// validated before any network call.
func (s *Service) Export(ctx context.Context, req Request) (*Result, error) {
	formatter, err := s.formatters.Get(req.Format)
	if err != nil {
		return nil, err
	}
	mode, err := resolveMode(formatter, req.Mode)
	if err != nil {
		return nil, err
	}

	baseURL, sessions, err := s.Sessions(ctx, req.SiteURL)
	if err != nil {
		return nil, err
	}

	out, err := formatter.Format(sessions, mode)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", req.Format, err)
	}

	if s.exported != nil {
		s.exported.Add(ctx, int64(len(sessions)), metric.WithAttributes(
			attribute.String("format", req.Format),
			attribute.String("mode", string(mode)),
		))
	}
	s.logger.Info("export rendered",
		"base_url", baseURL,
		"format", req.Format,
		"mode", string(mode),
		"sessions", len(sessions),
	)

	return &Result{
		BaseURL:  baseURL,
		Format:   req.Format,
		Mode:     mode,
		Sessions: len(sessions),
		Output:   out,
	}, nil
}

func resolveMode(f core.Formatter, mode core.OutputMode) (core.OutputMode, error) {
	modes := f.Modes()
	if mode == "" {
		return modes[0], nil
	}
	for _, m := range modes {
		if m == mode {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q for %s export", render.ErrUnknownMode, mode, f.Name())
}

func (s *Service) logFetchError(baseURL string, err error) {
	attrs := []any{"base_url", baseURL, "error", err}

	var ce *wordcamp.CollectionError
	if errors.As(err, &ce) {
		attrs = append(attrs, "collection", ce.Collection)
	}
	var fe *fetch.FetchError
	if errors.As(err, &fe) {
		attrs = append(attrs, "kind", fe.Kind.String(), "url", fe.URL)
		if fe.StatusCode != 0 {
			attrs = append(attrs, "status", fe.StatusCode)
		}
	}
	s.logger.Error("fetch failed", attrs...)
}
