package cmd

import (
	"fmt"

	"github.com/nilovelez/wptv-sessions-list/core/export"
	"github.com/nilovelez/wptv-sessions-list/core/fetch"
	"github.com/nilovelez/wptv-sessions-list/core/normalize"
	"github.com/nilovelez/wptv-sessions-list/core/render"
	"github.com/nilovelez/wptv-sessions-list/core/wordcamp"
)

// newService wires fetch → wordcamp → normalize → render from the loaded
// configuration.
func newService() (*export.Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	weekdays, err := render.WeekdaysFor(cfg.WeekdayLocale)
	if err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	fetcher := fetch.New(fetch.WithUserAgent(cfg.UserAgent))
	return export.NewService(
		wordcamp.NewClient(fetcher),
		normalize.New(loc),
		render.NewRegistry(weekdays),
		logger,
	), nil
}
