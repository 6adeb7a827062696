package export

import (
	"errors"
	"fmt"

	"github.com/nilovelez/wptv-sessions-list/core/render"
	"github.com/nilovelez/wptv-sessions-list/core/siteurl"
	"github.com/nilovelez/wptv-sessions-list/core/wordcamp"
)

// UserMessage maps a pipeline error to the short text shown to users.
// Details stay in the logs.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ce *wordcamp.CollectionError
	switch {
	case errors.Is(err, siteurl.ErrEmptyURL):
		return "You have to provide a valid WordCamp URL"
	case errors.As(err, &ce):
		return fmt.Sprintf("Cannot retrieve %s list", ce.Collection)
	case errors.Is(err, render.ErrUnknownFormat), errors.Is(err, render.ErrUnknownMode):
		return "Unknown output format"
	default:
		return "Something went wrong"
	}
}
