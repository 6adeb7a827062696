package render

import (
	"fmt"

	"github.com/nilovelez/wptv-sessions-list/core"
)

// Export names.
const (
	FormatPhotos = "photos"
	FormatSocial = "social"
	FormatWPTV   = "wptv"
)

// Registry holds the available formatters by name.
type Registry struct {
	formatters map[string]core.Formatter
	order      []string
}

// NewRegistry registers the photos, social and wptv formatters.
func NewRegistry(weekdays Weekdays) *Registry {
	r := &Registry{formatters: make(map[string]core.Formatter)}
	r.Register(NewPhotosFormatter(weekdays))
	r.Register(NewSocialFormatter())
	r.Register(NewWPTVFormatter())
	return r
}

// Register adds or replaces a formatter.
func (r *Registry) Register(f core.Formatter) {
	if _, ok := r.formatters[f.Name()]; !ok {
		r.order = append(r.order, f.Name())
	}
	r.formatters[f.Name()] = f
}

// Get returns the formatter registered under name.
func (r *Registry) Get(name string) (core.Formatter, error) {
	f, ok := r.formatters[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Names returns the registered formatter names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
