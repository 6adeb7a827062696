// Package render provides the export formatters.
// Every formatter is the same pipeline: build rows from the normalized
// sessions, re-sort them on a formatter-specific key, optionally annotate
// the sorted rows, then render them in one of the supported output modes.
package render

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/nilovelez/wptv-sessions-list/core"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrUnknownMode   = errors.New("unknown output mode")
)

// modeRenderer renders sorted rows for one output mode.
type modeRenderer[R any] struct {
	mode   core.OutputMode
	render func(rows []R) string
}

// Pipeline is a Formatter parameterized by a row builder, a sort key and
// a set of renderers. It holds no state between calls.
type Pipeline[R any] struct {
	name      string
	build     func(sessions []core.Session) []R
	less      func(a, b R) bool
	annotate  func(rows []R)
	renderers []modeRenderer[R] // default mode first
}

// Name returns the formatter name.
func (p *Pipeline[R]) Name() string { return p.name }

// Modes lists the output modes, default first.
func (p *Pipeline[R]) Modes() []core.OutputMode {
	modes := make([]core.OutputMode, len(p.renderers))
	for i, r := range p.renderers {
		modes[i] = r.mode
	}
	return modes
}

// Format runs the pipeline. An empty mode selects the default one.
func (p *Pipeline[R]) Format(sessions []core.Session, mode core.OutputMode) (string, error) {
	renderer, err := p.renderer(mode)
	if err != nil {
		return "", err
	}

	rows := p.build(sessions)
	sort.SliceStable(rows, func(i, j int) bool {
		return p.less(rows[i], rows[j])
	})
	if p.annotate != nil {
		p.annotate(rows)
	}
	return renderer.render(rows), nil
}

func (p *Pipeline[R]) renderer(mode core.OutputMode) (modeRenderer[R], error) {
	if mode == "" {
		return p.renderers[0], nil
	}
	for _, r := range p.renderers {
		if r.mode == mode {
			return r, nil
		}
	}
	return modeRenderer[R]{}, fmt.Errorf("%w %q for %s export", ErrUnknownMode, mode, p.name)
}

// localStart returns the session start in the site timezone. Sessions
// built without a Start fall back to the UTC epoch time.
func localStart(s core.Session) time.Time {
	if s.Start.IsZero() {
		return time.Unix(s.Timestamp, 0).UTC()
	}
	return s.Start
}
