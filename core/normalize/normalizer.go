// Package normalize joins the raw speakers, tracks and sessions collections
// into flat, timestamp-ordered Session records.
package normalize

import (
	"sort"
	"strings"
	"time"

	"github.com/nilovelez/wptv-sessions-list/core"
)

// SkippedSessionType marks sessions (breaks, lunch, ...) that are never exported.
const SkippedSessionType = "custom"

// DateLayout is the display date format used across all exports.
const DateLayout = "02/01/2006"

// SessionNormalizer resolves lookups and derives display fields in the
// site timezone.
type SessionNormalizer struct {
	loc *time.Location
}

// New creates a SessionNormalizer for the given site timezone.
// A nil location means UTC.
func New(loc *time.Location) *SessionNormalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &SessionNormalizer{loc: loc}
}

// Location returns the site timezone used for derived fields.
func (n *SessionNormalizer) Location() *time.Location {
	return n.loc
}

// Normalize builds the session sequence, sorted ascending by timestamp.
// Sessions of type "custom" are dropped.
func (n *SessionNormalizer) Normalize(raw []core.RawSession, speakers core.SpeakerTable, tracks core.TrackTable) []core.Session {
	sessions := make([]core.Session, 0, len(raw))
	for _, r := range raw {
		if r.SessionType == SkippedSessionType {
			continue
		}

		start := time.Unix(r.SessionTime, 0).In(n.loc)
		sessions = append(sessions, core.Session{
			Timestamp: r.SessionTime,
			Start:     start,
			Date:      start.Format(DateLayout),
			Title:     r.Title,
			Content:   CleanContent(r.Content),
			Speakers:  resolveSpeakers(r.SpeakerIDs, speakers),
			Track:     resolveTrack(r.TrackIDs, tracks),
		})
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Timestamp < sessions[j].Timestamp
	})
	return sessions
}

// resolveSpeakers joins known speaker names in ID order. Unknown IDs are dropped.
func resolveSpeakers(ids []int, speakers core.SpeakerTable) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := speakers[id]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// resolveTrack looks up the first track only.
func resolveTrack(ids []int, tracks core.TrackTable) string {
	if len(ids) == 0 {
		return ""
	}
	return tracks[ids[0]]
}
