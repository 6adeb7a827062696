package wordcamp

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/nilovelez/wptv-sessions-list/core"
)

type rendered struct {
	Rendered string `json:"rendered"`
}

type speakerPost struct {
	ID    int      `json:"id"`
	Title rendered `json:"title"`
}

type trackTerm struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
}

type sessionPost struct {
	Title        rendered    `json:"title"`
	Content      rendered    `json:"content"`
	SessionTrack flexIDs     `json:"session_track"`
	Meta         sessionMeta `json:"meta"`
}

type sessionMeta struct {
	SessionTime flexInt `json:"_wcpt_session_time"`
	SpeakerIDs  flexIDs `json:"_wcpt_speaker_id"`
	SessionType string  `json:"_wcpt_session_type"`
}

// UnmarshalJSON accepts the empty array WordPress emits for posts
// without registered meta.
func (m *sessionMeta) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		*m = sessionMeta{}
		return nil
	}
	type plain sessionMeta
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*m = sessionMeta(p)
	return nil
}

func (p sessionPost) raw() core.RawSession {
	return core.RawSession{
		Title:       p.Title.Rendered,
		Content:     p.Content.Rendered,
		SessionTime: int64(p.Meta.SessionTime),
		SessionType: p.Meta.SessionType,
		SpeakerIDs:  p.Meta.SpeakerIDs.ints(),
		TrackIDs:    p.SessionTrack.ints(),
	}
}

// flexInt decodes a JSON number or numeric string. Anything else is 0.
type flexInt int64

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*n = flexInt(v)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*n = flexInt(int64(f))
		return nil
	}
	*n = 0
	return nil
}

// flexIDs decodes an array of IDs, a single ID, or null.
type flexIDs []flexInt

func (ids *flexIDs) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var list []flexInt
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*ids = list
		return nil
	}

	var one flexInt
	if err := one.UnmarshalJSON(b); err != nil {
		return err
	}
	if one == 0 {
		*ids = nil
		return nil
	}
	*ids = flexIDs{one}
	return nil
}

func (ids flexIDs) ints() []int {
	if len(ids) == 0 {
		return nil
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
