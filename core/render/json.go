package render

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nilovelez/wptv-sessions-list/core"
)

// SessionsDocument is the JSON output of the sessions command.
type SessionsDocument struct {
	BaseURL   string         `json:"base_url"`
	FetchedAt string         `json:"fetched_at"` // ISO8601
	Count     int            `json:"count"`
	Sessions  []core.Session `json:"sessions"`
}

// SessionsJSON renders the normalized sessions as indented JSON, in their
// timestamp order and before any export-specific re-sorting.
func SessionsJSON(baseURL string, sessions []core.Session, fetchedAt time.Time) ([]byte, error) {
	if sessions == nil {
		sessions = []core.Session{}
	}
	doc := SessionsDocument{
		BaseURL:   baseURL,
		FetchedAt: fetchedAt.UTC().Format(time.RFC3339),
		Count:     len(sessions),
		Sessions:  sessions,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}
