// Package siteurl turns a user-supplied WordCamp address into the base URL
// the REST endpoints are appended to.
package siteurl

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyURL is returned when nothing usable remains of the input.
var ErrEmptyURL = errors.New("empty site URL")

var (
	// https://<city>.wordcamp.org/<year>
	wordcampSite = regexp.MustCompile(`^(https?://[^/]+\.wordcamp\.org/\d{4})`)
	// https://events.wordpress.org/<city>/<year>/<event>
	eventsSite = regexp.MustCompile(`^(https?://events\.wordpress\.org/[^/]+/\d{4}/[^/]+)`)
)

// Sanitize returns the canonical base URL for raw, always ending in a
// single slash. Input without a scheme gets https://. Known WordCamp
// hosts are truncated to the site root; anything else is passed through.
func Sanitize(raw string) (string, error) {
	u := stripInvalid(raw)
	if u == "" {
		return "", ErrEmptyURL
	}

	if !strings.HasPrefix(u, "https://") && !strings.HasPrefix(u, "http://") {
		u = "https://" + u
	}

	if m := wordcampSite.FindStringSubmatch(u); m != nil {
		u = m[1]
	} else if m := eventsSite.FindStringSubmatch(u); m != nil {
		u = m[1]
	}

	return strings.TrimRight(u, "/") + "/", nil
}

// stripInvalid drops every character not allowed in a URL, whitespace included.
func stripInvalid(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune("$-_.+!*'(),{}|\\^~[]`<>#%\";/?:@&=", r):
			return r
		}
		return -1
	}, s)
}
