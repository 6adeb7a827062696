package siteurl

import (
	"errors"
	"testing"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wordcamp without scheme", "zaragoza.wordcamp.org/2025/schedule", "https://zaragoza.wordcamp.org/2025/"},
		{"wordcamp root", "https://zaragoza.wordcamp.org/2025/", "https://zaragoza.wordcamp.org/2025/"},
		{"wordcamp no trailing slash", "https://zaragoza.wordcamp.org/2025", "https://zaragoza.wordcamp.org/2025/"},
		{"wordcamp deep path", "https://madrid.wordcamp.org/2024/speakers/ana/?x=1", "https://madrid.wordcamp.org/2024/"},
		{"explicit http kept", "http://zaragoza.wordcamp.org/2025/tickets", "http://zaragoza.wordcamp.org/2025/"},
		{"events site", "https://events.wordpress.org/lleida/2025/disseny/schedule/", "https://events.wordpress.org/lleida/2025/disseny/"},
		{"events without scheme", "events.wordpress.org/lleida/2025/disseny", "https://events.wordpress.org/lleida/2025/disseny/"},
		{"other host passthrough", "example.com/conf", "https://example.com/conf/"},
		{"collapse trailing slashes", "https://example.com/conf//", "https://example.com/conf/"},
		{"whitespace stripped", "  zaragoza.wordcamp.org/2025  ", "https://zaragoza.wordcamp.org/2025/"},
		{"wordcamp without year passthrough", "zaragoza.wordcamp.org/schedule", "https://zaragoza.wordcamp.org/schedule/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.in)
			if err != nil {
				t.Fatalf("Sanitize(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize_Empty(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := Sanitize(in); !errors.Is(err, ErrEmptyURL) {
			t.Errorf("Sanitize(%q): expected ErrEmptyURL, got %v", in, err)
		}
	}
}
