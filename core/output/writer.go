// Package output writes rendered exports to disk.
// Filenames are derived from the site base URL and the export name
// (e.g. zaragoza_wordcamp_org_2025_photos.tsv).
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/nilovelez/wptv-sessions-list/core"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores one export and returns the path written.
func (w *Writer) Write(baseURL, format string, mode core.OutputMode, data []byte) (string, error) {
	name := filenameFromURL(baseURL) + "_" + sanitize(format)
	path := filepath.Join(w.OutputDir, name+Extension(mode))

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Extension returns the file extension for an output mode.
func Extension(mode core.OutputMode) string {
	switch mode {
	case core.ModeGoogleSheets:
		return ".tsv"
	case core.ModeChatGPT:
		return ".txt"
	default:
		return ".html"
	}
}

// filenameFromURL converts a URL into a flat filename.
// Example: https://zaragoza.wordcamp.org/2025/ → zaragoza_wordcamp_org_2025
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		// Fallback: sanitize the raw string.
		return sanitize(strings.Trim(rawURL, "/"))
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
