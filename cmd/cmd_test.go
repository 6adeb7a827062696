package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nilovelez/wptv-sessions-list/core/fetch"
	"github.com/nilovelez/wptv-sessions-list/core/render"
)

func upstream(t *testing.T, failing string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing != "" && strings.HasSuffix(r.URL.Path, failing) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/speakers"):
			_, _ = io.WriteString(w, `[{"id":1,"title":{"rendered":"Ana"}}]`)
		case strings.HasSuffix(r.URL.Path, "/session_track"):
			_, _ = io.WriteString(w, `[{"id":7,"slug":"dev"}]`)
		case strings.HasSuffix(r.URL.Path, "/sessions"):
			_, _ = io.WriteString(w, `[{"title":{"rendered":"Intro"},"content":{"rendered":"<p>Hi</p>"},"session_track":[7],
				"meta":{"_wcpt_session_time":1746784800,"_wcpt_speaker_id":[1],"_wcpt_session_type":"session"}}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// resetFlags restores every flag to its default so runs don't leak into
// each other through the package-level commands.
func resetFlags(cmds ...*cobra.Command) {
	for _, c := range cmds {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd, exportCmd, sessionsCmd, serveCmd)

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	shutdown()
	return out.String(), err
}

func TestExport_Stdout(t *testing.T) {
	site := upstream(t, "")
	out, err := execute(t, "export", site.URL+"/2025", "--format", "wptv")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(out, "\tPending\t\t\t09/05/2025\t") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "\tAna\tIntro\t") {
		t.Errorf("expected speaker and title cells, got %q", out)
	}
}

func TestExport_OutputDir(t *testing.T) {
	site := upstream(t, "")
	dir := t.TempDir()

	out, err := execute(t, "export", site.URL+"/2025/", "--format", "social", "--output", "table", "--output_dir", dir)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(out, "✓ Written: ") {
		t.Errorf("unexpected stdout %q", out)
	}

	u, _ := url.Parse(site.URL)
	host := strings.NewReplacer(".", "_", ":", "_").Replace(u.Host)
	path := filepath.Join(dir, host+"_2025_social.html")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.HasPrefix(string(data), "<table>") || !strings.Contains(string(data), "<td>Intro</td>") {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestExport_Errors(t *testing.T) {
	tests := []struct {
		name    string
		failing string
		args    []string
		want    string
	}{
		{"speakers down", "/speakers", []string{"--format", "photos"}, "Cannot retrieve speakers list"},
		{"unknown format", "", []string{"--format", "pdf"}, "Unknown output format"},
		{"mode of another export", "", []string{"--format", "wptv", "--output", "ChatGPT"}, "Unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := upstream(t, tt.failing)
			_, err := execute(t, append([]string{"export", site.URL + "/"}, tt.args...)...)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestExport_KeepsErrorChain(t *testing.T) {
	site := upstream(t, "/sessions")
	_, err := execute(t, "export", site.URL+"/", "--format", "social")
	if !errors.Is(err, fetch.ErrHTTP) {
		t.Errorf("expected wrapped ErrHTTP, got %v", err)
	}
}

func TestExport_RequiresFormat(t *testing.T) {
	if _, err := execute(t, "export", "https://zaragoza.wordcamp.org/2025/"); err == nil {
		t.Error("expected missing --format to fail")
	}
}

func TestSessions_JSON(t *testing.T) {
	site := upstream(t, "")
	out, err := execute(t, "sessions", site.URL+"/2025/", "--timezone", "Europe/Madrid")
	if err != nil {
		t.Fatalf("sessions failed: %v", err)
	}

	var doc render.SessionsDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Count != 1 || len(doc.Sessions) != 1 {
		t.Fatalf("expected one session, got %d", doc.Count)
	}
	s := doc.Sessions[0]
	if s.Title != "Intro" || s.Speakers != "Ana" || s.Track != "dev" {
		t.Errorf("unexpected session %+v", s)
	}
	if got := s.Start.Format("15:04"); got != "12:00" {
		t.Errorf("expected start in Madrid time, got %s", got)
	}
}

func TestInvalidLocale(t *testing.T) {
	site := upstream(t, "")
	_, err := execute(t, "export", site.URL+"/", "--format", "photos", "--locale", "fr")
	if err == nil || !strings.Contains(err.Error(), "unsupported weekday locale") {
		t.Errorf("expected locale error, got %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	out, err := execute(t, "config", "show", "--timezone", "Europe/Madrid", "--locale", "es")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"timezone: Europe/Madrid", "weekday_locale: es", "8080"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestConfigPath(t *testing.T) {
	out, err := execute(t, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(out, filepath.Join(".sessionlist", "config.yaml")) {
		t.Errorf("unexpected output %q", out)
	}
}
