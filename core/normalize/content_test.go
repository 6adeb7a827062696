package normalize

import "testing"

func TestCleanContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single paragraph", "<p>Hi</p>", "Hi"},
		{"plain text", "no markup here", "no markup here"},
		{"line break", "one<br>two", "one\ntwo"},
		{"paragraph boundary", "<p>one</p>\n\n\n\n<p>two</p>", "one\n\ntwo"},
		{"other whitespace kept", "<p>one</p>\n<p>two</p>", "one\ntwo"},
		{"entities preserved", "<p>Tom &amp; Jerry &quot;live&quot;</p>", "Tom &amp; Jerry &quot;live&quot;"},
		{"nested tags", "<p>A <strong>bold</strong> <a href=\"x\">link</a></p>", "A bold link"},
		{"comments dropped", "a<!-- hidden -->b", "ab"},
		{"self closing br untouched by replace", "a<br />b", "ab"},
		{"tags inside textarea", "<p>Form: <textarea><b>x</b></textarea> done</p>", "Form: x done"},
		{"tags inside title", "<title><em>T</em></title>rest", "Trest"},
		{"lone less-than kept", "a<3 b>c", "a<3 b>c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanContent(tt.in); got != tt.want {
				t.Errorf("CleanContent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
