package web

import (
	"html/template"

	"github.com/nilovelez/wptv-sessions-list/core"
	"github.com/nilovelez/wptv-sessions-list/core/render"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<nav>{{range .Nav}}<a href="/{{.}}">{{.}}</a> {{end}}</nav>
<div class="{{.Format}}-form-container">
<p class="wptvsl-description">{{.Description}}</p>
<p class="wptvsl-example">Examples:<br>
https://zaragoza.wordcamp.org/2025/<br>
https://events.wordpress.org/lleida/2025/disseny/</p>
<form method="post" action="/{{.Format}}" id="{{.Format}}-sessions-form" style="display: flex; flex-direction: row; gap: 10px;">
<input type="text" size="50" id="wordcamp_url" name="wordcamp_url" value="{{.URL}}" placeholder="https://wordcamp.org/YYYY/" style="flex: 2;">
<select name="output_type" id="output_type" style="flex: 1;">
{{range .Modes}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
<input type="submit" value="Get Sessions" style="flex: 1;">
</form>
</div>
{{with .Error}}<div class="wptvsl-error">{{.}}</div>
{{end}}{{.Output}}
</body>
</html>
`))

const textareaOpen = `<textarea rows="20" cols="100" style="width: 100%; height: 300px;" onclick="this.select();">`

var descriptions = map[string]string{
	render.FormatPhotos: "Enter a WordCamp website URL to get a list of sessions suitable for the Photo Mechanic replacements sheet",
	render.FormatSocial: "Enter a WordCamp website URL to get a list of sessions suitable for social media teams",
	render.FormatWPTV:   "Enter a WordCamp website URL to get a list of sessions suitable for the WPTV Google Sheet",
}

var modeLabels = map[core.OutputMode]string{
	core.ModeTable:        "HTML Table",
	core.ModeGoogleSheets: "Google Sheet",
	core.ModeChatGPT:      "ChatGPT (prompt + CSV)",
}

type modeOption struct {
	Value    core.OutputMode
	Label    string
	Selected bool
}

type pageData struct {
	Title       string
	Format      string
	Description string
	Nav         []string
	URL         string
	Modes       []modeOption
	Error       string
	Output      template.HTML
}

// modeOptions lists the table mode first, then the formatter's own modes.
func modeOptions(modes []core.OutputMode, selected core.OutputMode) []modeOption {
	opts := make([]modeOption, 0, len(modes))
	for _, m := range modes {
		opt := modeOption{Value: m, Label: modeLabels[m], Selected: m == selected}
		if opt.Label == "" {
			opt.Label = string(m)
		}
		if m == core.ModeTable {
			opts = append([]modeOption{opt}, opts...)
			continue
		}
		opts = append(opts, opt)
	}
	return opts
}

// wrapOutput embeds a rendered export in the page. Tables are inserted as
// markup, text exports go into a select-on-click textarea.
func wrapOutput(mode core.OutputMode, out string) template.HTML {
	if mode == core.ModeTable {
		return template.HTML(out)
	}
	return template.HTML(textareaOpen + out + "</textarea>")
}
