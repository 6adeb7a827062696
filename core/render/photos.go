package render

import (
	"fmt"
	"strings"

	"github.com/nilovelez/wptv-sessions-list/core"
)

// photosFirstRow is the sheet row of the first exported folder; the three
// header lines of the import block sit above it.
const photosFirstRow = 4

// folderRow is one line of the Photo Mechanic replacements sheet.
type folderRow struct {
	Folder      string
	EventName   string
	Subject     string
	Speakers    string
	Description string
	Mkdir       string
}

// NewPhotosFormatter builds the folder-naming export used by the
// photography team.
func NewPhotosFormatter(weekdays Weekdays) *Pipeline[folderRow] {
	return &Pipeline[folderRow]{
		name: FormatPhotos,
		build: func(sessions []core.Session) []folderRow {
			return buildFolderRows(sessions, weekdays)
		},
		less: func(a, b folderRow) bool {
			return a.Folder < b.Folder
		},
		annotate: addFolderFormulas,
		renderers: []modeRenderer[folderRow]{
			{mode: core.ModeGoogleSheets, render: renderFoldersSheet},
			{mode: core.ModeTable, render: renderFoldersTable},
		},
	}
}

// buildFolderRows emits a "misc" folder row whenever the display date
// changes, followed by one row per session.
func buildFolderRows(sessions []core.Session, weekdays Weekdays) []folderRow {
	rows := make([]folderRow, 0, len(sessions)+4)
	lastDate := ""
	for _, s := range sessions {
		start := localStart(s)
		day := start.Format("20060102")
		eventName := weekdays.Label(start.Weekday())

		if lastDate != s.Date {
			folder := day + "__misc"
			rows = append(rows, folderRow{
				Folder:    folder,
				EventName: eventName,
				Mkdir:     "mkdir " + eventName + " && mkdir " + folder,
			})
			lastDate = s.Date
		}

		folder := day + "_" + s.Track + "_" + start.Format("1504")
		rows = append(rows, folderRow{
			Folder:    folder,
			EventName: eventName,
			Subject:   s.Title,
			Speakers:  s.Speakers,
			Mkdir:     "mkdir " + eventName + "/" + folder,
		})
	}
	return rows
}

// addFolderFormulas fills the description formula on the sorted rows.
// Rows without a subject keep an empty description but still take a row number.
func addFolderFormulas(rows []folderRow) {
	n := photosFirstRow
	for i := range rows {
		if rows[i].Subject != "" {
			rows[i].Description = fmt.Sprintf(`= IF( ISBLANK(D%d), C%d, CONCAT(CONCAT(D%d,": "), C%d) )`, n, n, n, n)
		}
		n++
	}
}

func renderFoldersSheet(rows []folderRow) string {
	var b strings.Builder
	b.WriteString("//$$\tEvents\t\t\t\n")
	b.WriteString("//==\t{foldernum}\t\t\t\n")
	b.WriteString("//##\tEventName\tEventSubject\tSpeakerName\tEventDescription\n")
	for _, r := range rows {
		b.WriteString(r.Folder + "\t")
		b.WriteString(r.EventName + "\t")
		b.WriteString(r.Subject + "\t")
		b.WriteString(r.Speakers + "\t")
		b.WriteString(r.Description + "\n")
		b.WriteString(r.Mkdir + "\n")
	}
	return b.String()
}

func renderFoldersTable(rows []folderRow) string {
	var b strings.Builder
	b.WriteString("<table>")
	b.WriteString("<tr><td>//$$</td><td>Events</td><td></td><td></td></tr>")
	b.WriteString("<tr><td>//==</td><td>{foldernum}</td><td></td><td></td></tr>")
	b.WriteString("<tr><td>//##</td><td>EventName</td><td>EventSubject</td><td>SpeakerName</td></tr>")
	for _, r := range rows {
		b.WriteString("<tr>")
		b.WriteString("<td>" + r.Folder + "</td>")
		b.WriteString("<td>" + r.EventName + "</td>")
		b.WriteString("<td>" + r.Subject + "</td>")
		b.WriteString("<td>" + r.Speakers + "</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}
