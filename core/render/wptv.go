package render

import (
	"fmt"
	"strings"

	"github.com/nilovelez/wptv-sessions-list/core"
)

// wptvFirstRow is the first data row of the WPTV tracking sheet.
const wptvFirstRow = 8

// slotRow is one session in the WPTV tracking sheet.
type slotRow struct {
	Date     string
	Speakers string
	Title    string
	Track    string
	Content  string
}

// NewWPTVFormatter builds the per-slot spreadsheet export used by the
// video team.
func NewWPTVFormatter() *Pipeline[slotRow] {
	return &Pipeline[slotRow]{
		name:  FormatWPTV,
		build: buildSlotRows,
		less: func(a, b slotRow) bool {
			return a.Track < b.Track
		},
		renderers: []modeRenderer[slotRow]{
			{mode: core.ModeGoogleSheets, render: renderSlotsSheet},
			{mode: core.ModeTable, render: renderSlotsTable},
		},
	}
}

func buildSlotRows(sessions []core.Session) []slotRow {
	rows := make([]slotRow, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, slotRow{
			Date:     localStart(s).Format("02/01/2006"),
			Speakers: s.Speakers,
			Title:    s.Title,
			Track:    s.Track,
			Content:  s.Content,
		})
	}
	return rows
}

// renderSlotsSheet writes one tab-separated line per session. The formula
// cell joins the speaker (column H) and title (column I) of its own row.
func renderSlotsSheet(rows []slotRow) string {
	var b strings.Builder
	n := wptvFirstRow
	for _, r := range rows {
		formula := fmt.Sprintf("= IF( ISBLANK(H%d); &quot;&quot;; CONCAT(CONCAT(H%d; &quot;: &quot;); I%d) )", n, n, n)

		b.WriteString("\tPending\t\t\t" + r.Date + "\t\t\t")
		b.WriteString(r.Speakers + "\t" + r.Title + "\t")
		b.WriteString(formula + "\t")
		b.WriteString(sheetCell(r.Content) + "\n")
		n++
	}
	return b.String()
}

func renderSlotsTable(rows []slotRow) string {
	var b strings.Builder
	b.WriteString("<table>")
	b.WriteString("<tr>")
	b.WriteString("<th>Date</th>")
	b.WriteString("<th>Track</th>")
	b.WriteString("<th>Speakers</th>")
	b.WriteString("<th>Title</th>")
	b.WriteString(`<th width="30%">Content</th>`)
	b.WriteString("</tr>")
	for _, r := range rows {
		b.WriteString("<tr>")
		b.WriteString("<td>" + r.Date + "</td>")
		b.WriteString("<td>" + r.Track + "</td>")
		b.WriteString("<td>" + r.Speakers + "</td>")
		b.WriteString("<td>" + r.Title + "</td>")
		b.WriteString("<td>" + r.Content + "</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}
