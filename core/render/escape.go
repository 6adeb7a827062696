package render

import "strings"

var (
	// specialChars escapes the five HTML special characters with the
	// entities spreadsheet users expect (&#039; rather than &#39;).
	specialChars = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"'", "&#039;",
		"<", "&lt;",
		">", "&gt;",
	)

	// cellBreaks flattens a value into a single tab-separated cell.
	cellBreaks = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")

	// csvQuotes doubles quotes inside a quoted CSV field.
	csvQuotes = strings.NewReplacer(`"`, `""`)

	// csvContent additionally folds line breaks into spaces.
	csvContent = strings.NewReplacer(`"`, `""`, "\r\n", " ", "\n", " ", "\r", " ")
)

// quoteCSV wraps a value in double quotes, doubling inner quotes.
func quoteCSV(s string) string {
	return `"` + csvQuotes.Replace(s) + `"`
}

// sheetCell prepares free text for a single spreadsheet cell.
func sheetCell(s string) string {
	return specialChars.Replace(cellBreaks.Replace(s))
}
