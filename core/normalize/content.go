package normalize

import (
	"strings"

	"golang.org/x/net/html"
)

// paragraphBreak is the separator WordPress emits between two rendered
// paragraphs of a session description.
const paragraphBreak = "</p>\n\n\n\n<p>"

// CleanContent turns a rendered session description into plain text.
// <br> becomes a newline, consecutive paragraphs become a blank line and
// every remaining tag is removed. Entities are left untouched.
func CleanContent(content string) string {
	content = strings.ReplaceAll(content, "<br>", "\n")
	content = strings.ReplaceAll(content, paragraphBreak, "\n\n")
	return stripTags(content)
}

// stripTags keeps only the raw bytes of text tokens, so entities such as
// &amp; survive unchanged. Comments and doctype tokens are dropped too.
// Raw-text elements (textarea, title, xmp, ...) are tokenized as markup so
// tags nested in them are removed as well.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			z.NextIsNotRawText()
		case html.TextToken:
			b.Write(z.Raw())
		}
	}
}
