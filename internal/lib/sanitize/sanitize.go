// Package sanitize neutralizes free text before it is embedded in HTML
// email bodies.
package sanitize

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// HTML escapes & < > " and ' to their entity forms.
func HTML(s string) string {
	return htmlEscaper.Replace(s)
}
