// Package render holds the text helpers shared by reel's views: page and
// folder names come straight from the file system or from image tags, so
// everything shown goes through Sanitize first.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ellipsis marks truncated text. It is one cell wide.
const ellipsis = "…"

// Sanitize drops control characters (tab excepted) and invalid UTF-8, and
// turns non-breaking spaces into plain ones.
func Sanitize(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, unsafeRune) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r == utf8.RuneError, unsafeRune(r):
			return -1
		}
		return r
	}, s)
}

func unsafeRune(r rune) bool {
	return r == '\u00a0' || (r != '\t' && unicode.IsControl(r))
}

// Truncate sanitizes s and cuts it to maxWidth cells, ending with an
// ellipsis when something was cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// Row puts left and right at the two ends of a width-cell line. The two
// always keep at least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
