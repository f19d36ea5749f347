package chat

import (
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// DefaultWidth is the column width replies are wrapped to.
const DefaultWidth = 100

// minWidth is the narrowest useful width: wordwrap only breaks before
// words shorter than the limit.
const minWidth = 2

// tabWidth is the distance between tab stops.
const tabWidth = 8

// Wrap wraps every line of text to width columns.
//
// Words are never split: a word longer than width is left on a line of its
// own. Lines holding only whitespace come out empty, so paragraph breaks
// survive. A line's indentation is kept on its first line. Tabs are
// expanded first. Wrapping already-wrapped text at the same width changes
// nothing.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	width = max(width, minWidth)

	lines := strings.Split(text, "\n")
	wrapped := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			wrapped = append(wrapped, "")
			continue
		}

		line = expandTabs(line)
		body := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(body)]

		// Leading spaces would go through the writer's space buffer and be
		// dropped, with a newline, if the first word doesn't fit after them.
		w := wordwrap.NewWriter(max(width-len(indent), minWidth))
		// Hyphens are part of the word.
		w.Breakpoints = nil
		_, _ = w.Write([]byte(body))
		_ = w.Close()

		wrapped = append(wrapped, indent+w.String())
	}

	return strings.Join(wrapped, "\n")
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}

	var (
		b   strings.Builder
		col int
	)
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}

	return b.String()
}

// ResolveWidth returns width if it is positive. Otherwise it returns the
// width of the terminal attached to f, or DefaultWidth if f isn't one.
func ResolveWidth(width int, f *os.File) int {
	if width > 0 {
		return width
	}

	if f != nil && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}

	return DefaultWidth
}
