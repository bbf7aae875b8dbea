package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel writes lines inside a rounded frame.
func Panel(w io.Writer, st Styles, lines []string) {
	fmt.Fprintln(w, st.Border.Render(strings.Join(lines, "\n")))
}

// OK prints a success line.
func OK(w io.Writer, st Styles, msg string) {
	fmt.Fprintln(w, st.Success.Render(SymDone+" "+msg))
}

// Fail prints an error line.
func Fail(w io.Writer, st Styles, msg string) {
	fmt.Fprintln(w, st.Error.Render("✖ "+msg))
}

// Note prints a muted hint.
func Note(w io.Writer, st Styles, msg string) {
	fmt.Fprintln(w, st.Muted.UnsetBackground().Render(msg))
}

// TermWidth reports the column count of w when it is a terminal, or def.
func TermWidth(w io.Writer, def int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return def
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return def
	}
	return cols
}
