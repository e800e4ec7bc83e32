package view

import (
	"fmt"
	"io"
)

// ANSI sequences used by the inline renderer
const (
	csiCursorHide = "\x1b[?25l"
	csiCursorShow = "\x1b[?25h"
	csiCursorUp   = "\x1b[%dA"
)

//HideCursor hides the terminal cursor and returns the func showing it again
//the returned func is safe to call more than once
func HideCursor(w io.Writer) (restore func()) {
	_, _ = io.WriteString(w, csiCursorHide)
	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		_, _ = io.WriteString(w, csiCursorShow)
	}
}

//cursorUp moves the cursor n rows up, it is a no-op for n < 1
func cursorUp(w io.Writer, n int) {
	if n < 1 {
		return
	}
	_, _ = fmt.Fprintf(w, csiCursorUp, n)
}
