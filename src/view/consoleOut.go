package view

import (
	"bufio"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"golang.org/x/term"
	"termlife/src/universe"
)

const cropNotice = "The field size is larger than the viewing area"

//ConsoleOut paints every frame over the previous one, right where the program was started
type ConsoleOut struct {
	w     *bufio.Writer
	au    aurora.Aurora
	fd    int //terminal fd, -1 when the output is not a terminal
	drawn int //rows written by the previous frame
}

//NewConsoleOut creates the inline viewer
//colors are used only when requested and out is a terminal
func NewConsoleOut(out io.Writer, colors bool) *ConsoleOut {
	c := ConsoleOut{w: bufio.NewWriter(out), fd: -1}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.fd = int(f.Fd())
	} else {
		colors = false
	}
	c.au = aurora.NewAurora(colors)
	return &c
}

//Refresh moves the cursor back to the top of the previous frame and draws the new one
func (c *ConsoleOut) Refresh(_ universe.Status, a universe.Area) {
	cursorUp(c.w, c.drawn)

	rows := RenderRows(a)
	maxW, maxH := c.size()
	crop := false
	//one line stays free for the cursor
	if maxH > 1 && len(rows) > maxH-1 {
		crop = true
		rows = rows[:maxH-1]
	}

	for i, row := range rows {
		if crop && i == len(rows)-1 {
			notice := cropNotice
			if maxW > 0 && len(notice) > maxW {
				notice = notice[:maxW]
			}
			_, _ = c.w.WriteString(c.au.Red(notice).BgBlack().String())
			_ = c.w.WriteByte('\n')
			break
		}
		if maxW > 0 && len(row) > maxW {
			row = row[:maxW]
		}
		_, _ = c.w.WriteString(c.au.Green(string(row)).String())
		_ = c.w.WriteByte('\n')
	}
	c.drawn = len(rows)
	_ = c.w.Flush()
}

//size returns the terminal size, zeros when unknown
func (c *ConsoleOut) size() (int, int) {
	if c.fd < 0 {
		return 0, 0
	}
	w, h, err := term.GetSize(c.fd)
	if err != nil {
		return 0, 0
	}
	return w, h
}
