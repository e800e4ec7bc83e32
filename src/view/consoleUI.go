package view

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"termlife/src/universe"
)

//Controls is the part of the controller the key bindings talk to
type Controls interface {
	Restart()
	TogglePause()
}

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	c       Controls
	options universe.Options
	g       *gocui.Gui
	k       []keyBindings
	au      aurora.Aurora

	status universe.Status
	rows   [][]rune
}

var runningStateColor = map[universe.RunningState]aurora.Color{
	universe.RunningStateRunning: aurora.CyanFg,
	universe.RunningStateStable:  aurora.BlueFg,
	universe.RunningStateCycling: aurora.RedFg,
}

//NewViewTerminal creates the interactive viewer, Start runs it
func NewViewTerminal(c Controls, o universe.Options, colors bool) (*ConsoleUI, error) {
	var err error
	t := ConsoleUI{
		c:       c,
		options: o,
		au:      aurora.NewAurora(colors),
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}

	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'r',
			"R",
			"Restart epoch",
			t.cmdRestart,
			""},
		{'p',
			"P",
			"Pause",
			t.cmdPause,
			""},
		{gocui.KeySpace,
			"SPACE",
			"Pause",
			t.cmdPause,
			""},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return err
		}
	}
	return nil
}

//Start runs the gui main loop until ^C or Quit, then restores the terminal
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

//Quit stops the main loop, returns immediately
func (t *ConsoleUI) Quit() {
	t.g.Update(func(g *gocui.Gui) error {
		return gocui.ErrQuit
	})
}

//Refresh takes a copy of the frame, the gui goroutine draws it later
func (t *ConsoleUI) Refresh(st universe.Status, a universe.Area) {
	rows := RenderRows(a)
	t.g.Update(func(g *gocui.Gui) error {
		t.status = st
		t.rows = rows
		t.renderField()
		t.renderStatus()
		return nil
	})
}

//renderField must run on the gui goroutine
func (t *ConsoleUI) renderField() {
	v, e := t.g.View("battlefield")
	if e != nil {
		return
	}
	v.Clear()

	crop := false
	maxW, maxH := v.Size()
	if len(t.rows) > maxH || (len(t.rows) > 0 && len(t.rows[0]) > maxW) {
		crop = true
	}

	var b bytes.Buffer

	for i, l := range t.rows {
		//discard the data outside the view area
		if i >= maxH {
			break
		}
		//line feed char
		if i != 0 {
			b.WriteByte(10)
		}
		if crop && i == (maxH-1) {
			b.WriteString(t.au.Red(cropNotice).BgBlack().String())
			break
		}
		if len(l) > maxW {
			l = l[:maxW]
		}
		b.WriteString(t.au.Green(string(l)).String())
	}
	_, _ = fmt.Fprint(v, b.String())
}

//renderStatus must run on the gui goroutine
func (t *ConsoleUI) renderStatus() {
	s := t.status
	if v, e := t.g.View("status"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Epoch", "%v", s.Epoch))
		_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.IterationNum))
		_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
		_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", t.runningState(s.RunningMode)))
	}
}

//renderConfiguration must run on the gui goroutine
func (t *ConsoleUI) renderConfiguration() {
	c := t.options
	if v, e := t.g.View("configuration"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Width, c.Height))
		_, _ = fmt.Fprintln(v, t.renderProp("FPS", "%v", c.FPS))
		_, _ = fmt.Fprintln(v, t.renderProp("Fast forward", "%v frames", c.FastForward))
		_, _ = fmt.Fprintln(v, t.renderProp("History", "%v generations", c.Depth))
		_, _ = fmt.Fprintln(v, t.renderProp("Settle", "%v generations", c.SettleThreshold))
		_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", c.Engine))
	}
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+t.au.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) runningState(s universe.RunningState) string {
	return t.au.Colorize(s.String(), runningStateColor[s]).String()
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 32
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
	}
	t.renderField()

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.au.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdRestart(_ *gocui.View) error {
	t.c.Restart()
	return nil
}

func (t *ConsoleUI) cmdPause(_ *gocui.View) error {
	t.c.TogglePause()
	return nil
}
