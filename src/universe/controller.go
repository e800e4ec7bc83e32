package universe

import (
	"context"
	"math/rand"
	"time"
)

type command int

const (
	cmdRestart command = iota
	cmdTogglePause
)

/*
	Controller runs the universe epoch after epoch.
	Every epoch starts from random data and ends when the tracker reports a terminal state,
	the next one starts right away until the context is cancelled.
	All work happens on the goroutine calling Run, the other goroutines only queue commands.
*/
type Controller struct {
	u         *Universe
	rnd       *rand.Rand
	views     []Viewer
	controlCh chan command
	paused    bool
	epoch     int
}

//NewController creates the Controller, rnd is the only source of random data for all epochs
func NewController(u *Universe, rnd *rand.Rand) *Controller {
	return &Controller{
		u:         u,
		rnd:       rnd,
		controlCh: make(chan command, 8),
	}
}

//RegisterViewer registers the viewer - the controller will call the viewer on every frame
func (c *Controller) RegisterViewer(v Viewer) {
	c.views = append(c.views, v)
}

//Universe returns the driven universe
func (c *Controller) Universe() *Universe {
	return c.u
}

//Restart abandons the current epoch and starts a new one, returns immediately
func (c *Controller) Restart() {
	c.send(cmdRestart)
}

//TogglePause stops or resumes advancing generations, returns immediately
func (c *Controller) TogglePause() {
	c.send(cmdTogglePause)
}

//Run runs epochs until ctx is done, or only one epoch when Options.Once is set
//cancellation is the normal way to stop, so it returns nil in that case
func (c *Controller) Run(ctx context.Context) error {
	for {
		st, err := c.RunEpoch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if c.u.options.Once && st.Terminal() {
			return nil
		}
	}
}

//RunEpoch settles random data and advances generations until the tracker reports a terminal state
//it returns the terminal state, RunningStateRunning when the epoch was restarted, or the context error
func (c *Controller) RunEpoch(ctx context.Context) (RunningState, error) {
	c.epoch++
	c.u.SettleWithRandomData(c.rnd)
	c.u.status.Epoch = c.epoch
	o := c.u.options
	frame := 0
	for {
		if err := ctx.Err(); err != nil {
			return RunningStateRunning, err
		}
		restart, err := c.handleCommands(ctx)
		if err != nil {
			return RunningStateRunning, err
		}
		if restart {
			return RunningStateRunning, nil
		}
		c.refreshView()
		if st := c.u.Evaluate(); st.Terminal() {
			return st, nil
		}
		c.u.Step()
		frame++
		if frame > o.FastForward && o.Interval > 0 {
			if err := sleep(ctx, o.Interval); err != nil {
				return RunningStateRunning, err
			}
		}
	}
}

//handleCommands applies queued commands, while paused it blocks until resumed, restarted or cancelled
func (c *Controller) handleCommands(ctx context.Context) (restart bool, err error) {
	for {
		if !c.paused {
			select {
			case cmd := <-c.controlCh:
				if c.apply(cmd) {
					return true, nil
				}
				continue
			default:
				return false, nil
			}
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case cmd := <-c.controlCh:
			if c.apply(cmd) {
				return true, nil
			}
		}
	}
}

func (c *Controller) apply(cmd command) (restart bool) {
	switch cmd {
	case cmdRestart:
		c.paused = false
		return true
	case cmdTogglePause:
		c.paused = !c.paused
	}
	return false
}

func (c *Controller) send(cmd command) {
	select {
	case c.controlCh <- cmd:
	default:
		//the controller is behind, drop the command like a missed key press
	}
}

//refreshView calls Refresh for all registered views
func (c *Controller) refreshView() {
	st := c.u.Status()
	a := c.u.Area()
	for _, v := range c.views {
		v.Refresh(st, a)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
