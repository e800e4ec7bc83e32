package universe

import (
	"math/rand"
	"time"
)

//Options represents the Universe's configurable options
type Options struct {
	Width           int
	Height          int
	FPS             int
	Interval        time.Duration //pause between two generations, derived from FPS
	FastForward     int           //the first FastForward frames of an epoch are not paced
	Depth           int           //generations kept in the history
	SettleThreshold int           //generations an oscillation may go on before the epoch ends
	Once            bool          //stop after the first epoch
	Engine          string
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	Epoch         int
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display simulation data
//Refresh is called once per frame from the goroutine running the Controller
type Viewer interface {
	Refresh(st Status, a Area)
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

//The universe running status at the concrete moment
type RunningState int

//default options
const (
	DefWidth       = 20
	DefHeight      = 20
	DefFPS         = 20
	DefFastForward = 0
	DefDepth       = 3
)

const (
	RunningStateRunning RunningState = iota
	RunningStateStable
	RunningStateCycling
)

var runningStateNames = map[RunningState]string{
	RunningStateRunning: "running",
	RunningStateStable:  "stable",
	RunningStateCycling: "cycling",
}

func (s RunningState) String() string {
	if n, ok := runningStateNames[s]; ok {
		return n
	}
	return "unknown"
}

//Terminal reports whether the state ends the epoch
func (s RunningState) Terminal() bool {
	return s == RunningStateStable || s == RunningStateCycling
}

var DefaultUniverseOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	FPS:             DefFPS,
	Interval:        time.Second / DefFPS,
	FastForward:     DefFastForward,
	Depth:           DefDepth,
	SettleThreshold: DefFPS,
	Engine:          DefEngine,
}

//Universe is the simulation engine: the generation history, the rule evaluator and the tracker
//it is not safe for concurrent use, the Controller owns it
type Universe struct {
	options  Options
	status   Status
	history  *History
	tracker  *Tracker
	evaluate Evaluator
}

//NewUniverse creates the Universe with all cells dead
func NewUniverse(o *Options) *Universe {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	u := Universe{options: *o}
	if u.options.Depth < MinDepth {
		u.options.Depth = MinDepth
	}
	e, ok := EvaluatorByName(u.options.Engine)
	if !ok {
		u.options.Engine = DefEngine
		e = evaluators[DefEngine]
	}
	u.evaluate = e
	u.history = NewHistory(u.options.Width, u.options.Height, u.options.Depth)
	u.tracker = NewTracker(u.options.Depth, u.options.SettleThreshold)
	return &u
}

//Options returns current universe configuration represented by Options struct
func (u *Universe) Options() Options {
	return u.options
}

//Status returns current universe status represented by Status struct
func (u *Universe) Status() Status {
	return u.status
}

//Area returns the newest generation
func (u *Universe) Area() Area {
	return u.history.Generation(0)
}

//History returns the generation history
func (u *Universe) History() *History {
	return u.history
}

//Settle starts over with only the cells at the given [x,y] coordinates alive
func (u *Universe) Settle(vc [][]int) {
	u.reset()
	u.Area().Settle(vc)
	u.status.LiveCells = u.Area().LiveCells()
}

//SettleTemplate starts over with the seeding template
func (u *Universe) SettleTemplate(tmpl Template) {
	u.Settle(tmpl.Coordinates)
}

//SettleWithRandomData starts over with every cell alive or dead with equal chance
func (u *Universe) SettleWithRandomData(r *rand.Rand) {
	u.reset()
	a := u.Area()
	for y := range a.Entities {
		for x := range a.Entities[y] {
			a.Entities[y][x] = r.Intn(2) == 1
		}
	}
	u.status.LiveCells = a.LiveCells()
}

//Evaluate runs the tracker over the repeat flags of the newest generation
//it has to be called exactly once per generation, the cycle counters depend on it
func (u *Universe) Evaluate() RunningState {
	u.status.RunningMode = u.tracker.Observe(u.history.Repeats())
	return u.status.RunningMode
}

//Step calculates the next generation
//the oldest generation is overwritten and the repeat flags are recalculated row by row while writing
func (u *Universe) Step() {
	start := time.Now()
	h := u.history
	src := h.Generation(0)
	dst := h.advance()
	h.clearRepeats(true)
	depth := h.Depth()
	liveCells := 0
	for y := range dst.Entities {
		row := dst.Entities[y]
		u.evaluate(src, row, y)
		for _, c := range row {
			if c {
				liveCells++
			}
		}
		for d := 1; d < depth; d++ {
			if h.repeats[d-1] && !rowEqual(row, h.Generation(d).Entities[y]) {
				h.repeats[d-1] = false
			}
		}
	}
	u.status.IterationNum++
	u.status.LiveCells = liveCells
	u.status.IterationTime = time.Since(start)
}

//reset clears the history, the tracker and the per-epoch counters
func (u *Universe) reset() {
	u.history.Reset()
	u.tracker.Reset()
	u.status.IterationNum = 0
	u.status.LiveCells = 0
	u.status.IterationTime = 0
	u.status.RunningMode = RunningStateRunning
}
