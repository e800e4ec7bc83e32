package universe

/*
	Tracker decides when an epoch is over by looking at the repeat flags of every generation.
	A repeat of the previous generation means a still life and ends the epoch at once.
	A repeat of an older generation is an oscillator, but one-off matches happen all the time in a
	random soup, so the epoch only ends after the same depth kept repeating for more than threshold
	generations in a row.
*/
type Tracker struct {
	threshold int
	flips     []int
}

//NewTracker creates the tracker for a history of depth generations
func NewTracker(depth int, threshold int) *Tracker {
	if depth < MinDepth {
		depth = MinDepth
	}
	return &Tracker{
		threshold: threshold,
		flips:     make([]int, depth-MinDepth),
	}
}

//Observe evaluates the repeat flags of the newest generation and returns the verdict
func (t *Tracker) Observe(repeats []bool) RunningState {
	if len(repeats) > 0 && repeats[0] {
		return RunningStateStable
	}
	for i := range t.flips {
		d := i + MinDepth
		if d-1 >= len(repeats) || !repeats[d-1] {
			t.flips[i] = 0
			continue
		}
		t.flips[i]++
		if t.flips[i] > t.threshold {
			return RunningStateCycling
		}
	}
	return RunningStateRunning
}

//Flips returns how many generations in a row the pattern has repeated at depth d
func (t *Tracker) Flips(d int) int {
	i := d - MinDepth
	if i < 0 || i >= len(t.flips) {
		return 0
	}
	return t.flips[i]
}

//Reset zeroes all counters
func (t *Tracker) Reset() {
	for i := range t.flips {
		t.flips[i] = 0
	}
}
