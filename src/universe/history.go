package universe

//MinDepth is the smallest history that can still tell a still life from a changing pattern
const MinDepth = 2

/*
	History keeps the most recent generations in a ring of Depth areas.
	Generation(0) is always the newest one, Generation(Depth-1) the oldest.
	Advancing evicts the oldest area and hands its storage out for the next generation,
	so no memory is allocated once the ring is built.
*/
type History struct {
	areas   []Area
	head    int
	repeats []bool
}

//NewHistory allocates depth areas of width x height, all cells dead
func NewHistory(width int, height int, depth int) *History {
	if depth < MinDepth {
		depth = MinDepth
	}
	h := &History{
		areas:   make([]Area, depth),
		repeats: make([]bool, depth-1),
	}
	for i := range h.areas {
		h.areas[i] = createArea(width, height)
	}
	return h
}

//Depth returns the number of generations kept
func (h *History) Depth() int {
	return len(h.areas)
}

//Generation returns the generation d steps back, 0 is the newest
func (h *History) Generation(d int) Area {
	return h.areas[(h.head+d)%len(h.areas)]
}

//Repeats returns the repeat flags of the newest generation
//Repeats()[d-1] is true when the newest generation is identical to Generation(d)
func (h *History) Repeats() []bool {
	return h.repeats
}

//Repeat reports whether the newest generation is identical to Generation(d)
func (h *History) Repeat(d int) bool {
	if d < 1 || d > len(h.repeats) {
		return false
	}
	return h.repeats[d-1]
}

//Reset kills all cells in every generation and clears the repeat flags
func (h *History) Reset() {
	for _, a := range h.areas {
		a.clear()
	}
	h.head = 0
	h.clearRepeats(false)
}

//advance rotates the ring by one: the oldest area becomes Generation(0) and is returned
//the caller overwrites every cell of the returned area
func (h *History) advance() Area {
	h.head = (h.head + len(h.areas) - 1) % len(h.areas)
	return h.areas[h.head]
}

func (h *History) clearRepeats(v bool) {
	for i := range h.repeats {
		h.repeats[i] = v
	}
}
