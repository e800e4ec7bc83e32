package universe

type Cell bool

//Area is one generation of the universe: Width x Height cells, (0,0) is the top-left corner
//the edges are hard boundaries, nothing wraps around
type Area struct {
	Width    int
	Height   int
	Entities [][]Cell
}

//createArea allocates the new area, all rows share one backing slice
func createArea(width int, height int) Area {
	area := Area{Width: width, Height: height, Entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}

//Equal reports whether both areas have the same size and the same cells
func (a Area) Equal(b Area) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for y := range a.Entities {
		if !rowEqual(a.Entities[y], b.Entities[y]) {
			return false
		}
	}
	return true
}

//LiveCells calculates the count of live cells
func (a Area) LiveCells() int {
	liveCells := 0
	a.walk(func(x int, y int, e Cell) {
		if e {
			liveCells++
		}
	})
	return liveCells
}

//Settle turns on the cells at the given [x,y] coordinates, coordinates outside the area are ignored
func (a Area) Settle(vc [][]int) {
	for _, v := range vc {
		if len(v) < 2 || v[0] < 0 || v[1] < 0 || v[0] >= a.Width || v[1] >= a.Height {
			continue
		}
		a.Entities[v[1]][v[0]] = true
	}
}

//Clone returns a deep copy of the area
func (a Area) Clone() Area {
	c := createArea(a.Width, a.Height)
	for y := range a.Entities {
		copy(c.Entities[y], a.Entities[y])
	}
	return c
}

//clear kills all cells
func (a Area) clear() {
	for y := range a.Entities {
		row := a.Entities[y]
		for x := range row {
			row[x] = false
		}
	}
}

//walk walks the entire area and calls the cb function for each cell
func (a Area) walk(cb func(x int, y int, entity Cell)) {
	for y := range a.Entities {
		for x := range a.Entities[y] {
			cb(x, y, a.Entities[y][x])
		}
	}
}

func rowEqual(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
