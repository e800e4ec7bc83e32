package universe

/*
	Straightforward evaluator: every cell scans its 3x3 neighbourhood
	and skips the coordinates outside the area
*/

func boundedRow(src Area, dst []Cell, y int) {
	for x := range dst {
		dst[x] = nextState(src.Entities[y][x], liveNeighbours(src, x, y))
	}
}

//liveNeighbours counts the live cells around x,y, positions outside the area do not exist
func liveNeighbours(a Area, x int, y int) (n uint8) {
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nx := x + i
			ny := y + j
			//skip coordinates outside the area
			if nx < 0 || ny < 0 || nx >= a.Width || ny >= a.Height {
				continue
			}
			if a.Entities[ny][nx] {
				n++
			}
		}
	}
	return
}
