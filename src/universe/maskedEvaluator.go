package universe

/*
	Mask evaluator: starts from the full 3x3 neighbour mask and switches off the
	column or row that falls outside the area, then counts through the mask.
	Corners keep 3 neighbours, edges 5, the interior 8.
*/

var fullMask = [3][3]bool{
	{true, true, true},
	{true, false, true},
	{true, true, true},
}

func maskedRow(src Area, dst []Cell, y int) {
	for x := range dst {
		m := neighbourMask(src.Width, src.Height, x, y)
		var n uint8
		for my := 0; my < 3; my++ {
			for mx := 0; mx < 3; mx++ {
				if m[my][mx] && bool(src.Entities[y+my-1][x+mx-1]) {
					n++
				}
			}
		}
		dst[x] = nextState(src.Entities[y][x], n)
	}
}

//neighbourMask returns the mask of neighbours that exist for x,y, indexed [dy+1][dx+1]
func neighbourMask(width int, height int, x int, y int) [3][3]bool {
	m := fullMask
	if x == 0 {
		m[0][0], m[1][0], m[2][0] = false, false, false
	}
	if x == width-1 {
		m[0][2], m[1][2], m[2][2] = false, false, false
	}
	if y == 0 {
		m[0][0], m[0][1], m[0][2] = false, false, false
	}
	if y == height-1 {
		m[2][0], m[2][1], m[2][2] = false, false, false
	}
	return m
}
