package grid

// cell is a work-list entry.
type cell struct{ row, col int }

var neighbours = [4]cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Fill recolors the 4-connected region of cells that share the color found at
// (row, col) and returns the number of cells changed. Filling with the color
// already present is a no-op.
func Fill(g *Grid, row, col int, c Color) (int, error) {
	return fill(g, row, col, c, popLast)
}

func popLast(n int) int { return n - 1 }

// fill runs the flood with pick choosing which frontier entry is expanded
// next. Cells are recolored as they are pushed, so a cell enters the frontier
// at most once and the frontier never exceeds rows*cols entries.
func fill(g *Grid, row, col int, c Color, pick func(n int) int) (int, error) {
	target, err := g.Get(row, col)
	if err != nil {
		return 0, err
	}
	if target == c {
		return 0, nil
	}
	g.cells[row][col] = c
	changed := 1
	frontier := []cell{{row, col}}
	for len(frontier) > 0 {
		i := pick(len(frontier))
		cur := frontier[i]
		last := len(frontier) - 1
		frontier[i] = frontier[last]
		frontier = frontier[:last]
		for _, d := range neighbours {
			r, cc := cur.row+d.row, cur.col+d.col
			if !g.In(r, cc) || g.cells[r][cc] != target {
				continue
			}
			g.cells[r][cc] = c
			changed++
			frontier = append(frontier, cell{r, cc})
		}
	}
	return changed, nil
}
