package snake

// CellKind is the content of one grid cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellSnakeHead
	CellSnakeBody
	CellFood

	cellKindCount
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellSnakeHead:
		return "head"
	case CellSnakeBody:
		return "body"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size field of cells addressed by (row, col).
type Grid struct {
	width  int
	height int
	cells  []CellKind
}

// NewGrid allocates a grid already reset to walls around an empty interior.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]CellKind, width*height),
	}
	g.Reset()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Reset makes the outer ring walls and everything inside empty.
func (g *Grid) Reset() {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			kind := CellEmpty
			if row == 0 || col == 0 || row == g.height-1 || col == g.width-1 {
				kind = CellWall
			}
			g.cells[row*g.width+col] = kind
		}
	}
}

// Contains reports whether p lies on the grid.
func (g *Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell at p. Points off the grid read as walls.
func (g *Grid) At(p Point) CellKind {
	if !g.Contains(p) {
		return CellWall
	}
	return g.cells[p.Row*g.width+p.Col]
}

// Set stores kind at p. Points off the grid are ignored.
func (g *Grid) Set(p Point, kind CellKind) {
	if !g.Contains(p) {
		return
	}
	g.cells[p.Row*g.width+p.Col] = kind
}

// Find returns every point holding kind, in row-major order.
func (g *Grid) Find(kind CellKind) []Point {
	var points []Point
	for i, k := range g.cells {
		if k == kind {
			points = append(points, Point{Row: i / g.width, Col: i % g.width})
		}
	}
	return points
}

// Count returns how many cells hold kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}
