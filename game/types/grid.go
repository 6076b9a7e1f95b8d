package types

// Grid is the spatial substrate of the world. Cells are stored row-major.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// InBounds reports whether p lies inside the grid
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index returns the flat index of p. Callers check bounds first.
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// At returns the cell at p; out of bounds reads as Terrain so walkers treat the edge as a wall
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Cell{Kind: Terrain}
	}
	return g.cells[g.Index(p)]
}

// Set overwrites the cell at p. Out of bounds writes are dropped.
func (g *Grid) Set(p Point, c Cell) {
	if !g.InBounds(p) {
		return
	}
	if c.Kind != Food {
		c.Amount = 0
	}
	g.cells[g.Index(p)] = c
}

// IsBlocked reports whether an ant may not stand on p
func (g *Grid) IsBlocked(p Point) bool {
	return g.At(p).Kind == Terrain
}

// Clear resets every cell to Empty
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// Cells returns a copy of the backing slice
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Square returns the in-bounds cells of the square of the given radius around center
func (g *Grid) Square(center Point, radius int) []Point {
	if radius < 0 {
		return nil
	}
	points := make([]Point, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := Point{X: center.X + dx, Y: center.Y + dy}
			if g.InBounds(p) {
				points = append(points, p)
			}
		}
	}
	return points
}
