package manager

import (
	"ant-colony/game/types"
)

type CollisionManager struct {
	grid *types.Grid
}

func NewCollisionManager(grid *types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsBlocked checks walls and terrain for a given cell
func (cm *CollisionManager) IsBlocked(p types.Point) bool {
	return cm.isWallCollision(p) || cm.grid.At(p).Kind == types.Terrain
}

// isWallCollision checks if a cell lies outside the grid
func (cm *CollisionManager) isWallCollision(p types.Point) bool {
	return p.X < 0 || p.X >= cm.grid.Width || p.Y < 0 || p.Y >= cm.grid.Height
}

// CanStep reports whether a walker may go from one cell to an adjacent one.
// Diagonal steps between two blocked neighbours are refused.
func (cm *CollisionManager) CanStep(from, to types.Point) bool {
	return !cm.IsBlocked(to) && !types.CutsCorner(from, to, cm.IsBlocked)
}

// Move is the outcome of one attempted step
type Move struct {
	Position types.Vec2
	Heading  float64
	Moved    bool
}

// ResolveMove advances pos by step along heading. A blocked step reflects the
// heading off whatever blocked it and is retried once; if that is blocked too
// the walker stays put with the reflected heading.
func (cm *CollisionManager) ResolveMove(pos types.Vec2, heading, step float64) Move {
	candidate := pos.Add(heading, step)
	if cm.CanStep(pos.Cell(), candidate.Cell()) {
		return Move{Position: candidate, Heading: heading, Moved: true}
	}

	heading = cm.bounce(pos, candidate, heading)
	candidate = pos.Add(heading, step)
	if cm.CanStep(pos.Cell(), candidate.Cell()) {
		return Move{Position: candidate, Heading: heading, Moved: true}
	}
	return Move{Position: pos, Heading: heading, Moved: false}
}

// bounce picks the reflection for a step from pos into the blocked candidate
func (cm *CollisionManager) bounce(pos, candidate types.Vec2, heading float64) float64 {
	from := pos.Cell()
	to := candidate.Cell()

	xBlocked := to.X != from.X && cm.IsBlocked(types.Point{X: to.X, Y: from.Y})
	yBlocked := to.Y != from.Y && cm.IsBlocked(types.Point{X: from.X, Y: to.Y})

	switch {
	case xBlocked && !yBlocked:
		return types.ReflectX(heading)
	case yBlocked && !xBlocked:
		return types.ReflectY(heading)
	default:
		// both sides or only the diagonal corner
		return types.Reverse(heading)
	}
}
