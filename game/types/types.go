package types

// Board geometry and scoring constants
const (
	GridSize      = 8  // Rows and columns of the board
	NumColors     = 6  // Distinct tile colors
	CellSize      = 60 // Pixel extent of one cell
	PointsPerTile = 10 // Score for each removed tile
)

// Point addresses a board cell. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Adjacent reports whether p and q share a row or column and are one cell apart.
func (p Point) Adjacent(q Point) bool {
	return abs(p.X-q.X)+abs(p.Y-q.Y) == 1
}

// InBounds reports whether p lies on the board.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// Offset is a pixel displacement.
type Offset struct {
	X, Y int
}

// IsZero reports whether both axes are zero.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// Tile is a color index in [0, NumColors) or Empty.
type Tile int8

// Empty marks a cell whose tile was removed and not yet refilled.
const Empty Tile = -1

// Valid reports whether t holds a color.
func (t Tile) Valid() bool {
	return t >= 0 && t < NumColors
}

// Layout maps board cells to screen pixels.
type Layout struct {
	OriginX  int
	OriginY  int
	CellSize int
}

// DefaultLayout places the board below the HUD title.
var DefaultLayout = Layout{OriginX: 50, OriginY: 90, CellSize: CellSize}

// CellAt converts a screen position to the cell under it. Positions left of
// or above the origin map to negative coordinates.
func (l Layout) CellAt(x, y int) Point {
	return Point{
		X: floorDiv(x-l.OriginX, l.CellSize),
		Y: floorDiv(y-l.OriginY, l.CellSize),
	}
}

// CellOrigin returns the top-left pixel of a cell.
func (l Layout) CellOrigin(p Point) (int, int) {
	return l.OriginX + p.X*l.CellSize, l.OriginY + p.Y*l.CellSize
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
