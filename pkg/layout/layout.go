// Package layout provides the geometry primitives for the weft component
// tree: the Bounds rectangle owned by every container, and the weighted
// split that distributes a container's bounds among its children along one
// axis, flexbox-style.
//
// The split is deliberately simple: each child receives
// floor(extent * weight / total_weight) cells along the layout axis and the
// container's full extent on the cross axis. Floor division means a
// non-evenly-divisible weight set can leave a sliver of unassigned cells at
// the end of the container; that remainder is not redistributed.
package layout

// Bounds represents a rectangular screen region in terminal cells.
type Bounds struct {
	Width  int
	Height int
	X      int
	Y      int
}

// Area returns the number of cells in this region.
func (b Bounds) Area() int {
	return b.Width * b.Height
}

// Empty returns true if this region has zero area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Right returns the X coordinate of the right edge (exclusive).
func (b Bounds) Right() int {
	return b.X + b.Width
}

// Bottom returns the Y coordinate of the bottom edge (exclusive).
func (b Bounds) Bottom() int {
	return b.Y + b.Height
}

// Inner returns a new Bounds shrunk by margin on all sides.
// If the margin would cause negative dimensions, a zero-size region is
// returned.
func (b Bounds) Inner(margin int) Bounds {
	if margin < 0 {
		margin = 0
	}
	x := b.X + margin
	y := b.Y + margin
	w := b.Width - 2*margin
	h := b.Height - 2*margin
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Bounds{Width: w, Height: h, X: x, Y: y}
}

// Contains returns true if the point (px, py) lies within this region.
func (b Bounds) Contains(px, py int) bool {
	return px >= b.X && px < b.Right() && py >= b.Y && py < b.Bottom()
}

// Intersect returns the overlapping region of two rectangles.
// If there is no overlap, returns a zero-size Bounds.
func (b Bounds) Intersect(other Bounds) Bounds {
	x1 := maxInt(b.X, other.X)
	y1 := maxInt(b.Y, other.Y)
	x2 := minInt(b.Right(), other.Right())
	y2 := minInt(b.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Bounds{}
	}
	return Bounds{Width: x2 - x1, Height: y2 - y1, X: x1, Y: y1}
}

// Direction controls the axis along which a container stacks its children.
type Direction int

const (
	// Column stacks children top-to-bottom (weights control height).
	Column Direction = iota
	// Row stacks children left-to-right (weights control width).
	Row
)

// String returns "column" or "row".
func (d Direction) String() string {
	if d == Row {
		return "row"
	}
	return "column"
}

// SplitWeighted divides b into len(weights) regions stacked along dir,
// each sized proportionally to its weight.
//
// A weight of zero or less counts as 1. For dir == Column, child i gets
// height floor(b.Height * w_i / total) and inherits the full width; its Y
// offset is b.Y plus the computed heights of all prior children. Row is the
// dual on width/X. The integer-floor remainder stays unassigned.
func SplitWeighted(b Bounds, dir Direction, weights []int) []Bounds {
	n := len(weights)
	if n == 0 {
		return nil
	}

	total := 0
	norm := make([]int, n)
	for i, w := range weights {
		if w <= 0 {
			w = 1
		}
		norm[i] = w
		total += w
	}

	out := make([]Bounds, n)
	switch dir {
	case Row:
		x := b.X
		for i, w := range norm {
			cw := b.Width * w / total
			out[i] = Bounds{Width: cw, Height: b.Height, X: x, Y: b.Y}
			x += cw
		}
	default:
		y := b.Y
		for i, w := range norm {
			ch := b.Height * w / total
			out[i] = Bounds{Width: b.Width, Height: ch, X: b.X, Y: y}
			y += ch
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
