// Package geom provides the integer rectangle algebra used by every drawing
// primitive: inclusive-bound areas, intersection and bounding-box union.
package geom

import "math"

// Pos is a point in screen coordinates.
type Pos struct {
	X, Y int
}

// Area is an axis-aligned rectangle with inclusive bounds.
// It is empty when X2 < X1 or Y2 < Y1.
type Area struct {
	X1, Y1, X2, Y2 int
}

// Max covers the whole coordinate range and is the identity for Clip.
var Max = Area{X1: math.MinInt16, Y1: math.MinInt16, X2: math.MaxInt16, Y2: math.MaxInt16}

// Invalid is the canonical empty area and the identity for Union.
var Invalid = Area{X1: math.MaxInt16, Y1: math.MaxInt16, X2: math.MinInt16, Y2: math.MinInt16}

// Rect builds an area from its top-left corner and size.
func Rect(x, y, w, h int) Area {
	return Area{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

func (a Area) Empty() bool { return a.X2 < a.X1 || a.Y2 < a.Y1 }

func (a Area) Width() int {
	if a.X2 < a.X1 {
		return 0
	}
	return a.X2 - a.X1 + 1
}

func (a Area) Height() int {
	if a.Y2 < a.Y1 {
		return 0
	}
	return a.Y2 - a.Y1 + 1
}

// Pixels returns Width*Height.
func (a Area) Pixels() int { return a.Width() * a.Height() }

func (a Area) Contains(p Pos) bool {
	return p.X >= a.X1 && p.X <= a.X2 && p.Y >= a.Y1 && p.Y <= a.Y2
}

// Offset returns a moved by (dx, dy).
func (a Area) Offset(dx, dy int) Area {
	return Area{X1: a.X1 + dx, Y1: a.Y1 + dy, X2: a.X2 + dx, Y2: a.Y2 + dy}
}

// Inset shrinks a by n on every side. Negative n grows it.
func (a Area) Inset(n int) Area {
	return Area{X1: a.X1 + n, Y1: a.Y1 + n, X2: a.X2 - n, Y2: a.Y2 - n}
}

// Center returns the midpoint, rounded toward the top-left.
func (a Area) Center() Pos {
	return Pos{X: (a.X1 + a.X2) / 2, Y: (a.Y1 + a.Y2) / 2}
}

// Clip intersects a and b. The result is only meaningful when ok is true.
func Clip(a, b Area) (out Area, ok bool) {
	out = Area{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
	if out.Empty() {
		return Invalid, false
	}
	return out, true
}

// SelfClip narrows clip by r in place and reports whether anything is left.
// An empty result leaves clip set to Invalid.
func SelfClip(clip *Area, r Area) bool {
	out, ok := Clip(*clip, r)
	*clip = out
	return ok
}

// Overlaps reports whether a and b share at least one pixel.
func Overlaps(a, b Area) bool {
	_, ok := Clip(a, b)
	return ok
}

// Union returns the bounding box of a and b. Empty inputs are ignored.
func Union(a, b Area) Area {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return Area{
		X1: min(a.X1, b.X1),
		Y1: min(a.Y1, b.Y1),
		X2: max(a.X2, b.X2),
		Y2: max(a.Y2, b.Y2),
	}
}

// Align names a placement of a child rectangle inside a parent.
type Align uint8

const (
	AlignCenter Align = iota
	AlignTopLeft
	AlignTopMid
	AlignTopRight
	AlignBotLeft
	AlignBotMid
	AlignBotRight
	AlignLeftMid
	AlignRightMid
)

// AlignPos returns the top-left corner that places a w×h box in parent.
func AlignPos(parent Area, w, h int, align Align) Pos {
	pw, ph := parent.Width(), parent.Height()
	midX := parent.X1 + (pw-w)/2
	midY := parent.Y1 + (ph-h)/2
	right := parent.X2 - w + 1
	bottom := parent.Y2 - h + 1

	switch align {
	case AlignTopLeft:
		return Pos{parent.X1, parent.Y1}
	case AlignTopMid:
		return Pos{midX, parent.Y1}
	case AlignTopRight:
		return Pos{right, parent.Y1}
	case AlignBotLeft:
		return Pos{parent.X1, bottom}
	case AlignBotMid:
		return Pos{midX, bottom}
	case AlignBotRight:
		return Pos{right, bottom}
	case AlignLeftMid:
		return Pos{parent.X1, midY}
	case AlignRightMid:
		return Pos{right, midY}
	default:
		return Pos{midX, midY}
	}
}
