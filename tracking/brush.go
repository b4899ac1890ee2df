package tracking

import (
	"image/color"
)

// BrushColor is one of the selectable stroke colors
type BrushColor int

const (
	BrushRed BrushColor = iota
	BrushGreen
	BrushBlue
)

// Default brush settings
const (
	DefaultBrushColor  = BrushGreen
	DefaultBrushRadius = 5
)

// RGBA returns the drawing color. gocv converts color.RGBA to BGR itself.
func (c BrushColor) RGBA() color.RGBA {
	switch c {
	case BrushRed:
		return color.RGBA{255, 0, 0, 255}
	case BrushBlue:
		return color.RGBA{0, 0, 255, 255}
	default:
		return color.RGBA{0, 255, 0, 255}
	}
}

func (c BrushColor) String() string {
	switch c {
	case BrushRed:
		return "red"
	case BrushGreen:
		return "green"
	case BrushBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// BrushStyle is the current stroke color and radius
type BrushStyle struct {
	Color  BrushColor
	Radius int
}

// DefaultBrush returns green with radius 5
func DefaultBrush() BrushStyle {
	return BrushStyle{Color: DefaultBrushColor, Radius: DefaultBrushRadius}
}

// Thickness is the line thickness used for segments, twice the radius
func (b BrushStyle) Thickness() int {
	return 2 * b.Radius
}

// Grown returns the brush with radius increased by one. Growth is unbounded.
func (b BrushStyle) Grown() BrushStyle {
	b.Radius++
	return b
}

// Shrunk returns the brush with radius decreased by one, never below 1
func (b BrushStyle) Shrunk() BrushStyle {
	b.Radius = max(1, b.Radius-1)
	return b
}

// WithColor returns the brush with a different color
func (b BrushStyle) WithColor(c BrushColor) BrushStyle {
	b.Color = c
	return b
}
