package overlay

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Canvas is the persistent drawing surface. It starts all black and only ever accumulates
// strokes until cleared.
type Canvas struct {
	mat gocv.Mat
}

// NewCanvas allocates a black canvas of the given frame size
func NewCanvas(rows, cols int) *Canvas {
	return &Canvas{
		mat: gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC3),
	}
}

// Mat exposes the underlying image for compositing and saving
func (c *Canvas) Mat() gocv.Mat {
	return c.mat
}

// Rows returns the canvas height
func (c *Canvas) Rows() int {
	return c.mat.Rows()
}

// Cols returns the canvas width
func (c *Canvas) Cols() int {
	return c.mat.Cols()
}

// Fits reports whether the canvas matches a frame's size
func (c *Canvas) Fits(frame gocv.Mat) bool {
	return c.mat.Rows() == frame.Rows() && c.mat.Cols() == frame.Cols()
}

// DrawLine draws one stroke segment
func (c *Canvas) DrawLine(from, to image.Point, col color.RGBA, thickness int) {
	gocv.Line(&c.mat, from, to, col, thickness)
}

// Clear resets every pixel to black
func (c *Canvas) Clear() {
	c.mat.SetTo(gocv.NewScalar(0, 0, 0, 0))
}

// Empty reports whether nothing has been drawn
func (c *Canvas) Empty() bool {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(c.mat, &gray, gocv.ColorBGRToGray)
	return gocv.CountNonZero(gray) == 0
}

// Close releases the canvas image
func (c *Canvas) Close() error {
	return c.mat.Close()
}
