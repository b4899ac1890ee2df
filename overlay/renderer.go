package overlay

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gocv.io/x/gocv"
)

// debugMsgFunc is a function that will be set by main package to use unified logging
var debugMsgFunc func(component, message string)

// SetDebugFunction allows main package to provide the debug logger
func SetDebugFunction(fn func(component, message string)) {
	debugMsgFunc = fn
}

// debugMsg is a wrapper that handles nil checks
func debugMsg(component, message string) {
	if debugMsgFunc != nil {
		debugMsgFunc(component, message)
	}
}

// Renderer handles compositing and status text
type Renderer struct {
	textOrigin    image.Point // Nominal position of status text (baseline-left)
	outlineOffset image.Point // Offset of the dark outline pass
	outlineColor  color.RGBA
	fillColor     color.RGBA
	fontFace      gocv.HersheyFont
	fontScale     float64
	thickness     int
}

// NewRenderer creates a renderer with the default status text style
func NewRenderer() *Renderer {
	return &Renderer{
		textOrigin:    image.Point{20, 40},
		outlineOffset: image.Point{2, 2},
		outlineColor:  color.RGBA{0, 0, 0, 255},       // Dark outline for legibility
		fillColor:     color.RGBA{255, 255, 255, 255}, // Bright fill
		fontFace:      gocv.FontHersheySimplex,
		fontScale:     1.0,
		thickness:     2,
	}
}

// Composite adds the canvas on top of the live frame with unit weights.
// Black canvas pixels leave the frame untouched; the add saturates at 255.
func Composite(frame gocv.Mat, canvas *Canvas, dst *gocv.Mat) error {
	if canvas == nil {
		frame.CopyTo(dst)
		return nil
	}
	if !canvas.Fits(frame) {
		return fmt.Errorf("canvas %dx%d does not match frame %dx%d",
			canvas.Cols(), canvas.Rows(), frame.Cols(), frame.Rows())
	}
	gocv.Add(frame, canvas.Mat(), dst)
	return nil
}

// DrawText renders text in two passes: a dark outline offset by outlineOffset, then the
// bright fill at the nominal position.
func (r *Renderer) DrawText(img *gocv.Mat, text string) {
	outlinePos := r.textOrigin.Add(r.outlineOffset)
	gocv.PutText(img, text, outlinePos, r.fontFace, r.fontScale, r.outlineColor, r.thickness)
	gocv.PutText(img, text, r.textOrigin, r.fontFace, r.fontScale, r.fillColor, r.thickness)
}

// DrawNotice draws the notice if it is still active at now. It returns false when there is
// nothing to draw, so the caller can drop an expired notice.
func (r *Renderer) DrawNotice(img *gocv.Mat, notice *Notice, now time.Time) bool {
	if !notice.Active(now) {
		return false
	}
	r.DrawText(img, notice.Message)
	return true
}
