package tracking

import (
	"image"
	"image/color"
)

// TrackingMode represents the current mode of the stroke engine
type TrackingMode int

const (
	ModeIdle TrackingMode = iota
	ModeDrawing
)

func (m TrackingMode) String() string {
	switch m {
	case ModeIdle:
		return "IDLE"
	case ModeDrawing:
		return "DRAWING"
	default:
		return "UNKNOWN"
	}
}

// TrackState is the carried-forward tracking state. Last is stale while Active is false and
// is overwritten on the next valid detection.
type TrackState struct {
	Active bool
	Last   image.Point
}

// Segment is one line drawn onto the canvas
type Segment struct {
	From      image.Point
	To        image.Point
	Color     color.RGBA
	Thickness int
}

// Surface is anything a stroke can be drawn onto
type Surface interface {
	DrawLine(from, to image.Point, c color.RGBA, thickness int)
}

// debugMsgFunc is a function that will be set by main package to use unified logging
var debugMsgFunc func(component, message string)

// SetDebugFunction allows main package to provide the debug logger
func SetDebugFunction(fn func(component, message string)) {
	debugMsgFunc = fn
}

func debugMsg(component, message string) {
	if debugMsgFunc != nil {
		debugMsgFunc(component, message)
	}
}
