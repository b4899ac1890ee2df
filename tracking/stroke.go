package tracking

import (
	"fmt"
	"image"
)

// StrokeEngine turns a sequence of detections into line segments on a surface.
//
// Only one target is tracked, and only while it is continuously valid: losing the target and
// reacquiring it starts a new, disconnected stroke. Nothing is interpolated across a gap.
type StrokeEngine struct {
	surface Surface
	brush   BrushStyle
	state   TrackState
	strokes int // strokes started this session
}

// NewStrokeEngine creates an idle engine drawing onto surface with the default brush
func NewStrokeEngine(surface Surface) *StrokeEngine {
	return &StrokeEngine{
		surface: surface,
		brush:   DefaultBrush(),
	}
}

// Mode returns the current state machine mode
func (se *StrokeEngine) Mode() TrackingMode {
	if se.state.Active {
		return ModeDrawing
	}
	return ModeIdle
}

// State returns a copy of the track state
func (se *StrokeEngine) State() TrackState {
	return se.state
}

// Brush returns the current brush
func (se *StrokeEngine) Brush() BrushStyle {
	return se.brush
}

// SetBrush replaces the brush used for subsequent segments
func (se *StrokeEngine) SetBrush(b BrushStyle) {
	se.brush = b
}

// SetSurface changes the drawing target, e.g. after the canvas is reallocated
func (se *StrokeEngine) SetSurface(s Surface) {
	se.surface = s
}

// Strokes returns how many strokes have been started
func (se *StrokeEngine) Strokes() int {
	return se.strokes
}

// Reset drops any stroke in progress
func (se *StrokeEngine) Reset() {
	se.state.Active = false
}

// Update feeds one detection into the state machine. When a segment is drawn it is returned
// with ok set.
func (se *StrokeEngine) Update(valid bool, p image.Point) (seg Segment, ok bool) {
	if !valid {
		if se.state.Active {
			debugMsg("STROKE", fmt.Sprintf("Target lost at (%d,%d), stroke %d ended", se.state.Last.X, se.state.Last.Y, se.strokes))
		}
		se.state.Active = false
		return Segment{}, false
	}

	if !se.state.Active {
		// First point of a stroke: nothing to connect to yet
		se.state = TrackState{Active: true, Last: p}
		se.strokes++
		debugMsg("STROKE", fmt.Sprintf("Stroke %d started at (%d,%d)", se.strokes, p.X, p.Y))
		return Segment{}, false
	}

	seg = Segment{
		From:      se.state.Last,
		To:        p,
		Color:     se.brush.Color.RGBA(),
		Thickness: se.brush.Thickness(),
	}
	if se.surface != nil {
		se.surface.DrawLine(seg.From, seg.To, seg.Color, seg.Thickness)
	}
	se.state.Last = p

	return seg, true
}
