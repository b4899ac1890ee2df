package session

import (
	"time"

	"arpaint/overlay"
	"arpaint/tracking"

	"gocv.io/x/gocv"
)

// Saver persists a canvas image and returns where it went
type Saver interface {
	Save(img gocv.Mat, now time.Time) (string, error)
}

// State is everything the key commands may change. It is read and written only by the tick
// loop, so it needs no locking.
type State struct {
	Stroke    *tracking.StrokeEngine
	Canvas    *overlay.Canvas // nil until the first frame fixes the size
	Mirror    bool
	Notice    *overlay.Notice
	Snapshots Saver
	quit      bool
}

// NewState creates the initial state: idle stroke engine, default brush, no canvas yet
func NewState(mirror bool, snapshots Saver) *State {
	return &State{
		Stroke:    tracking.NewStrokeEngine(nil),
		Mirror:    mirror,
		Snapshots: snapshots,
	}
}

// Quit reports whether a quit command was received
func (s *State) Quit() bool {
	return s.quit
}

// ensureCanvas allocates the canvas to match frame, replacing it if the frame size changed
func (s *State) ensureCanvas(frame gocv.Mat) {
	if s.Canvas != nil && s.Canvas.Fits(frame) {
		return
	}
	if s.Canvas != nil {
		debugMsg("CANVAS", "Frame size changed, canvas reallocated")
		s.Canvas.Close()
	}
	s.Canvas = overlay.NewCanvas(frame.Rows(), frame.Cols())
	s.Stroke.SetSurface(s.Canvas)
	s.Stroke.Reset()
}

// Close releases the canvas
func (s *State) Close() {
	if s.Canvas != nil {
		s.Canvas.Close()
		s.Canvas = nil
	}
}
