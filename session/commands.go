package session

import (
	"fmt"
	"time"

	"arpaint/capture"
	"arpaint/overlay"
	"arpaint/tracking"
)

// Command is a state transition triggered by a key press
type Command func(s *State, now time.Time)

// Commands maps key codes to their transitions. Keys not in the table are ignored.
var Commands = map[int]Command{
	'q':               quit,
	capture.KeyEscape: quit,
	'm':               toggleMirror,
	'r':               selectColor(tracking.BrushRed),
	'g':               selectColor(tracking.BrushGreen),
	'b':               selectColor(tracking.BrushBlue),
	'+':               growBrush,
	'-':               shrinkBrush,
	'c':               clearCanvas,
	'w':               saveSnapshot,
}

// Dispatch applies the command bound to key, if any, and reports whether one ran
func Dispatch(s *State, key int, now time.Time) bool {
	if key == capture.KeyNone {
		return false
	}
	cmd, ok := Commands[key&0xFF]
	if !ok {
		return false
	}
	cmd(s, now)
	return true
}

func quit(s *State, _ time.Time) {
	s.quit = true
}

func toggleMirror(s *State, _ time.Time) {
	s.Mirror = !s.Mirror
	debugMsg("KEY", fmt.Sprintf("Mirror %v", s.Mirror))
}

func selectColor(c tracking.BrushColor) Command {
	return func(s *State, _ time.Time) {
		s.Stroke.SetBrush(s.Stroke.Brush().WithColor(c))
		debugMsg("KEY", fmt.Sprintf("Brush color %s", c))
	}
}

func growBrush(s *State, _ time.Time) {
	s.Stroke.SetBrush(s.Stroke.Brush().Grown())
	debugMsg("KEY", fmt.Sprintf("Brush radius %d", s.Stroke.Brush().Radius))
}

func shrinkBrush(s *State, _ time.Time) {
	s.Stroke.SetBrush(s.Stroke.Brush().Shrunk())
	debugMsg("KEY", fmt.Sprintf("Brush radius %d", s.Stroke.Brush().Radius))
}

func clearCanvas(s *State, _ time.Time) {
	if s.Canvas != nil {
		s.Canvas.Clear()
	}
	debugMsg("KEY", "Canvas cleared")
}

// saveSnapshot writes the canvas and arms the notice. While a notice is on screen further
// requests are ignored, so saves never overlap.
func saveSnapshot(s *State, now time.Time) {
	if s.Notice.Active(now) {
		debugMsg("SNAPSHOT", "Save ignored, previous notice still active")
		return
	}
	if s.Canvas == nil || s.Snapshots == nil {
		debugMsg("SNAPSHOT", "Nothing to save yet")
		return
	}

	if s.Canvas.Empty() {
		debugMsg("SNAPSHOT", "Canvas is empty, saving a blank drawing")
	}
	path, err := s.Snapshots.Save(s.Canvas.Mat(), now)
	if err != nil {
		debugMsg("SNAPSHOT_ERROR", fmt.Sprintf("Failed to save drawing: %v", err))
		s.Notice = overlay.NewNotice("Save failed!", now)
		return
	}
	s.Notice = overlay.NewNotice(fmt.Sprintf("Saved %s", path), now)
}
