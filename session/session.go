package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arpaint/capture"
	"arpaint/detection"
	"arpaint/overlay"

	"github.com/google/uuid"
	"gocv.io/x/gocv"
)

// PollInterval is how long each tick waits for a key, in milliseconds
const PollInterval = 1

// ErrCaptureFailed is returned by Run when the camera stops delivering frames
var ErrCaptureFailed = errors.New("frame capture failed")

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

// Session drives the drawing loop: capture, detect, stroke, composite, show, dispatch keys
type Session struct {
	ID       string
	source   capture.Source
	display  capture.Display
	provider detection.Provider
	renderer *overlay.Renderer
	state    *State
	frames   int
}

// New creates a session. The session does not own source, display or provider; the caller
// closes them.
func New(source capture.Source, display capture.Display, provider detection.Provider, state *State) *Session {
	return &Session{
		ID:       uuid.New().String(),
		source:   source,
		display:  display,
		provider: provider,
		renderer: overlay.NewRenderer(),
		state:    state,
	}
}

// State exposes the mutable session state
func (s *Session) State() *State {
	return s.state
}

// Tick processes one camera frame and returns the image to display.
// The caller closes the returned Mat.
func (s *Session) Tick(frame gocv.Mat, now time.Time) (gocv.Mat, error) {
	working := frame
	if s.state.Mirror {
		flipped := gocv.NewMat()
		defer flipped.Close()
		gocv.Flip(frame, &flipped, 1)
		working = flipped
	}

	s.state.ensureCanvas(working)

	result, err := s.provider.Detect(working)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("detection failed: %w", err)
	}
	defer result.Close()

	s.state.Stroke.Update(result.Valid, result.Center)

	out := gocv.NewMat()
	if err := overlay.Composite(result.Recolored, s.state.Canvas, &out); err != nil {
		out.Close()
		return gocv.NewMat(), err
	}

	if !s.renderer.DrawNotice(&out, s.state.Notice, now) {
		s.state.Notice = nil
	}

	s.frames++
	return out, nil
}

// Run loops until a quit key, context cancellation or a capture failure.
// It returns nil on a normal quit.
func (s *Session) Run(ctx context.Context) error {
	debugMsg("SESSION", fmt.Sprintf("Session %s started (provider: %s)", s.ID, s.provider.GetProviderInfo().Backend))
	defer func() {
		debugMsg("SESSION", fmt.Sprintf("Session %s ended after %d frames", s.ID, s.frames))
	}()

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		select {
		case <-ctx.Done():
			debugMsg("SESSION", "Context cancelled, stopping")
			return nil
		default:
		}

		if ok := s.source.Read(&frame); !ok {
			return ErrCaptureFailed
		}
		if frame.Empty() {
			continue
		}

		out, err := s.Tick(frame, time.Now())
		if err != nil {
			return err
		}
		s.display.Show(out)
		out.Close()

		key := s.display.WaitKey(PollInterval)
		Dispatch(s.state, key, time.Now())
		if s.state.quit {
			debugMsg("SESSION", "Quit requested")
			return nil
		}
	}
}
