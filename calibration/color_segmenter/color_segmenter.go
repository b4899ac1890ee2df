package main

import (
	"context"
	"fmt"

	"arpaint/capture"
	"arpaint/config"
	"arpaint/detection"

	"gocv.io/x/gocv"
)

// maskOpacity is the weight of the in-range region in the preview
const maskOpacity = 0.8

// trackbarMax is the upper end of every slider
const trackbarMax = 255

// Trackbar names, in ColorBounds order
var (
	minNames = [3]string{"H min", "S min", "V min"}
	maxNames = [3]string{"H max", "S max", "V max"}
)

var debugMsgFunc func(component, message string)

func debugMsg(component, message string) {
	if debugMsgFunc != nil {
		debugMsgFunc(component, message)
	}
}

// Controls holds the six HSV bounds the user is adjusting
type Controls interface {
	Bounds() config.ColorBounds
	SetBounds(b config.ColorBounds)
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > trackbarMax {
		return trackbarMax
	}
	return v
}

// TrackbarControls are Controls backed by highgui sliders on the preview window
type TrackbarControls struct {
	lower [3]*gocv.Trackbar
	upper [3]*gocv.Trackbar
}

// NewTrackbarControls adds the six sliders to win. They start at zero.
func NewTrackbarControls(win *capture.Window) *TrackbarControls {
	tc := &TrackbarControls{}
	// Interleaved so the window lists H min, H max, S min, ...
	for i := 0; i < 3; i++ {
		tc.lower[i] = win.CreateTrackbar(minNames[i], trackbarMax)
		tc.upper[i] = win.CreateTrackbar(maxNames[i], trackbarMax)
	}
	return tc
}

// Bounds reads the current slider positions
func (tc *TrackbarControls) Bounds() config.ColorBounds {
	var b config.ColorBounds
	for i := 0; i < 3; i++ {
		b.Lower[i] = clampByte(tc.lower[i].GetPos())
		b.Upper[i] = clampByte(tc.upper[i].GetPos())
	}
	return b
}

// SetBounds moves the sliders
func (tc *TrackbarControls) SetBounds(b config.ColorBounds) {
	for i := 0; i < 3; i++ {
		tc.lower[i].SetPos(clampByte(b.Lower[i]))
		tc.upper[i].SetPos(clampByte(b.Upper[i]))
	}
}

// ColorSegmenter previews an HSV range over the live camera image and saves it on request
type ColorSegmenter struct {
	controls Controls
	store    *config.Store
	mirror   bool
	quit     bool
}

// NewColorSegmenter creates a segmenter. Call LoadBounds to seed the controls.
func NewColorSegmenter(controls Controls, store *config.Store, mirror bool) *ColorSegmenter {
	return &ColorSegmenter{
		controls: controls,
		store:    store,
		mirror:   mirror,
	}
}

// LoadBounds seeds the controls from the store, falling back to the full range
func (cs *ColorSegmenter) LoadBounds() {
	bounds, _ := cs.store.LoadOrDefault()
	cs.controls.SetBounds(bounds)
}

// Tick renders the preview for one frame: the in-range region at full strength over a
// dimmed copy of the frame. The caller closes the returned Mat.
func (cs *ColorSegmenter) Tick(frame gocv.Mat) (gocv.Mat, error) {
	working := frame
	if cs.mirror {
		flipped := gocv.NewMat()
		defer flipped.Close()
		gocv.Flip(frame, &flipped, 1)
		working = flipped
	}

	res, err := detection.ComputeMask(working, cs.controls.Bounds())
	if err != nil {
		return gocv.NewMat(), err
	}
	defer res.Close()

	out := gocv.NewMat()
	detection.HighlightMask(working, res.Mask, maskOpacity, &out)
	return out, nil
}

// HandleKey applies a key press
func (cs *ColorSegmenter) HandleKey(key int) {
	if key == capture.KeyNone {
		return
	}

	switch key & 0xFF {
	case 'q', capture.KeyEscape:
		cs.quit = true
	case 'm':
		cs.mirror = !cs.mirror
		debugMsg("KEY", fmt.Sprintf("Mirror %v", cs.mirror))
	case 'w':
		bounds := cs.controls.Bounds()
		if err := cs.store.Save(bounds); err != nil {
			debugMsg("CONFIG_ERROR", fmt.Sprintf("Failed to save limits: %v", err))
			return
		}
		debugMsg("CONFIG", fmt.Sprintf("Saved %s to %s", bounds, cs.store.Path()))
	case 'p':
		debugMsg("BOUNDS", cs.controls.Bounds().String())
	}
}

// Run shows the preview until quit, cancellation or the camera stops delivering frames.
// Closing never saves.
func (cs *ColorSegmenter) Run(ctx context.Context, source capture.Source, display capture.Display) error {
	frame := gocv.NewMat()
	defer frame.Close()

	for !cs.quit {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if ok := source.Read(&frame); !ok {
			debugMsg("CAPTURE", "No frame from camera, stopping")
			return nil
		}
		if frame.Empty() {
			continue
		}

		out, err := cs.Tick(frame)
		if err != nil {
			return err
		}
		display.Show(out)
		out.Close()

		cs.HandleKey(display.WaitKey(1))
	}
	return nil
}
