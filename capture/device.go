package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Key codes returned by WaitKey
const (
	KeyNone   = -1
	KeyEscape = 27
)

// Source delivers camera frames
type Source interface {
	// Read fills frame with the next image. It returns false when no frame could be obtained.
	Read(frame *gocv.Mat) bool
	Close() error
}

// Display shows frames and reports key presses
type Display interface {
	Show(img gocv.Mat)
	// WaitKey waits up to delay milliseconds for a key and returns its code, or KeyNone
	WaitKey(delay int) int
	Close() error
}

// Camera is a Source backed by an OpenCV video capture device
type Camera struct {
	webcam *gocv.VideoCapture
	id     int
}

// OpenCamera opens the capture device with the given index
func OpenCamera(id int) (*Camera, error) {
	webcam, err := gocv.VideoCaptureDevice(id)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture device %d: %w", id, err)
	}
	if !webcam.IsOpened() {
		webcam.Close()
		return nil, fmt.Errorf("capture device %d is not available", id)
	}
	return &Camera{webcam: webcam, id: id}, nil
}

// Read grabs one frame
func (c *Camera) Read(frame *gocv.Mat) bool {
	return c.webcam.Read(frame)
}

// Close releases the device
func (c *Camera) Close() error {
	return c.webcam.Close()
}

// Window is a Display backed by an OpenCV highgui window
type Window struct {
	win *gocv.Window
}

// OpenWindow creates a named window, optionally fullscreen
func OpenWindow(name string, fullscreen bool) *Window {
	win := gocv.NewWindow(name)
	if fullscreen {
		win.SetWindowProperty(gocv.WindowPropertyFullscreen, gocv.WindowFullscreen)
	}
	return &Window{win: win}
}

// Show displays img
func (w *Window) Show(img gocv.Mat) {
	w.win.IMShow(img)
}

// WaitKey polls the keyboard
func (w *Window) WaitKey(delay int) int {
	return w.win.WaitKey(delay)
}

// CreateTrackbar adds a slider to the window
func (w *Window) CreateTrackbar(name string, max int) *gocv.Trackbar {
	return w.win.CreateTrackbar(name, max)
}

// Close destroys the window
func (w *Window) Close() error {
	return w.win.Close()
}
