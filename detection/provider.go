package detection

import (
	"image"

	"gocv.io/x/gocv"
)

// DetectionResult represents the output of one detection pass.
// Mask and Recolored are owned by the result; call Close when done.
type DetectionResult struct {
	Mask      gocv.Mat
	Recolored gocv.Mat
	Valid     bool
	Center    image.Point
	Pixels    int
}

// Close releases the Mats held by the result
func (r *DetectionResult) Close() {
	r.Mask.Close()
	r.Recolored.Close()
}

// Global debug functions for detection package
var (
	debugMsgFunc        func(component, message string)
	debugMsgVerboseFunc func(component, message string)
)

// SetDebugFunction allows main package to provide debug function
func SetDebugFunction(fn func(component, message string)) {
	debugMsgFunc = fn
}

// SetDebugVerboseFunction allows main package to provide the verbose debug function
func SetDebugVerboseFunction(fn func(component, message string)) {
	debugMsgVerboseFunc = fn
}

// debugMsg is a wrapper that handles nil checks
func debugMsg(component, message string) {
	if debugMsgFunc != nil {
		debugMsgFunc(component, message)
	}
}

func debugMsgVerbose(component, message string) {
	if debugMsgVerboseFunc != nil {
		debugMsgVerboseFunc(component, message)
	}
}

// Provider turns a frame into a detection
type Provider interface {
	Detect(frame gocv.Mat) (*DetectionResult, error)
	Close() error
	GetProviderInfo() ProviderInfo
}

// ProviderInfo contains information about the detection provider
type ProviderInfo struct {
	Type    string // "HSV"
	Backend string // Backend description
	MinArea int    // Area gate applied to masks
}
