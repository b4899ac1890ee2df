package detection

import (
	"fmt"

	"arpaint/config"

	"gocv.io/x/gocv"
)

// ColorProvider detects a single target by HSV color range
type ColorProvider struct {
	bounds config.ColorBounds
}

// NewColorProvider creates a provider thresholding against bounds
func NewColorProvider(bounds config.ColorBounds) *ColorProvider {
	debugMsg("PROVIDER", fmt.Sprintf("HSV provider initialized with %s", bounds))
	return &ColorProvider{bounds: bounds}
}

// Detect runs the mask engine then the blob tracker on one frame
func (cp *ColorProvider) Detect(frame gocv.Mat) (*DetectionResult, error) {
	mr, err := ComputeMask(frame, cp.bounds)
	if err != nil {
		return nil, fmt.Errorf("mask computation failed: %w", err)
	}

	blob := DetectBlob(mr.Mask)
	if blob.Valid {
		debugMsgVerbose("DETECT", fmt.Sprintf("Target at (%d,%d), %d px", blob.Center.X, blob.Center.Y, blob.Pixels))
	}

	return &DetectionResult{
		Mask:      mr.Mask,
		Recolored: mr.Recolored,
		Valid:     blob.Valid,
		Center:    blob.Center,
		Pixels:    blob.Pixels,
	}, nil
}

// Close releases resources used by the provider
func (cp *ColorProvider) Close() error {
	return nil
}

// GetProviderInfo returns information about the color provider
func (cp *ColorProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{
		Type:    "HSV",
		Backend: "OpenCV CPU",
		MinArea: MinBlobPixels,
	}
}
