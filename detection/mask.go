package detection

import (
	"errors"
	"fmt"

	"arpaint/config"

	"gocv.io/x/gocv"
)

// medianKernel is the median blur aperture applied to the HSV image before thresholding.
// Thresholding raw HSV gives a visibly noisier mask.
const medianKernel = 5

// ErrEmptyFrame is returned when a frame has no pixels or is not 3-channel 8-bit
var ErrEmptyFrame = errors.New("empty or unsupported frame")

// MaskResult holds the binary mask and the color-reinforced preview for one frame.
// The caller owns both Mats and must Close the result.
type MaskResult struct {
	Mask      gocv.Mat
	Recolored gocv.Mat
}

// Close releases both Mats
func (r *MaskResult) Close() {
	r.Mask.Close()
	r.Recolored.Close()
}

// boundsScalars converts ColorBounds into the lower/upper scalars InRange expects
func boundsScalars(b config.ColorBounds) (gocv.Scalar, gocv.Scalar) {
	lower := gocv.NewScalar(float64(b.Lower[0]), float64(b.Lower[1]), float64(b.Lower[2]), 0)
	upper := gocv.NewScalar(float64(b.Upper[0]), float64(b.Upper[1]), float64(b.Upper[2]), 0)
	return lower, upper
}

// checkFrame verifies the frame is a usable BGR image
func checkFrame(frame gocv.Mat) error {
	if frame.Empty() {
		return ErrEmptyFrame
	}
	if frame.Type() != gocv.MatTypeCV8UC3 || frame.Channels() != 3 {
		return fmt.Errorf("%w: type %v with %d channels", ErrEmptyFrame, frame.Type(), frame.Channels())
	}
	return nil
}

// ComputeMask thresholds a BGR frame against bounds in HSV space.
//
// The mask is taken from a median-blurred copy of the HSV image. The recolored frame is the
// unblurred HSV image with its in-range region added on top twice (saturating), converted
// back to BGR, so the tracked color stands out in the preview. Tracking only ever consumes
// the mask.
func ComputeMask(frame gocv.Mat, bounds config.ColorBounds) (*MaskResult, error) {
	if err := checkFrame(frame); err != nil {
		return nil, err
	}

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(frame, &hsv, gocv.ColorBGRToHSV)

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.MedianBlur(hsv, &blurred, medianKernel)

	lower, upper := boundsScalars(bounds)
	mask := gocv.NewMat()
	gocv.InRangeWithScalar(blurred, lower, upper, &mask)

	// Extract the in-range region from the unblurred HSV image
	masked := gocv.NewMat()
	defer masked.Close()
	gocv.BitwiseAndWithMask(hsv, hsv, &masked, mask)

	// Reinforce it twice with unit weights
	work := gocv.NewMat()
	defer work.Close()
	gocv.Add(hsv, masked, &work)
	gocv.Add(work, masked, &work)

	recolored := gocv.NewMat()
	gocv.CvtColor(work, &recolored, gocv.ColorHSVToBGR)

	return &MaskResult{
		Mask:      mask,
		Recolored: recolored,
	}, nil
}

// HighlightMask blends the in-range part of frame over the frame itself at the given opacity:
// dst = (1-alpha)*frame + alpha*(frame AND mask). Pixels outside the mask are darkened.
func HighlightMask(frame, mask gocv.Mat, alpha float64, dst *gocv.Mat) {
	masked := gocv.NewMat()
	defer masked.Close()
	gocv.BitwiseAndWithMask(frame, frame, &masked, mask)

	gocv.AddWeighted(frame, 1-alpha, masked, alpha, 0, dst)
}
