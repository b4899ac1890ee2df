package detection

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"
)

// MinBlobPixels is the area gate: masks with this many foreground pixels or fewer are
// treated as noise or an absent target.
const MinBlobPixels = 1000

// Blob is the single tracked target extracted from a mask
type Blob struct {
	Valid  bool
	Center image.Point
	Pixels int // Non-zero mask pixels
}

// DetectBlob extracts the centroid of all foreground pixels in mask.
// Exactly one centroid is reported per frame; there is no multi-blob support.
func DetectBlob(mask gocv.Mat) Blob {
	if mask.Empty() {
		return Blob{}
	}

	pixels := gocv.CountNonZero(mask)
	if pixels <= MinBlobPixels {
		return Blob{Pixels: pixels}
	}

	m := gocv.Moments(mask, true)
	m00 := m["m00"]
	if m00 == 0 {
		// Degenerate despite the area test
		debugMsgVerbose("BLOB", fmt.Sprintf("Zero m00 with %d non-zero pixels, treating as invalid", pixels))
		return Blob{Pixels: pixels}
	}

	return Blob{
		Valid: true,
		Center: image.Point{
			X: int(math.Round(m["m10"] / m00)),
			Y: int(math.Round(m["m01"] / m00)),
		},
		Pixels: pixels,
	}
}
