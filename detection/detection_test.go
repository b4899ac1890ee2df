package detection

import (
	"image"
	"image/color"
	"testing"

	"arpaint/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

const (
	testRows = 120
	testCols = 160
)

func grayFrame(level float64) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(level, level, level, 0), testRows, testCols, gocv.MatTypeCV8UC3)
}

func blankMask(rows, cols int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC1)
}

func TestComputeMaskGrayInsideRange(t *testing.T) {
	frame := grayFrame(128)
	defer frame.Close()

	// Mid gray is H=0 S=0 V=128
	cases := []config.ColorBounds{
		config.DefaultBounds(),
		{Lower: [3]int{0, 0, 100}, Upper: [3]int{180, 50, 150}},
		{Lower: [3]int{0, 0, 128}, Upper: [3]int{0, 0, 128}},
	}

	for _, b := range cases {
		t.Run(b.String(), func(t *testing.T) {
			res, err := ComputeMask(frame, b)
			require.NoError(t, err)
			defer res.Close()

			assert.Equal(t, testRows, res.Mask.Rows())
			assert.Equal(t, testCols, res.Mask.Cols())
			assert.Equal(t, testRows*testCols, gocv.CountNonZero(res.Mask))
		})
	}
}

func TestComputeMaskGrayOutsideRange(t *testing.T) {
	frame := grayFrame(128)
	defer frame.Close()

	cases := []config.ColorBounds{
		{Lower: [3]int{0, 0, 200}, Upper: [3]int{255, 255, 255}},
		{Lower: [3]int{10, 0, 0}, Upper: [3]int{255, 255, 255}},
		{Lower: [3]int{0, 100, 0}, Upper: [3]int{255, 255, 255}},
		// inverted bounds match nothing
		{Lower: [3]int{255, 255, 255}, Upper: [3]int{0, 0, 0}},
	}

	for _, b := range cases {
		t.Run(b.String(), func(t *testing.T) {
			res, err := ComputeMask(frame, b)
			require.NoError(t, err)
			defer res.Close()

			assert.Equal(t, 0, gocv.CountNonZero(res.Mask))
		})
	}
}

func TestComputeMaskRecolored(t *testing.T) {
	frame := grayFrame(100)
	defer frame.Close()

	t.Run("outside range is unchanged", func(t *testing.T) {
		res, err := ComputeMask(frame, config.ColorBounds{Lower: [3]int{0, 0, 200}, Upper: [3]int{255, 255, 255}})
		require.NoError(t, err)
		defer res.Close()

		assert.Equal(t, frame.ToBytes(), res.Recolored.ToBytes())
	})

	t.Run("inside range is reinforced", func(t *testing.T) {
		res, err := ComputeMask(frame, config.DefaultBounds())
		require.NoError(t, err)
		defer res.Close()

		// V=100 tripled saturates at 255
		v := res.Recolored.GetVecbAt(testRows/2, testCols/2)
		assert.Equal(t, gocv.Vecb{255, 255, 255}, v)
	})
}

func TestComputeMaskRejectsEmptyFrame(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	_, err := ComputeMask(empty, config.DefaultBounds())
	assert.ErrorIs(t, err, ErrEmptyFrame)

	gray := blankMask(10, 10)
	defer gray.Close()
	_, err = ComputeMask(gray, config.DefaultBounds())
	assert.ErrorIs(t, err, ErrEmptyFrame)
}

func TestDetectBlobAreaGate(t *testing.T) {
	cases := map[string]func(m *gocv.Mat){
		"empty": func(m *gocv.Mat) {},
		"single pixel": func(m *gocv.Mat) {
			m.SetUCharAt(10, 10, 255)
		},
		"solid block of 1000": func(m *gocv.Mat) {
			// 20 x 50
			for r := 0; r < 20; r++ {
				for c := 0; c < 50; c++ {
					m.SetUCharAt(r+30, c+40, 255)
				}
			}
		},
		"scattered 1000": func(m *gocv.Mat) {
			n := 0
			for r := 0; r < testRows && n < MinBlobPixels; r += 2 {
				for c := 0; c < testCols && n < MinBlobPixels; c += 3 {
					m.SetUCharAt(r, c, 255)
					n++
				}
			}
		},
		"two corners": func(m *gocv.Mat) {
			for r := 0; r < 10; r++ {
				for c := 0; c < 10; c++ {
					m.SetUCharAt(r, c, 255)
					m.SetUCharAt(testRows-1-r, testCols-1-c, 255)
				}
			}
		},
	}

	for name, fill := range cases {
		t.Run(name, func(t *testing.T) {
			mask := blankMask(testRows, testCols)
			defer mask.Close()
			fill(&mask)

			require.LessOrEqual(t, gocv.CountNonZero(mask), MinBlobPixels)
			blob := DetectBlob(mask)
			assert.False(t, blob.Valid)
			assert.Equal(t, image.Point{}, blob.Center)
		})
	}
}

func TestDetectBlobDiskCentroid(t *testing.T) {
	centers := []image.Point{{80, 60}, {40, 35}, {117, 83}}

	for _, c := range centers {
		mask := blankMask(testRows, testCols)
		gocv.Circle(&mask, c, 25, color.RGBA{255, 255, 255, 0}, -1)

		require.Greater(t, gocv.CountNonZero(mask), MinBlobPixels)
		blob := DetectBlob(mask)
		mask.Close()

		assert.True(t, blob.Valid)
		assert.InDelta(t, c.X, blob.Center.X, 1)
		assert.InDelta(t, c.Y, blob.Center.Y, 1)
	}
}

func TestDetectBlobEmptyMat(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	assert.False(t, DetectBlob(empty).Valid)
}

func TestColorProviderDetect(t *testing.T) {
	frame := grayFrame(0)
	defer frame.Close()
	// Pure red disk: BGR (0,0,255) is H=0 S=255 V=255
	gocv.Circle(&frame, image.Pt(70, 50), 22, color.RGBA{255, 0, 0, 0}, -1)

	red := config.ColorBounds{Lower: [3]int{0, 200, 200}, Upper: [3]int{10, 255, 255}}
	p := NewColorProvider(red)
	defer p.Close()

	res, err := p.Detect(frame)
	require.NoError(t, err)
	defer res.Close()

	assert.True(t, res.Valid)
	assert.InDelta(t, 70, res.Center.X, 1)
	assert.InDelta(t, 50, res.Center.Y, 1)
	assert.Equal(t, ProviderInfo{Type: "HSV", Backend: "OpenCV CPU", MinArea: MinBlobPixels}, p.GetProviderInfo())

	blue := NewColorProvider(config.ColorBounds{Lower: [3]int{100, 200, 200}, Upper: [3]int{130, 255, 255}})
	defer blue.Close()
	res2, err := blue.Detect(frame)
	require.NoError(t, err)
	defer res2.Close()
	assert.False(t, res2.Valid)
}

func TestHighlightMask(t *testing.T) {
	frame := grayFrame(200)
	defer frame.Close()

	mask := blankMask(testRows, testCols)
	defer mask.Close()
	mask.SetUCharAt(0, 0, 255)

	dst := gocv.NewMat()
	defer dst.Close()
	HighlightMask(frame, mask, 0.8, &dst)

	// inside the mask: 0.2*200 + 0.8*200
	assert.Equal(t, gocv.Vecb{200, 200, 200}, dst.GetVecbAt(0, 0))
	// outside: 0.2*200
	assert.Equal(t, gocv.Vecb{40, 40, 40}, dst.GetVecbAt(5, 5))
}
