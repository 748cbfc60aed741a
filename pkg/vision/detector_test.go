package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/brand-assets/pkg/types"
)

// createTestImage creates a gray canvas with a saturated red square
func createTestImage(width, height int, square image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (image.Point{x, y}).In(square) {
				img.Set(x, y, color.NRGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.NRGBA{128, 128, 128, 255})
			}
		}
	}

	return img
}

func TestNew(t *testing.T) {
	detector := New(40)
	require.NotNil(t, detector)
	assert.Equal(t, 40, detector.Threshold())
}

func TestSaturation(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 0},
		{"gray", 128, 128, 128, 0},
		{"pure red", 255, 0, 0, 255},
		{"pure blue", 0, 0, 255, 255},
		{"half red", 255, 128, 128, 127},
		{"dark gold", 200, 150, 50, 191},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Saturation(tt.r, tt.g, tt.b))
		})
	}
}

func TestMask(t *testing.T) {
	img := createTestImage(20, 10, image.Rect(5, 2, 8, 4))
	mask := New(55).Mask(img)

	require.Equal(t, image.Rect(0, 0, 20, 10), mask.Bounds())
	assert.Equal(t, uint8(255), mask.GrayAt(5, 2).Y)
	assert.Equal(t, uint8(255), mask.GrayAt(7, 3).Y)
	assert.Equal(t, uint8(0), mask.GrayAt(8, 3).Y)
	assert.Equal(t, uint8(0), mask.GrayAt(0, 0).Y)
}

func TestMaskThresholdIsExclusive(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{255, 128, 128, 255}) // saturation 127

	assert.Equal(t, uint8(255), New(126).Mask(img).GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), New(127).Mask(img).GrayAt(0, 0).Y)
}

func TestMaskIgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{0, 200, 0, 0})
	img.Set(1, 0, color.NRGBA{90, 90, 90, 255})

	mask := New(40).Mask(img)
	assert.Equal(t, uint8(255), mask.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), mask.GrayAt(1, 0).Y)
}

func TestMaskNonZeroOrigin(t *testing.T) {
	full := createTestImage(30, 30, image.Rect(12, 12, 14, 14))
	sub := full.SubImage(image.Rect(10, 10, 20, 20))

	box, ok := New(40).DetectRegion(sub)
	require.True(t, ok)
	assert.Equal(t, types.Box{Left: 2, Top: 2, Right: 4, Bottom: 4}, box)
}

func TestMaskBounds(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	_, ok := MaskBounds(mask)
	assert.False(t, ok, "empty mask has no bounds")

	mask.SetGray(3, 7, color.Gray{Y: 255})
	mask.SetGray(6, 2, color.Gray{Y: 255})

	box, ok := MaskBounds(mask)
	require.True(t, ok)
	assert.Equal(t, types.Box{Left: 3, Top: 2, Right: 7, Bottom: 8}, box)
}

func TestDetectRegion(t *testing.T) {
	img := createTestImage(200, 200, image.Rect(80, 80, 120, 120))

	box, ok := New(55).DetectRegion(img)
	require.True(t, ok)
	assert.Equal(t, types.Box{Left: 80, Top: 80, Right: 120, Bottom: 120}, box)
}

func TestDetectRegionGray(t *testing.T) {
	img := createTestImage(50, 50, image.Rectangle{})

	_, ok := New(0).DetectRegion(img)
	assert.False(t, ok)
}

func BenchmarkDetectRegion(b *testing.B) {
	detector := New(40)
	img := createTestImage(1920, 1080, image.Rect(800, 400, 1100, 700))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector.DetectRegion(img)
	}
}
