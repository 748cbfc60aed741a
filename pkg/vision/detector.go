package vision

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/menta2k/brand-assets/pkg/types"
)

// SaturationDetector finds the colorful region of an otherwise desaturated image
type SaturationDetector struct {
	config DetectionConfig
}

// DetectionConfig holds configuration for saturation detection
type DetectionConfig struct {
	// Threshold is the 0..255 saturation a pixel must exceed to be selected
	Threshold int
}

// New creates a new SaturationDetector with the given threshold
func New(threshold int) *SaturationDetector {
	return NewWithConfig(DetectionConfig{Threshold: threshold})
}

// NewWithConfig creates a new SaturationDetector with custom configuration
func NewWithConfig(config DetectionConfig) *SaturationDetector {
	return &SaturationDetector{config: config}
}

// Threshold returns the configured saturation threshold
func (d *SaturationDetector) Threshold() int {
	return d.config.Threshold
}

// Saturation returns the HSV saturation of an 8-bit RGB triple scaled to 0..255
func Saturation(r, g, b uint8) uint8 {
	maxc, minc := r, r
	if g > maxc {
		maxc = g
	}
	if b > maxc {
		maxc = b
	}
	if g < minc {
		minc = g
	}
	if b < minc {
		minc = b
	}
	if maxc == 0 || maxc == minc {
		return 0
	}
	return uint8(int(maxc-minc) * 255 / int(maxc))
}

// Mask returns a binary mask (255 selected, 0 otherwise) of pixels whose
// saturation exceeds the threshold. Alpha is ignored.
func (d *SaturationDetector) Mask(img image.Image) *image.Gray {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	mask := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		out := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x := 0; x < w; x++ {
			s := Saturation(row[x*4], row[x*4+1], row[x*4+2])
			if int(s) > d.config.Threshold {
				out[x] = 255
			}
		}
	}
	return mask
}

// MaskBounds returns the minimal box enclosing all non-zero mask pixels.
// ok is false when the mask is empty.
func MaskBounds(mask *image.Gray) (box types.Box, ok bool) {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	minX, minY, maxX, maxY := w, h, -1, -1

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, v := range row {
			if v == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < 0 {
		return types.Box{}, false
	}
	return types.Box{Left: minX, Top: minY, Right: maxX + 1, Bottom: maxY + 1}, true
}

// DetectRegion returns the bounding box of the saturated pixels of img,
// relative to the image origin
func (d *SaturationDetector) DetectRegion(img image.Image) (types.Box, bool) {
	return MaskBounds(d.Mask(img))
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}
