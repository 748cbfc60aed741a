package cropper

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/menta2k/brand-assets/pkg/types"
	"github.com/menta2k/brand-assets/pkg/vision"
)

// SaturationCropper crops an image to its colorful region plus padding
type SaturationCropper struct {
	detector *vision.SaturationDetector
	config   CropConfig
}

// CropConfig holds configuration for saturation cropping
type CropConfig struct {
	// Threshold is the 0..255 saturation a pixel must exceed to count as colorful
	Threshold int
	// PaddingRatio is the fraction of the larger region side added on every side
	PaddingRatio float64
	// ForceSquare grows the padded box into a square
	ForceSquare bool
}

// New creates a new SaturationCropper
func New(config CropConfig) *SaturationCropper {
	return &SaturationCropper{
		detector: vision.New(config.Threshold),
		config:   config,
	}
}

// Config returns the cropper configuration
func (c *SaturationCropper) Config() CropConfig {
	return c.config
}

// CropResult contains the result of a cropping operation
type CropResult struct {
	Image image.Image
	// Region is the saturated bounding box, nil when nothing was selected
	Region *types.Box
	// Box is the final crop box in source coordinates
	Box types.Box
}

// Cropped reports whether the image was actually cropped
func (r CropResult) Cropped() bool {
	return r.Region != nil
}

// Crop autocrops img around its saturated region. When no pixel exceeds the
// threshold the original image is returned unchanged.
func (c *SaturationCropper) Crop(img image.Image) CropResult {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	full := types.Box{Right: w, Bottom: h}

	region, ok := c.detector.DetectRegion(img)
	if !ok {
		return CropResult{Image: img, Box: full}
	}

	pad := Padding(region, c.config.PaddingRatio)
	box := PadBox(region, pad, w, h)
	if c.config.ForceSquare {
		box = SquareBox(box, w, h)
	}

	rect := box.Rect().Add(bounds.Min)
	return CropResult{
		Image:  imaging.Crop(img, rect),
		Region: &region,
		Box:    box,
	}
}

// Padding returns max(1, round(max(w, h) * ratio)) for the given region
func Padding(region types.Box, ratio float64) int {
	side := region.Dx()
	if region.Dy() > side {
		side = region.Dy()
	}
	pad := int(math.RoundToEven(float64(side) * ratio))
	if pad < 1 {
		pad = 1
	}
	return pad
}

// PadBox grows box by pad on every side, clamped to a w x h image
func PadBox(box types.Box, pad, w, h int) types.Box {
	return types.Box{
		Left:   clamp(box.Left-pad, 0, w),
		Top:    clamp(box.Top-pad, 0, h),
		Right:  clamp(box.Right+pad, 0, w),
		Bottom: clamp(box.Bottom+pad, 0, h),
	}
}

// SquareBox grows box into a square centered on it, shifted to stay inside
// a w x h image. The side never exceeds the shorter image dimension.
func SquareBox(box types.Box, w, h int) types.Box {
	side := max(box.Dx(), box.Dy())
	// Capped so the square stays a sub-region of the image
	side = min(side, w, h)

	cx := (box.Left + box.Right) / 2
	cy := (box.Top + box.Bottom) / 2
	half := side / 2

	left := clamp(cx-half, 0, w-side)
	top := clamp(cy-half, 0, h-side)
	return types.Box{Left: left, Top: top, Right: left + side, Bottom: top + side}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
