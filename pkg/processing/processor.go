package processing

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/brand-assets/pkg/types"
)

// ErrUnknownFormat is returned when no registered decoder accepts the input
var ErrUnknownFormat = errors.New("image: unknown format")

// Processor handles image processing operations
type Processor struct{}

// NewProcessor creates a new image processor
func NewProcessor() *Processor {
	return &Processor{}
}

// LoadImage loads an image from a file path with WebP support
func (p *Processor) LoadImage(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	img, openErr := imaging.Open(path)
	if openErr == nil {
		return img, nil
	}
	if errors.Is(openErr, os.ErrNotExist) || errors.Is(openErr, os.ErrPermission) {
		return nil, openErr
	}

	// Fallback: explicit WebP decode
	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("%w for %s: %v", ErrUnknownFormat, path, openErr)
}

// ToNRGBA converts an image to a zero-origin, non-premultiplied 4-channel image
func (p *Processor) ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// ResizeToWidth scales img to the target width keeping its aspect ratio.
// The image is returned unchanged when it already has that width.
func (p *Processor) ResizeToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == width {
		return img
	}
	return imaging.Resize(img, width, TargetHeight(w, h, width), imaging.Lanczos)
}

// ResizeSquare scales img to size x size, stretching if needed
func (p *Processor) ResizeSquare(img image.Image, size int) image.Image {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}

// TargetHeight returns max(1, round(h * width / w))
func TargetHeight(w, h, width int) int {
	height := int(math.RoundToEven(float64(h) * (float64(width) / float64(w))))
	if height < 1 {
		height = 1
	}
	return height
}

// rgbaPNG makes the PNG encoder keep the alpha channel even when every
// pixel is opaque.
type rgbaPNG struct{ *image.NRGBA }

func (rgbaPNG) Opaque() bool { return false }

// SavePNG writes img as an 8-bit RGBA PNG file using the best compression
// level. It returns the number of bytes written.
func (p *Processor) SavePNG(img image.Image, path string) (int64, error) {
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = imaging.Clone(img)
	}
	if err := imaging.Save(rgbaPNG{nrgba}, path, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// CreateDebugOverlay creates an overlay image showing the detected region and crop box
func (p *Processor) CreateDebugOverlay(img image.Image, region *types.Box, cropBox types.Box) image.Image {
	nrgba := imaging.Clone(img)
	w := nrgba.Bounds().Dx()
	h := nrgba.Bounds().Dy()

	// Colors
	green := color.NRGBA{0, 255, 0, 255}  // saturated region
	gold := color.NRGBA{255, 204, 0, 255} // crop box
	blue := color.NRGBA{0, 170, 255, 255} // image center
	stroke := int(math.Max(2, 0.004*float64(min(w, h))))

	if region != nil {
		drawBox(nrgba, *region, green, stroke)
	}
	if !cropBox.Empty() {
		drawBox(nrgba, cropBox, gold, stroke)
	}

	ix, iy := w/2, h/2
	fillRect(nrgba, image.Rect(ix-6, iy, ix+6, iy+1), blue)
	fillRect(nrgba, image.Rect(ix, iy-6, ix+1, iy+6), blue)

	return nrgba
}

func drawBox(img *image.NRGBA, box types.Box, c color.NRGBA, stroke int) {
	r := box.Rect()
	if r.Empty() {
		r = image.Rect(box.Left, box.Top, box.Left+1, box.Top+1)
	}
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+stroke), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-stroke, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+stroke, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-stroke, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// fillRect paints r, clipped to the image bounds
func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):img.PixOffset(r.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
}
