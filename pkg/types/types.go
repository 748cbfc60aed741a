package types

import "image"

// Box represents a pixel bounding box. Right and Bottom are exclusive,
// matching image.Rectangle.
type Box struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Rect returns the box as an image.Rectangle
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// Dx returns the box width
func (b Box) Dx() int {
	return b.Right - b.Left
}

// Dy returns the box height
func (b Box) Dy() int {
	return b.Bottom - b.Top
}

// Empty reports whether the box contains no pixels
func (b Box) Empty() bool {
	return b.Right <= b.Left || b.Bottom <= b.Top
}

// Size is a width/height pair in pixels
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SizeOf returns the dimensions of an image
func SizeOf(img image.Image) Size {
	b := img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// AssetResult describes one generated asset
type AssetResult struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	Output     string `json:"output"`
	SourceSize Size   `json:"source_size"`
	Region     *Box   `json:"region,omitempty"`
	Crop       Box    `json:"crop"`
	OutputSize Size   `json:"output_size"`
	Bytes      int64  `json:"bytes"`
}

// Report is the debug summary written next to the assets
type Report struct {
	Assets []AssetResult `json:"assets"`
}
