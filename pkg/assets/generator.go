// Package assets turns the two source brand images into web-ready assets:
// a downscaled logo and a small square mark.
//
// Each source is loaded, normalized to NRGBA, cropped around its saturated
// (colorful) region with padding and resized. Everything runs once,
// sequentially, and the first error aborts the run.
package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/menta2k/brand-assets/internal/config"
	"github.com/menta2k/brand-assets/internal/utils"
	"github.com/menta2k/brand-assets/pkg/cropper"
	"github.com/menta2k/brand-assets/pkg/processing"
	"github.com/menta2k/brand-assets/pkg/types"
)

// ReportName is the debug report written next to the assets
const ReportName = "asset-report.json"

// Sentinel errors returned by Generate
var (
	ErrMissingSource = errors.New("missing source")
	ErrOutputDir     = errors.New("cannot create output directory")
)

// Generator produces the brand assets described by a config
type Generator struct {
	processor *processing.Processor
	log       *zap.Logger
}

// NewGenerator creates a new Generator. A nil logger disables logging.
func NewGenerator(log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		processor: processing.NewProcessor(),
		log:       log,
	}
}

// asset is one source image and the steps that turn it into an output file
type asset struct {
	name   string
	source string
	output string
	crop   cropper.CropConfig
	resize func(image.Image) image.Image
}

// Generate runs the whole pipeline and returns one result per written asset
func (g *Generator) Generate(cfg *config.Config) ([]types.AssetResult, error) {
	outDir := cfg.Output.Dir
	if err := utils.EnsureDir(outDir); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOutputDir, outDir, err)
	}

	if !utils.PathExists(cfg.Logo.Source) {
		return nil, fmt.Errorf("%w: logo source %s", ErrMissingSource, cfg.Logo.Source)
	}
	if !utils.PathExists(cfg.Mark.Source) {
		return nil, fmt.Errorf("%w: mark source %s", ErrMissingSource, cfg.Mark.Source)
	}

	plan := []asset{
		{
			name:   "logo",
			source: cfg.Logo.Source,
			output: filepath.Join(outDir, cfg.Output.LogoName),
			crop: cropper.CropConfig{
				Threshold:    cfg.Logo.Threshold,
				PaddingRatio: cfg.Logo.PaddingRatio,
				ForceSquare:  cfg.Logo.ForceSquare,
			},
			resize: func(img image.Image) image.Image {
				return g.processor.ResizeToWidth(img, cfg.Logo.Width)
			},
		},
		{
			name:   "mark",
			source: cfg.Mark.Source,
			output: filepath.Join(outDir, cfg.Output.MarkName),
			crop: cropper.CropConfig{
				Threshold:    cfg.Mark.Threshold,
				PaddingRatio: cfg.Mark.PaddingRatio,
				ForceSquare:  cfg.Mark.ForceSquare,
			},
			resize: func(img image.Image) image.Image {
				return g.processor.ResizeSquare(img, cfg.Mark.Size)
			},
		},
	}

	results := make([]types.AssetResult, 0, len(plan))
	for _, a := range plan {
		res, err := g.build(a, cfg.Output.Debug, outDir)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	if cfg.Output.Debug {
		path := filepath.Join(outDir, ReportName)
		if err := writeReport(path, results); err != nil {
			return results, err
		}
		g.log.Debug("wrote report", zap.String("path", path))
	}

	return results, nil
}

func (g *Generator) build(a asset, debug bool, outDir string) (types.AssetResult, error) {
	log := g.log.With(zap.String("asset", a.name))

	src, err := g.processor.LoadImage(a.source)
	if err != nil {
		return types.AssetResult{}, fmt.Errorf("load %s source %s: %w", a.name, a.source, err)
	}
	img := g.processor.ToNRGBA(src)
	srcSize := types.SizeOf(img)

	crop := cropper.New(a.crop).Crop(img)
	if crop.Cropped() {
		log.Debug("cropped to saturated region",
			zap.Any("region", crop.Region),
			zap.Any("crop", crop.Box),
			zap.Int("threshold", a.crop.Threshold),
			zap.Float64("padding_ratio", a.crop.PaddingRatio),
		)
	} else {
		log.Warn("no pixel above saturation threshold, keeping full image",
			zap.Int("threshold", a.crop.Threshold),
		)
	}

	out := a.resize(crop.Image)
	n, err := g.processor.SavePNG(out, a.output)
	if err != nil {
		return types.AssetResult{}, fmt.Errorf("save %s to %s: %w", a.name, a.output, err)
	}

	outSize := types.SizeOf(out)
	log.Info("wrote asset",
		zap.String("path", a.output),
		zap.String("size", fmt.Sprintf("%dx%d", outSize.Width, outSize.Height)),
		zap.String("bytes", utils.FormatFileSize(n)),
	)

	if debug {
		overlay := g.processor.CreateDebugOverlay(img, crop.Region, crop.Box)
		dbgPath := filepath.Join(outDir, debugName(a.output))
		if _, err := g.processor.SavePNG(overlay, dbgPath); err != nil {
			log.Warn("debug overlay save failed", zap.String("path", dbgPath), zap.Error(err))
		} else {
			log.Debug("wrote debug overlay", zap.String("path", dbgPath))
		}
	}

	return types.AssetResult{
		Name:       a.name,
		Source:     a.source,
		Output:     a.output,
		SourceSize: srcSize,
		Region:     crop.Region,
		Crop:       crop.Box,
		OutputSize: outSize,
		Bytes:      n,
	}, nil
}

func debugName(output string) string {
	base := filepath.Base(output)
	return "debug-" + strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

func writeReport(path string, results []types.AssetResult) error {
	js, err := json.MarshalIndent(types.Report{Assets: results}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, js, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
