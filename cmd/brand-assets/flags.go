package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/menta2k/brand-assets/internal/config"
)

// cliFlags holds every command line flag
type cliFlags struct {
	configPath string
	verbose    bool
	logFormat  string
	debug      bool

	logo          string
	mark          string
	outDir        string
	logoWidth     int
	markSize      int
	logoThreshold int
	logoPad       float64
	markThreshold int
	markPad       float64
}

// newFlagSet registers flags with defaults taken from config.Default
func newFlagSet(stderr io.Writer) (*flag.FlagSet, *cliFlags) {
	def := config.Default()
	f := &cliFlags{}

	fs := flag.NewFlagSet("brand-assets", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.StringVar(&f.logo, "logo", def.Logo.Source, "source logo image")
	fs.StringVar(&f.mark, "mark", def.Mark.Source, "source mark image")
	fs.StringVar(&f.outDir, "outdir", def.Output.Dir, "output directory")
	fs.IntVar(&f.logoWidth, "logo-width", def.Logo.Width, "target width for the resized logo")
	fs.IntVar(&f.markSize, "mark-size", def.Mark.Size, "target side length for the square mark")

	fs.IntVar(&f.logoThreshold, "logo-threshold", def.Logo.Threshold, "logo saturation threshold (0-255)")
	fs.Float64Var(&f.logoPad, "logo-pad", def.Logo.PaddingRatio, "logo padding ratio")
	fs.IntVar(&f.markThreshold, "mark-threshold", def.Mark.Threshold, "mark saturation threshold (0-255)")
	fs.Float64Var(&f.markPad, "mark-pad", def.Mark.PaddingRatio, "mark padding ratio")

	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.BoolVar(&f.debug, "debug", false, "write debug overlays and a JSON report")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.StringVar(&f.logFormat, "log-format", def.Log.Format, "log format: console|json")

	return fs, f
}

// apply copies explicitly set flags over cfg so config file values survive
// unless overridden on the command line
func (f *cliFlags) apply(fs *flag.FlagSet, cfg *config.Config) {
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}

	set("logo", func() { cfg.Logo.Source = f.logo })
	set("mark", func() { cfg.Mark.Source = f.mark })
	set("outdir", func() { cfg.Output.Dir = f.outDir })
	set("logo-width", func() { cfg.Logo.Width = f.logoWidth })
	set("mark-size", func() { cfg.Mark.Size = f.markSize })
	set("logo-threshold", func() { cfg.Logo.Threshold = f.logoThreshold })
	set("logo-pad", func() { cfg.Logo.PaddingRatio = f.logoPad })
	set("mark-threshold", func() { cfg.Mark.Threshold = f.markThreshold })
	set("mark-pad", func() { cfg.Mark.PaddingRatio = f.markPad })
	set("debug", func() { cfg.Output.Debug = f.debug })
	set("log-format", func() { cfg.Log.Format = f.logFormat })

	if f.verbose {
		cfg.Log.Level = "debug"
	}
}
