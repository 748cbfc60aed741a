package main

import (
	"errors"
	"os"

	"github.com/menta2k/brand-assets/internal/config"
	"github.com/menta2k/brand-assets/pkg/assets"
)

// Exit codes for the brand-assets CLI.
const (
	ExitSuccess = 0 // Assets written
	ExitGeneral = 1 // Decode/encode or other unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // Missing source, unwritable output directory
)

// exitCodeFor returns the appropriate exit code for an error.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, assets.ErrMissingSource) ||
		errors.Is(err, assets.ErrOutputDir) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) {
		return ExitUsage
	}

	return ExitGeneral
}
