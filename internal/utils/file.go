package utils

import (
	"fmt"
	"math/bits"
	"os"
)

// EnsureDir creates a directory and its parents if it doesn't exist
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", dir)
	}
	return nil
}

// PathExists checks if a file or directory exists
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FormatFileSize formats file size in human-readable format
func FormatFileSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	// each unit step is 10 bits
	exp := (bits.Len64(uint64(size)) - 1) / 10
	value := float64(size) / float64(uint64(1)<<(10*exp))
	return fmt.Sprintf("%.1f %cB", value, "KMGTPE"[exp-1])
}
