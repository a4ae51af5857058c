package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// FileExists checks if a regular file exists at path
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// GetOutputPath generates an output path based on input path and options.
// With several inputs the output option, when set, must name a directory.
func GetOutputPath(inputPath, outputOption string, multiple bool) (string, error) {
	name := markdownName(inputPath)
	if outputOption == "" {
		return name, nil
	}

	// Check if outputOption is a directory
	info, err := os.Stat(outputOption)
	if err == nil && info.IsDir() {
		return filepath.Join(outputOption, name), nil
	}
	if strings.HasSuffix(outputOption, string(os.PathSeparator)) {
		return filepath.Join(outputOption, name), nil
	}

	if multiple {
		return "", fmt.Errorf("output %s must be a directory when converting several files", outputOption)
	}

	// Output is a specific file path
	return outputOption, nil
}

func markdownName(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".md"
}
