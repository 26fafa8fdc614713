// Package resume converts resume files of several formats into a single
// plain-text representation suitable for prompting a language model.
package resume

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions outside the
// supported set.
var ErrUnsupportedFormat = errors.New("unsupported resume format")

// SupportedExtensions lists the recognized resume file extensions,
// matched case-insensitively.
var SupportedExtensions = []string{".yaml", ".yml", ".json", ".pdf", ".txt"}

// Parse reads the resume at path and returns it as plain text. The format
// is chosen by extension. A missing file fails with os.ErrNotExist before
// any format-specific logic runs.
func Parse(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("resume file not found: %s: %w", path, os.ErrNotExist)
		}
		return "", fmt.Errorf("checking resume file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return parseYAML(path)
	case ".json":
		return parseJSON(path)
	case ".pdf":
		return parsePDF(path)
	case ".txt":
		return parseText(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func parseYAML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening resume %s: %w", path, err)
	}
	defer f.Close()

	value, err := decodeYAML(f)
	if err != nil {
		return "", fmt.Errorf("parsing yaml resume %s: %w", path, err)
	}

	return Flatten(value), nil
}

func parseJSON(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening resume %s: %w", path, err)
	}
	defer f.Close()

	value, err := decodeJSON(f)
	if err != nil {
		return "", fmt.Errorf("parsing json resume %s: %w", path, err)
	}

	return Flatten(value), nil
}

func parseText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading resume %s: %w", path, err)
	}

	return string(data), nil
}
