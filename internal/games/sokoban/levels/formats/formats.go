// Package formats provides the level file parsers. Parsers only split a file
// into its metadata and the two text layers; building and validating the
// board is left to the caller.
package formats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingLayer is returned when a file lacks the ground or content layer.
var ErrMissingLayer = errors.New("missing layer")

// Level is a parsed level file.
type Level struct {
	ID       string
	Name     string
	Ground   string
	Content  string
	Metadata map[string]string
}

func (l Level) check() error {
	if strings.TrimSpace(l.Ground) == "" {
		return fmt.Errorf("ground: %w", ErrMissingLayer)
	}
	if strings.TrimSpace(l.Content) == "" {
		return fmt.Errorf("content: %w", ErrMissingLayer)
	}
	return nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".sok"}
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".sok":
		return ParseText(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
