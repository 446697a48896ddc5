package documents

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat indicates a reference document format Voxify cannot
// convert to text. Training skips such documents and continues.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// SupportedExtensions lists the reference document formats training accepts.
func SupportedExtensions() []string {
	return []string{".txt", ".docx"}
}

// IsSupported reports whether the file extension is a readable document format.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".docx":
		return true
	default:
		return false
	}
}

// Extract returns the plain text content of a reference document. Formats are
// dispatched on extension: .txt files are read verbatim, .docx containers are
// unpacked. Anything else fails with ErrUnsupportedFormat.
func Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read document: %w", err)
		}
		return string(data), nil
	case ".docx":
		return extractDocx(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
