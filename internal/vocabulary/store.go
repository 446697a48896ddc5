package vocabulary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound indicates no vocabulary store exists at the given path. Callers
// treat it as the untrained state, not a failure.
var ErrNotFound = errors.New("vocabulary store not found")

// record is the on-disk schema: two named string collections. Sorted on save
// so the store diffs cleanly and stays inspectable.
type record struct {
	Terms   []string `json:"terms"`
	Phrases []string `json:"phrases"`
}

// Save serializes the vocabulary to path atomically (temp file + rename).
func Save(v *Vocabulary, path string) error {
	if v == nil {
		v = Empty()
	}
	data, err := json.MarshalIndent(record{
		Terms:   v.Terms(),
		Phrases: v.Phrases(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vocabulary: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create vocabulary directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".vocabulary-*.json")
	if err != nil {
		return fmt.Errorf("create temp vocabulary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write vocabulary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close vocabulary file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace vocabulary store: %w", err)
	}
	return nil
}

// Load reads a vocabulary from path. A missing file returns ErrNotFound; a
// corrupt file returns a parse error. Either way callers should fall back to
// the untrained state rather than abort.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read vocabulary store: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse vocabulary store %s: %w", path, err)
	}
	return New(rec.Terms, rec.Phrases), nil
}
