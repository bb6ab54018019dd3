package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"
)

// archiveVersion marks the archive format for forward compatibility.
const archiveVersion = "1.0.0"

// Archive is the top-level structure for plan export and import.
type Archive struct {
	Version   string `json:"version"`
	CreatedAt string `json:"created_at"`
	Plan      Plan   `json:"plan"`
}

// ExportArchive writes the plan as gzip-compressed JSON to the given path.
func ExportArchive(path string, plan Plan) error {
	archive := Archive{
		Version:   archiveVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Plan:      plan,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(archive); err != nil {
		zw.Close()
		return fmt.Errorf("failed to write archive: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	return nil
}

// ImportArchive reads a compressed plan archive from the given path.
func ImportArchive(path string) (Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to open archive file: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return Archive{}, fmt.Errorf("failed to read archive: %w", err)
	}
	defer zr.Close()

	var archive Archive
	if err := json.NewDecoder(zr).Decode(&archive); err != nil {
		return Archive{}, fmt.Errorf("failed to parse archive: %w", err)
	}
	if archive.Version == "" {
		return Archive{}, fmt.Errorf("invalid archive: missing version field")
	}
	return archive, nil
}
