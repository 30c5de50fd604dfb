package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Manifest describes one turntable run.
type Manifest struct {
	RunID   string          `json:"run_id"`
	Mesh    string          `json:"mesh"`
	Texture string          `json:"texture,omitempty"`
	Size    int             `json:"size"`
	Frames  []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame int     `json:"frame"`
	Yaw   float64 `json:"yaw"`
	Image string  `json:"image"` // relative to the manifest
	Hash  string  `json:"hash"`  // xxhash64, hex
}

// NewManifest collects the successful results under a fresh run id.
func NewManifest(cfg Config, texture string, results []Result) Manifest {
	m := Manifest{
		RunID:   uuid.NewString(),
		Mesh:    cfg.Mesh.Name,
		Texture: texture,
		Size:    cfg.RenderSize,
	}
	for _, r := range results {
		if !r.Success {
			continue
		}
		rel, err := filepath.Rel(cfg.OutputDir, r.Path)
		if err != nil {
			rel = r.Path
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Frame: r.Frame,
			Yaw:   r.Yaw,
			Image: filepath.ToSlash(rel),
			Hash:  fmt.Sprintf("%016x", r.Hash),
		})
	}
	return m
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
