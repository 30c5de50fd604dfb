package batch

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/image/webp"

	"baryon/internal/mesh"
)

func testConfig(t *testing.T) Config {
	return Config{
		Mesh:        mesh.Cube(2),
		OutputDir:   t.TempDir(),
		RenderSize:  32,
		Supersample: 2,
		Pitch:       -20,
		Workers:     2,
		Logger:      zap.NewNop(),

		DespeckleRatio: 0.02,
	}
}

func TestFrames(t *testing.T) {
	frames := Frames(4)
	require.Len(t, frames, 4)
	for i, f := range frames {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, float64(90*i), f.Yaw)
	}
	assert.Empty(t, Frames(0))
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < 4; i++ {
		tex.SetNRGBA(i%2, i/2, color.NRGBA{R: 180, G: 120, B: 60, A: 255})
	}
	cfg.Texture = tex

	results, err := Run(context.Background(), cfg, Frames(3))
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		require.True(t, r.Success, r.Error)
		assert.Equal(t, i, r.Frame)
		assert.Equal(t, FramePath(cfg.OutputDir, "cube", i), r.Path)

		data, err := os.ReadFile(r.Path)
		require.NoError(t, err)
		assert.Equal(t, xxhash.Sum64(data), r.Hash)

		f, err := os.Open(r.Path)
		require.NoError(t, err)
		img, err := webp.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, testConfig(t), Frames(4))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 4)
	for _, r := range results {
		assert.False(t, r.Success)
	}
}

func TestRunReportsWriteFailure(t *testing.T) {
	cfg := testConfig(t)
	// A file where the mesh directory should be.
	blocker := filepath.Join(cfg.OutputDir, "cube")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	results, err := Run(context.Background(), cfg, Frames(1))
	require.NoError(t, err)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
}

func TestManifest(t *testing.T) {
	cfg := testConfig(t)
	results := []Result{
		{Frame: 0, Yaw: 0, Path: FramePath(cfg.OutputDir, "cube", 0), Hash: 0xabc, Success: true},
		{Frame: 1, Yaw: 180, Error: "boom"},
	}

	m := NewManifest(cfg, "crate.tga", results)
	_, err := uuid.Parse(m.RunID)
	require.NoError(t, err)
	assert.Equal(t, "cube", m.Mesh)
	require.Len(t, m.Frames, 1)
	assert.Equal(t, "cube/000.webp", m.Frames[0].Image)
	assert.Equal(t, "0000000000000abc", m.Frames[0].Hash)

	path := filepath.Join(cfg.OutputDir, "manifest.json")
	require.NoError(t, WriteManifest(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var back Manifest
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)
}
