package batch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"baryon/internal/mathutil"
	"baryon/internal/mesh"
	"baryon/internal/postprocess"
	"baryon/internal/raster"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Mesh        mesh.Mesh
	Texture     *image.NRGBA // nil renders flat-colored
	OutputDir   string
	RenderSize  int
	Supersample int
	Pitch       float64 // degrees
	Workers     int
	Logger      *zap.Logger

	// DespeckleRatio drops opaque islands below this share of the silhouette.
	// Zero disables it.
	DespeckleRatio float64
}

// Frame is one turntable view.
type Frame struct {
	Index int
	Yaw   float64 // degrees
}

// Frames returns n views with yaw evenly spaced over a full turn.
func Frames(n int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = Frame{Index: i, Yaw: 360 * float64(i) / float64(n)}
	}
	return frames
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Yaw     float64
	Path    string
	Hash    uint64 // xxhash64 of the encoded WebP
	Success bool
	Error   string
}

// Run renders all frames using a worker pool. Per-frame failures are reported
// in the results; the returned error is only set when ctx is cancelled.
func Run(ctx context.Context, cfg Config, frames []Frame) ([]Result, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					log.Info("progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("frames_per_sec", float64(p)/time.Since(start).Seconds()))
				}
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))

	for i, fr := range frames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = processFrame(cfg, fr)
			processed.Add(1)
			if !results[i].Success {
				log.Warn("frame failed", zap.Int("frame", fr.Index), zap.String("error", results[i].Error))
			} else {
				log.Debug("frame rendered", zap.Int("frame", fr.Index), zap.String("path", results[i].Path))
			}
			return nil
		})
	}

	err := g.Wait()
	return results, err
}

// FramePath is where frame index of the named mesh is written.
func FramePath(outputDir, meshName string, index int) string {
	return filepath.Join(outputDir, meshName, fmt.Sprintf("%03d.webp", index))
}

func processFrame(cfg Config, fr Frame) Result {
	res := Result{Frame: fr.Index, Yaw: fr.Yaw}

	rot := mathutil.Mat3Mul(
		mathutil.RotX(mathutil.Deg2Rad(cfg.Pitch)),
		mathutil.RotY(mathutil.Deg2Rad(fr.Yaw)),
	)
	img := raster.RenderMesh(cfg.Mesh, rot, cfg.Texture, cfg.RenderSize, cfg.Supersample)

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}
	if cfg.DespeckleRatio > 0 {
		img = postprocess.Despeckle(img, cfg.DespeckleRatio)
	}

	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	outPath := FramePath(cfg.OutputDir, cfg.Mesh.Name, fr.Index)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Path = outPath
	res.Hash = xxhash.Sum64(buf.Bytes())
	res.Success = true
	return res
}
