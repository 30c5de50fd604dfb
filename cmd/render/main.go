package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"baryon/internal/batch"
	"baryon/internal/config"
	"baryon/internal/logging"
	"baryon/internal/mesh"
	"baryon/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a JSON or YAML config file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	meshName := flag.String("mesh", "", "Built-in mesh: "+strings.Join(mesh.Names(), ", ")+" (default: cube)")
	tex := flag.String("texture", "", "Texture file or name (.tga, .png, .jpg, .webp, .bmp)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 8)")
	size := flag.Int("size", 0, "Output size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	pitch := flag.Float64("pitch", 0, "Camera tilt in degrees (default: -20)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default: info)")

	flag.Parse()

	var pitchFlag *float64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "pitch" {
			pitchFlag = pitch
		}
	})

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:  *outputDir,
		Texture:    *tex,
		Mesh:       *meshName,
		Frames:     *frames,
		RenderSize: *size,
		Workers:    *workers,
		Pitch:      pitchFlag,
		LogLevel:   *logLevel,
	})

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	code := run(log, cfg)
	log.Sync()
	os.Exit(code)
}

func run(log *zap.Logger, cfg config.Config) int {
	m, err := mesh.ByName(cfg.Mesh, cfg.MeshSize)
	if err != nil {
		log.Error("mesh", zap.Error(err))
		return 1
	}
	m.TexPath = cfg.Texture

	var img *image.NRGBA
	if m.TexPath != "" {
		texIndex := texture.BuildIndex(cfg.TextureDir)
		texCache := texture.NewCache(texIndex)
		log.Info("textures indexed", zap.String("dir", cfg.TextureDir), zap.Int("count", texIndex.Len()))

		img = texCache.Resolve(m.TexPath)
		if img == nil {
			log.Warn("texture unavailable, rendering flat",
				zap.String("texture", m.TexPath), zap.NamedError("reason", texCache.Err(m.TexPath)))
		}
	}

	log.Info("rendering turntable",
		zap.String("mesh", m.Name),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("frames", cfg.Frames),
		zap.Int("size", cfg.RenderSize),
		zap.Int("workers", cfg.Workers),
		zap.String("output", cfg.OutputDir))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	batchCfg := batch.Config{
		Mesh:        m,
		Texture:     img,
		OutputDir:   cfg.OutputDir,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Pitch:       *cfg.Pitch,
		Workers:     cfg.Workers,
		Logger:      log,

		DespeckleRatio: cfg.Despeckle,
	}

	results, err := batch.Run(ctx, batchCfg, batch.Frames(cfg.Frames))
	if err != nil {
		log.Error("render interrupted", zap.Error(err))
		return 1
	}

	// Count results
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	log.Info("done",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("rendered", len(results)-failed),
		zap.Int("failed", failed))

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Warn("manifest dir", zap.Error(err))
	} else if err := batch.WriteManifest(manifestPath, batch.NewManifest(batchCfg, m.TexPath, results)); err != nil {
		log.Warn("manifest write failed", zap.Error(err))
	} else {
		log.Info("manifest written", zap.String("path", manifestPath))
	}

	if failed > 0 {
		return 1
	}
	return 0
}
