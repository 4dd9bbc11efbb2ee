// Command meshibo extracts point index buffers from OBJ meshes and
// writes them as raw little-endian uint32 files, one per input mesh.
//
// Usage:
//
//	meshibo [flags] mesh.obj [mesh2.obj ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xiaozhiob/blender/draw"
	"github.com/xiaozhiob/blender/gpu"
	"github.com/xiaozhiob/blender/internal/logger"
	"github.com/xiaozhiob/blender/internal/parallel"
	"github.com/xiaozhiob/blender/mesh"
	"github.com/xiaozhiob/blender/subdiv"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		outDir     = flag.String("out", "", "output directory (default from config)")
		level      = flag.String("level", "", "log level: debug, info, warn, error")
		subdivLvl  = flag.Int("subdiv", -1, "subdivision level, 0 disables (-1: from config)")
		workers    = flag.Int("workers", -1, "worker goroutines, 0 for all CPUs (-1: from config)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "meshibo:", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *level != "" {
		cfg.Logging.Level = *level
	}
	if *subdivLvl >= 0 {
		cfg.Extract.SubdivLevel = *subdivLvl
	}
	if *workers >= 0 {
		cfg.Extract.Workers = *workers
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "meshibo:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Logging.Level == "debug" {
		draw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "meshibo: no input files")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, files); err != nil {
		logger.Log.Error("extraction failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *Config, files []string) error {
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return err
	}

	pool := parallel.NewPool(cfg.Extract.Workers)
	defer pool.Close()
	sched := &draw.Scheduler{Pool: pool, Grain: cfg.Extract.Grain}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(pool.Workers())
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return extractFile(cfg, sched, file)
		})
	}
	return g.Wait()
}

func extractFile(cfg *Config, sched *draw.Scheduler, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	m, err := mesh.ReadOBJ(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	m.UseHide = cfg.Extract.UseHide

	rd := mesh.NewRenderData(m)
	log := logger.Log.With(zap.String("mesh", filepath.Base(path)))
	log.Info("loaded",
		zap.Int("verts", rd.VertsNum),
		zap.Int("faces", rd.FacesNum),
		zap.Int("corners", rd.CornersNum),
		zap.Int("loose_edges", rd.LooseEdgesNum),
		zap.Int("loose_verts", rd.LooseVertsNum))

	var bl draw.BufferList
	sched.ExtractInto(rd, &bl, gpu.PrimPoints)
	buf := bl.IndexBuffer(gpu.PrimPoints)
	if err := writeBuffer(cfg, path, "points", buf, log); err != nil {
		return err
	}

	if lvl := cfg.Extract.SubdivLevel; lvl > 0 {
		sc := subdiv.BuildLinear(rd.View, lvl)
		var sbl draw.BufferList
		sched.ExtractSubdivInto(sc, rd, &sbl, gpu.PrimPoints)
		sbuf := sbl.IndexBuffer(gpu.PrimPoints)
		if err := writeBuffer(cfg, path, fmt.Sprintf("points.subdiv%d", lvl), sbuf, log); err != nil {
			return err
		}
	}
	return nil
}

func writeBuffer(cfg *Config, src, suffix string, buf *gpu.IndexBuffer, log *zap.Logger) error {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	out := filepath.Join(cfg.Output.Dir, base+"."+suffix+".ibo")
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return err
	}

	min, max, ok := buf.IndexRange()
	fields := []zap.Field{
		zap.String("file", out),
		zap.Int("indices", buf.Len()),
		zap.Int("restarts", buf.RestartCount()),
	}
	if ok {
		fields = append(fields, zap.Uint32("index_min", min), zap.Uint32("index_max", max))
	}
	log.Info("wrote "+suffix, fields...)
	return nil
}
