package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/convolve"
	"github.com/gogpu/convolve/internal/parallel"
)

// runBatch filters every input into cfg.outDir, cfg.jobs files at a time.
// Each file is processed single-threaded; f is shared read-only.
func runBatch(f convolve.Filter, cfg config, inputs []string) error {
	if cfg.outDir == "" {
		return errNoOutDir
	}
	if err := os.MkdirAll(cfg.outDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	pool := parallel.NewWorkerPool(cfg.jobs)
	defer pool.Close()
	log.Printf("%s: %d files on %d workers", cfg.filter, len(inputs), pool.Workers())

	jobs := make([]parallel.Job, len(inputs))
	for i, in := range inputs {
		out := batchOutput(cfg.outDir, in)
		jobs[i] = func() error { return process(f, cfg, in, out) }
	}

	var failed []error
	for i, err := range pool.Run(jobs) {
		if err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", inputs[i], err))
		}
	}
	return errors.Join(failed...)
}

// batchOutput maps an input path into dir. WebP has no encoder, so those
// files are written as PNG.
func batchOutput(dir, in string) string {
	name := filepath.Base(in)
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".webp") {
		name = strings.TrimSuffix(name, ext) + ".png"
	}
	return filepath.Join(dir, name)
}
