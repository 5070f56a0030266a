// Package app wires the adapters into folder-level batch services, one per
// pipeline stage. Every service processes files in sorted path order and
// treats a single file's failure as a diagnostic, never as a reason to stop
// the batch.
package app

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"sheetprep/adapters/csvio"
	"sheetprep/adapters/encoding"
	"sheetprep/adapters/excel"
	"sheetprep/domain/table"
	"sheetprep/internal"
	"sheetprep/internal/config"
	"sheetprep/internal/reshape"
	"sheetprep/ports"

	"golang.org/x/sync/errgroup"
)

// BatchSummary aggregates per-file outcomes of one folder run.
type BatchSummary struct {
	Files     int
	Succeeded int
	Failed    int
	Rows      int
}

// gridLoaderFunc adapts the csvio loader function to the GridLoader port.
type gridLoaderFunc func(path string, enc encoding.Encoding) (table.Grid, error)

func (f gridLoaderFunc) LoadGrid(path string, enc encoding.Encoding) (table.Grid, error) {
	return f(path, enc)
}

// tableWriterFunc adapts a writer function to the TableWriter port.
type tableWriterFunc func(path string, t *table.Table) error

func (f tableWriterFunc) WriteTable(path string, t *table.Table) error {
	return f(path, t)
}

// ReshapeService turns every segmented .csv in a folder into a normalized
// .xlsx of the same stem.
type ReshapeService struct {
	cfg      *config.Config
	resolver ports.EncodingResolver
	loader   ports.GridLoader
	writer   ports.TableWriter
	reshaper *reshape.Reshaper
	log      *internal.Logger
}

// NewReshapeService wires the service with the default adapters.
func NewReshapeService(cfg *config.Config, log *internal.Logger) *ReshapeService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &ReshapeService{
		cfg:      cfg,
		resolver: encoding.NewResolver(),
		loader:   gridLoaderFunc(csvio.LoadGrid),
		writer:   tableWriterFunc(excel.WriteTable),
		reshaper: reshape.New(cfg.Reshape.GroupColumn),
		log:      log,
	}
}

// Run processes every .csv in folder. Files are independent, so the batch
// may run them concurrently (cfg.Batch.Workers); per-file output is the same
// either way and the reference behavior of one worker keeps sorted order.
func (s *ReshapeService) Run(ctx context.Context, folder string) (*BatchSummary, error) {
	files, err := listFiles(folder, ".csv")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		s.log.Info("[ReshapeService] no csv files found in %s", folder)
		return &BatchSummary{}, nil
	}

	var mu sync.Mutex
	summary := &BatchSummary{Files: len(files)}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Batch.Workers)

	for _, path := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			rows, err := s.reshapeFile(path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// One bad file costs only its own output.
				s.log.Error("[ReshapeService] %s: %v", filepath.Base(path), err)
				summary.Failed++
				return nil
			}
			summary.Succeeded++
			summary.Rows += rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}

	s.log.Info("[ReshapeService] done: %d file(s), %d ok, %d failed, %d row(s)",
		summary.Files, summary.Succeeded, summary.Failed, summary.Rows)
	return summary, nil
}

func (s *ReshapeService) reshapeFile(path string) (int, error) {
	enc := s.resolveEncoding(path)

	grid, err := s.loader.LoadGrid(path, enc)
	if err != nil {
		return 0, err
	}

	out := s.reshaper.Reshape(grid)

	dest := strings.TrimSuffix(path, filepath.Ext(path)) + ".xlsx"
	if err := s.writer.WriteTable(dest, out); err != nil {
		return 0, err
	}

	s.log.Info("[ReshapeService] %s: %d row(s), %d column(s), encoding=%s",
		filepath.Base(path), len(out.Records), len(out.Columns), enc.Name())
	return len(out.Records), nil
}

func (s *ReshapeService) resolveEncoding(path string) encoding.Encoding {
	if name := s.cfg.Reshape.Encoding; name != "" && name != "auto" {
		if enc, ok := encoding.ByName(name); ok {
			return enc
		}
		s.log.Warn("[ReshapeService] unknown encoding %q, resolving automatically", name)
	}
	return s.resolver.Resolve(path)
}
