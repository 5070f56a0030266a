package app

import (
	"context"
	"path/filepath"

	"sheetprep/adapters/encoding"
	"sheetprep/internal"
	"sheetprep/internal/clean"
	"sheetprep/internal/config"
	"sheetprep/ports"
)

// CleanSummary aggregates one cleaning run.
type CleanSummary struct {
	Files     int
	Failed    int
	Kept      int
	Dropped   int
	BackupDir string
}

// CleanService runs the row-dropping pre-pass over every .csv in a folder,
// in place.
type CleanService struct {
	cfg      *config.Config
	resolver ports.EncodingResolver
	dryRun   bool
	backup   bool
	log      *internal.Logger
}

// NewCleanService wires the service. dryRun counts without modifying files;
// backup additionally controls the pre-rewrite copy.
func NewCleanService(cfg *config.Config, dryRun, backup bool, log *internal.Logger) *CleanService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &CleanService{
		cfg:      cfg,
		resolver: encoding.NewResolver(),
		dryRun:   dryRun,
		backup:   backup,
		log:      log,
	}
}

// Run cleans every .csv in folder in sorted order. A file that cannot be
// cleaned is reported and left untouched; the batch continues.
func (s *CleanService) Run(ctx context.Context, folder string) (*CleanSummary, error) {
	files, err := listFiles(folder, ".csv")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		s.log.Info("[CleanService] no csv files found in %s", folder)
		return &CleanSummary{}, nil
	}

	cleaner := clean.NewCleaner(clean.Options{
		DropPrefix: s.cfg.Clean.DropPrefix,
		Backup:     s.backup,
		BackupDir:  s.cfg.Clean.BackupDir,
		DryRun:     s.dryRun,
	}, s.log)

	summary := &CleanSummary{Files: len(files)}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		enc := s.resolveEncoding(path)
		res, err := cleaner.CleanFile(path, enc)
		if err != nil {
			s.log.Error("[CleanService] %s: %v", filepath.Base(path), err)
			summary.Failed++
			continue
		}

		s.log.Info("[CleanService] %s: keep=%d, drop=%d, encoding=%s",
			filepath.Base(path), res.Kept, res.Dropped, enc.Name())
		summary.Kept += res.Kept
		summary.Dropped += res.Dropped
	}

	summary.BackupDir = cleaner.BackupDir()
	s.log.Info("[CleanService] done: total keep=%d, total drop=%d", summary.Kept, summary.Dropped)
	if summary.BackupDir != "" {
		s.log.Info("[CleanService] backups saved to %s", summary.BackupDir)
	}
	return summary, nil
}

func (s *CleanService) resolveEncoding(path string) encoding.Encoding {
	if name := s.cfg.Reshape.Encoding; name != "" && name != "auto" {
		if enc, ok := encoding.ByName(name); ok {
			return enc
		}
	}
	return s.resolver.Resolve(path)
}
