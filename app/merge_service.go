package app

import (
	"context"

	"sheetprep/internal"
	"sheetprep/internal/config"
	"sheetprep/internal/merge"
)

// MergeService concatenates all normalized workbooks in a folder into one.
type MergeService struct {
	cfg    *config.Config
	merger *merge.Merger
	log    *internal.Logger
}

// NewMergeService wires the service.
func NewMergeService(cfg *config.Config, log *internal.Logger) *MergeService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &MergeService{cfg: cfg, merger: merge.NewMerger(log), log: log}
}

// Run merges every .xlsx in folder into the configured output workbook.
func (s *MergeService) Run(ctx context.Context, folder string) (*merge.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.merger.MergeFolder(folder, s.cfg.Merge.OutputName)
}
