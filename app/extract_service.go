package app

import (
	"context"

	"sheetprep/adapters/archive"
	"sheetprep/internal"
)

// ExtractService unpacks zip exports in a folder into ready-to-clean CSVs.
type ExtractService struct {
	extractor *archive.Extractor
	log       *internal.Logger
}

// NewExtractService wires the service.
func NewExtractService(opts archive.Options, log *internal.Logger) *ExtractService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &ExtractService{extractor: archive.NewExtractor(opts, log), log: log}
}

// Run extracts all zips in folder and returns how many CSVs were moved.
func (s *ExtractService) Run(ctx context.Context, folder string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.extractor.ExtractAll(folder)
}
