package main

import (
	"sheetprep/app"

	"github.com/spf13/cobra"
)

var (
	reshapeGroupColumn string
	reshapeEncoding    string
	reshapeWorkers     int
)

// reshapeCmd rebuilds segmented CSVs into normalized xlsx tables.
var reshapeCmd = &cobra.Command{
	Use:   "reshape",
	Short: "Rebuild every segmented .csv into a normalized .xlsx",
	Long: `Scans each ragged CSV for group-label blocks (a row holding a single
value, followed by that block's header and data rows), unifies all block
headers into one global column set plus a group-label column, and writes
one normalized workbook per input with the same file stem.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reshapeGroupColumn != "" {
			cfg.Reshape.GroupColumn = reshapeGroupColumn
		}
		if reshapeEncoding != "" {
			cfg.Reshape.Encoding = reshapeEncoding
		}
		if reshapeWorkers > 0 {
			cfg.Batch.Workers = reshapeWorkers
		}

		s := app.NewReshapeService(cfg, logger)
		_, err := s.Run(cmd.Context(), folder)
		return err
	},
}

func init() {
	reshapeCmd.Flags().StringVar(&reshapeGroupColumn, "group-column", "", "override the group-label column name")
	reshapeCmd.Flags().StringVar(&reshapeEncoding, "encoding", "", "fixed encoding (utf-8-sig, utf-8, gb18030, gbk) instead of auto-detection")
	reshapeCmd.Flags().IntVar(&reshapeWorkers, "workers", 0, "process up to N files concurrently")
}
