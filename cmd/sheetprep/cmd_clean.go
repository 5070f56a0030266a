package main

import (
	"sheetprep/app"

	"github.com/spf13/cobra"
)

var (
	cleanPrefix   string
	cleanNoBackup bool
	cleanDryRun   bool
	cleanEncoding string
)

// cleanCmd removes noise rows from all CSVs in the folder, in place.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop noise rows from every .csv in the folder, in place",
	Long: `Removes each file's first physical line, blank and effectively-empty
rows, and rows whose first populated cell starts with the configured
prefix (default 主要人员). Excel text formulas like ="00123" are unwrapped
on kept rows. Originals are backed up to a timestamped folder first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cleanPrefix != "" {
			cfg.Clean.DropPrefix = cleanPrefix
		}
		if cleanEncoding != "" {
			cfg.Reshape.Encoding = cleanEncoding
		}
		backup := cfg.Clean.Backup && !cleanNoBackup

		s := app.NewCleanService(cfg, cleanDryRun, backup, logger)
		_, err := s.Run(cmd.Context(), folder)
		return err
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanPrefix, "prefix", "", "override the drop prefix")
	cleanCmd.Flags().BoolVar(&cleanNoBackup, "no-backup", false, "do not back up originals before rewriting")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "count what would change without modifying files")
	cleanCmd.Flags().StringVar(&cleanEncoding, "encoding", "", "fixed encoding (utf-8-sig, utf-8, gb18030, gbk) instead of auto-detection")
}
