package main

import (
	"sheetprep/app"

	"github.com/spf13/cobra"
)

var mergeOutput string

// mergeCmd concatenates every workbook in the folder into one file.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge all .xlsx files in the folder into a single workbook",
	Long: `Reads the first sheet of every workbook, takes the union of their
columns, and writes one combined workbook. Files that fail to open are
skipped with a warning; the output file itself is never read back in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if mergeOutput != "" {
			cfg.Merge.OutputName = mergeOutput
		}

		s := app.NewMergeService(cfg, logger)
		_, err := s.Run(cmd.Context(), folder)
		return err
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "output workbook name (default merged_output.xlsx)")
}
