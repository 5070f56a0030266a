package main

import (
	"sheetprep/adapters/archive"
	"sheetprep/app"

	"github.com/spf13/cobra"
)

var (
	extractKeep      bool
	extractOverwrite bool
)

// extractCmd unpacks zip exports and collects their CSVs in the folder.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract every .zip in the folder and move its CSVs here",
	Long: `For each zip the contents are extracted to a <stem>__extracted
folder, all CSVs inside are renamed to <stem>.csv (or <stem>_N.csv when a
zip holds several) and moved into the folder. Corrupt zips are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := app.NewExtractService(archive.Options{
			KeepExtracted: extractKeep,
			Overwrite:     extractOverwrite,
		}, logger)
		_, err := s.Run(cmd.Context(), folder)
		return err
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractKeep, "keep-extracted", false, "keep the per-zip extraction folders")
	extractCmd.Flags().BoolVar(&extractOverwrite, "overwrite", false, "overwrite destination CSVs that already exist")
}
