// sheetprep prepares Chinese-language spreadsheet exports for analysis:
// it extracts CSVs from downloaded zips, strips noise rows, reshapes
// segmented tables into normalized workbooks and merges them into one.
package main

import (
	"fmt"
	"os"

	"sheetprep/internal"
	"sheetprep/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	folder  string
	verbose bool

	// Loaded once in PersistentPreRunE
	cfg    *config.Config
	logger *internal.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sheetprep",
	Short: "Batch preparation of Chinese CSV/xlsx spreadsheet exports",
	Long: `sheetprep is a small batch toolkit for registry spreadsheet exports.

Typical pipeline, run inside the folder holding the downloads:
  1. sheetprep extract   unpack zips into <stem>.csv files
  2. sheetprep clean     drop noise rows in place (first line, blanks, 主要人员 blocks)
  3. sheetprep reshape   rebuild segmented CSVs into normalized .xlsx tables
  4. sheetprep merge     concatenate all .xlsx into one workbook

Configuration comes from SHEETPREP_* environment variables (or a .env
file); flags override it per run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		level := internal.LogLevelInfo
		if verbose {
			level = internal.LogLevelDebug
		}
		logger = internal.NewLogger(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&folder, "folder", ".", "folder containing the spreadsheet files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(reshapeCmd)
	rootCmd.AddCommand(mergeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
