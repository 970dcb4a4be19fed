package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/income-recorder/backend/internal/report"
	"github.com/income-recorder/backend/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the income sheet as CSV",
	Long: `Export all records as a CSV income sheet with a checksum per line.

The first line is the fixed header, followed by one line per record in
code order.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		l, err := loadLedger()
		if err != nil {
			return err
		}

		records := l.All()
		if len(records) == 0 {
			return errors.New("there are no records to export")
		}

		if err := os.MkdirAll(filepath.Dir(exportOutput), os.ModePerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("creating income sheet: %w", err)
		}
		defer f.Close()

		if err := report.Write(f, records); err != nil {
			return err
		}

		fmt.Printf("Exported %d records to %s\n", len(records), exportOutput)
		return nil
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create a timestamped backup of the data file",
	RunE: func(_ *cobra.Command, _ []string) error {
		backup, err := storage.Backup(dataFile)
		if err != nil {
			return err
		}

		fmt.Printf("Backup created: %s\n", backup)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, backupCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "output/income_sheet.csv", "path of the income sheet")
}
