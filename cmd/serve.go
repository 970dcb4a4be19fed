package cmd

import (
	v1 "github.com/income-recorder/backend/internal/controllers/v1"
	"github.com/income-recorder/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API for the income recorder.

The data file is loaded once at startup and written back after every
change. The listen port is taken from the PORT environment variable and
defaults to 8080.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		l, err := loadLedger()
		if err != nil {
			return err
		}

		r, err := router.Config()
		if err != nil {
			return err
		}

		router.AttachRoutes(v1.Controller{Ledger: l, DataFile: dataFile}, r.Group("/"))

		log.Info().Int("records", l.Len()).Str("file", dataFile).Msg("backend startup complete")

		return r.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
