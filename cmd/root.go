// Package cmd implements the command line interface of the income recorder.
package cmd

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/income-recorder/backend/internal/ledger"
	"github.com/income-recorder/backend/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var dataFile string

var rootCmd = &cobra.Command{
	Use:   "income-recorder",
	Short: "Record income transactions and export checksummed income sheets",
	Long: `The income recorder keeps track of income transactions with their
withholding tax, stores them in a flat data file and exports a
checksummed CSV income sheet.

Records are managed either with the subcommands below or through the
HTTP API started by "serve".`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the command line interface. It is called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "data/income_data.txt", "path of the data file")
}

// setupLogging configures the global logger.
//
// The log format can be explicitly set with LOG_FORMAT. If it is not set,
// it defaults to human readable for development and JSON for release.
func setupLogging() {
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// loadLedger reads the data file into a fresh ledger.
// Later lines win over earlier lines with the same code.
func loadLedger() (*ledger.Ledger, error) {
	records, skipped, err := storage.Load(dataFile)
	if err != nil {
		return nil, err
	}

	l := ledger.New()
	for _, record := range records {
		l.Put(record)
	}

	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Str("file", dataFile).Msg("some lines could not be loaded")
	}

	return l, nil
}
