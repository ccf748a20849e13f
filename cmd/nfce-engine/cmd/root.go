package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	settingsPath string
)

var rootCmd = &cobra.Command{
	Use:   "nfce-engine",
	Short: "Emit NFC-e point-of-sale fiscal documents",
	Long: `nfce-engine assembles NFC-e (model 65) fiscal documents: a signed XML
envelope with a self-verifying 44-digit access key and QR authentication payload.

Examples:
  # Emit a document for an order
  nfce-engine emit order.json --settings settings.json --number 42

  # Verify and decompose an access key
  nfce-engine key verify 17240800000000000191650010000000421123456780

  # Start the HTTP API server
  nfce-engine serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, xml)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to settings JSON (issuer, authority, tech_resp) (env: NFCE_SETTINGS)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if settingsPath == "" {
		settingsPath = os.Getenv("NFCE_SETTINGS")
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
