package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/nfce-engine/internal/format"
	"github.com/rezonia/nfce-engine/pkg/nfcelib"
)

var (
	emitNumber int64
	emitOut    string
	emitCrypto bool
)

// Settings is the on-disk configuration consumed by emit: the issuer,
// tax-authority and technical-responsible blocks the back office keeps
// in its settings store.
type Settings struct {
	Issuer    nfcelib.IssuerConfig          `json:"issuer"`
	Authority nfcelib.TaxAuthorityConfig    `json:"authority"`
	TechResp  nfcelib.TechResponsibleConfig `json:"tech_resp"`
}

var emitCmd = &cobra.Command{
	Use:   "emit <order.json>",
	Short: "Emit an NFC-e document for an order",
	Long: `Emit assembles, signs and authenticates one NFC-e document.

The order file carries id, items and total_value; issuer and authority
configuration comes from --settings. Missing settings fields fall back
to documented defaults, so a bare order still emits.

Examples:
  # Emit with full settings
  nfce-engine emit order.json --settings settings.json --number 42

  # Emit with defaults only, write XML to a file
  nfce-engine emit order.json --number 1 --format xml --out out.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runEmit,
}

func init() {
	rootCmd.AddCommand(emitCmd)

	emitCmd.Flags().Int64Var(&emitNumber, "number", 1, "Sequential document number for this emission")
	emitCmd.Flags().StringVarP(&emitOut, "out", "o", "", "Write output to file instead of stdout")
	emitCmd.Flags().BoolVar(&emitCrypto, "crypto-random", false, "Use a cryptographically strong random source")
}

func runEmit(cmd *cobra.Command, args []string) error {
	orderData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read order file: %w", err)
	}

	var order nfcelib.Order
	if err := json.Unmarshal(orderData, &order); err != nil {
		return fmt.Errorf("failed to parse order file: %w", err)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	var opts []nfcelib.Option
	if emitCrypto {
		opts = append(opts, nfcelib.WithRandomSource(format.NewCryptoSource()))
	}

	printVerbose("emitting document %d for order %s\n", emitNumber, order.ID)

	em := nfcelib.NewEmitter(opts...)
	result, err := em.Emit(context.Background(), order,
		settings.Issuer, settings.Authority, settings.TechResp,
		nfcelib.EmissionContext{Number: emitNumber})
	if err != nil {
		return err
	}

	return writeResult(result)
}

func loadSettings() (*Settings, error) {
	settings := &Settings{}
	if settingsPath == "" {
		printVerbose("no settings file, using defaults\n")
		return settings, nil
	}
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return settings, nil
}

func writeResult(result *nfcelib.Result) error {
	var out []byte
	switch outputFormat {
	case "xml":
		out = []byte(result.XML)
	default:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		out = data
	}

	if emitOut != "" {
		return os.WriteFile(emitOut, out, 0o644)
	}
	fmt.Println(string(out))
	return nil
}
