package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/nfce-engine/internal/accesskey"
)

var (
	keyUF     string
	keyCNPJ   string
	keySerie  int
	keyNumber int64
	keyRandom string
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Compute or verify 44-digit access keys",
}

var keyComputeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute an access key from its parts",
	Long: `Compute assembles a 44-digit access key and its check digit.

Examples:
  nfce-engine key compute --uf SP --cnpj 12.345.678/0001-95 --number 42
  nfce-engine key compute --uf TO --serie 3 --number 42 --random 12345678`,
	RunE: runKeyCompute,
}

var keyVerifyCmd = &cobra.Command{
	Use:   "verify <key>",
	Short: "Verify an access key's check digit and decompose it",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyVerify,
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keyComputeCmd)
	keyCmd.AddCommand(keyVerifyCmd)

	keyComputeCmd.Flags().StringVar(&keyUF, "uf", "", "Issuer state abbreviation (default UF when omitted)")
	keyComputeCmd.Flags().StringVar(&keyCNPJ, "cnpj", "", "Issuer CNPJ (punctuation tolerated)")
	keyComputeCmd.Flags().IntVar(&keySerie, "serie", 1, "Document series")
	keyComputeCmd.Flags().Int64Var(&keyNumber, "number", 1, "Sequential document number")
	keyComputeCmd.Flags().StringVar(&keyRandom, "random", "", "8-digit random code (generated when omitted)")
}

func runKeyCompute(cmd *cobra.Command, args []string) error {
	builder := accesskey.NewBuilder()
	key := builder.Build(accesskey.Params{
		UF:         keyUF,
		CNPJ:       keyCNPJ,
		IssuedAt:   time.Now(),
		Series:     keySerie,
		Number:     keyNumber,
		RandomCode: keyRandom,
	})

	fmt.Println(key.String())
	printVerbose("document id: %s\n", key.DocumentID())
	return nil
}

func runKeyVerify(cmd *cobra.Command, args []string) error {
	key := args[0]

	if !accesskey.Verify(key) {
		fmt.Println("INVALID")
		return fmt.Errorf("access key failed verification")
	}

	segments := accesskey.Key(key).Segments()
	out, err := json.MarshalIndent(segments, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println("VALID")
	fmt.Println(string(out))
	return nil
}
