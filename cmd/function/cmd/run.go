package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Victor-armando18/checkout-functions/internal/logging"
	"github.com/Victor-armando18/checkout-functions/pkg/engine"
)

var (
	inputFile string
	patchFile string
)

var runCmd = &cobra.Command{
	Use:   "run <target>",
	Short: "Run one function invocation",
	Long: `Run reads the function input JSON from stdin (or --input) and writes the
function result JSON to stdout.

Targets: purchase.delivery-customization.run (delivery-customization),
purchase.payment-customization.run (payment-customization).`,
	Args: cobra.ExactArgs(1),
	RunE: runFunction,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "read input from file instead of stdin")
	runCmd.Flags().StringVar(&patchFile, "patch", "", "RFC 6902 JSON patch applied to the input before running")
}

func runFunction(cmd *cobra.Command, args []string) error {
	target, err := engine.ParseTarget(args[0])
	if err != nil {
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	runner, err := engine.NewRunner(engine.Options{RulesDir: settings.RulesDir})
	if err != nil {
		return fmt.Errorf("failed to create runner: %w", err)
	}

	var in io.Reader = cmd.InOrStdin()
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var patch []byte
	if patchFile != "" {
		if patch, err = os.ReadFile(patchFile); err != nil {
			return fmt.Errorf("failed to read patch: %w", err)
		}
	}

	ctx := logging.NewContext(cmd.Context(), logger)
	return runner.Execute(ctx, target, in, cmd.OutOrStdout(), patch)
}
