package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benzoXdev/pyveil/internal/engine"
)

func newDeobfuscateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deobfuscate",
		Short: "Reverse an obfuscation using its saved mapping",
		Long: `Substitutes original identifiers back for their placeholders using the
mapping JSON written by obfuscate --mapping. The reverse pass is textual and
best effort: stripped comments, docstrings and whitespace do not come back.`,
		RunE: runDeobfuscate,
	}
	cmd.Flags().StringP("input", "i", "", "obfuscated file (default stdin)")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	cmd.Flags().StringP("mapping", "m", "", "mapping JSON written by obfuscate (required)")
	_ = cmd.MarkFlagRequired("mapping")
	return cmd
}

func runDeobfuscate(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	mappingPath, _ := cmd.Flags().GetString("mapping")

	data, err := os.ReadFile(mappingPath)
	if err != nil {
		return fmt.Errorf("reading mapping: %w", err)
	}
	var mapping []engine.Pair
	if err := json.Unmarshal(data, &mapping); err != nil {
		return fmt.Errorf("decoding mapping: %w", err)
	}
	if len(mapping) == 0 {
		return errors.New("no mapping entries; nothing to reverse")
	}

	source, err := readSource(input)
	if err != nil {
		return err
	}
	return writeOutput(output, engine.DeobfuscateWith(source, mapping))
}
