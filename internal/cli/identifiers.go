package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benzoXdev/pyveil/internal/engine"
)

func newIdentifiersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identifiers",
		Short: "List the renameable identifiers of a Python source",
		RunE:  runIdentifiers,
	}
	cmd.Flags().StringP("input", "i", "", "input file (default stdin)")
	cmd.Flags().Bool("json", false, "emit a JSON array instead of one name per line")
	return cmd
}

func runIdentifiers(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	asJSON, _ := cmd.Flags().GetBool("json")

	source, err := readSource(input)
	if err != nil {
		return err
	}
	strategy, _ := engine.New(engine.LevelLow)
	names := strategy.ExtractIdentifiers(source)

	if asJSON {
		if names == nil {
			names = []string{}
		}
		data, err := json.Marshal(names)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if len(names) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
	}
	return nil
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a source parses as a Python module",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, _ := cmd.Flags().GetString("input")
			source, err := readSource(input)
			if err != nil {
				return err
			}
			strategy, _ := engine.New(engine.LevelLow)
			if !strategy.ValidateCode(source) {
				return fmt.Errorf("source does not parse as a Python module")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "input file (default stdin)")
	return cmd
}
