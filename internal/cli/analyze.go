package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benzoXdev/pyveil/internal/engine"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Inspect a source and recommend a privacy level",
		RunE:  runAnalyze,
	}
	cmd.Flags().StringP("input", "i", "", "input file (default stdin)")
	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	source, err := readSource(input)
	if err != nil {
		return err
	}
	printAnalysis(engine.AnalyzeSource(source))
	return nil
}

// printAnalysis renders the feature report to stderr.
func printAnalysis(f *engine.SourceFeatures) {
	fmt.Fprintf(os.Stderr, "\n%s== Source Analysis ==%s\n", Cyan, Reset)
	if !f.Parses {
		fmt.Fprintf(os.Stderr, "  Lines: %d  %s(does not parse as Python)%s\n", f.LineCount, Red, Reset)
	} else {
		fmt.Fprintf(os.Stderr, "  Lines: %-5d Functions: %-3d Classes: %-3d\n", f.LineCount, f.FunctionCount, f.ClassCount)
		fmt.Fprintf(os.Stderr, "  Comments: %-2d Docstrings: %-2d Identifiers: %-3d Reserved in use: %d\n",
			f.CommentCount, f.DocstringCount, f.IdentifierCount, f.ReservedCount)

		var features []string
		if f.HasTypeHints {
			features = append(features, "TypeHints")
		}
		if f.HasDecorators {
			features = append(features, "Decorators")
		}
		if f.HasFStrings {
			features = append(features, "F-Strings")
		}
		if f.HasAsync {
			features = append(features, "Async")
		}
		if f.HasLambdas {
			features = append(features, "Lambdas")
		}
		if f.HasImports {
			features = append(features, "Imports")
		}
		if len(features) > 0 {
			fmt.Fprint(os.Stderr, "  Features:")
			for _, feat := range features {
				fmt.Fprintf(os.Stderr, " %s", feat)
			}
			fmt.Fprintln(os.Stderr)
		}
	}
	fmt.Fprintf(os.Stderr, "  %s-> Recommended level: %s%s\n", Green, f.RecommendedLevel, Reset)
	for _, w := range f.Warnings {
		fmt.Fprintf(os.Stderr, "  %s! %s%s\n", Yellow, w, Reset)
	}
	fmt.Fprintln(os.Stderr)
}
