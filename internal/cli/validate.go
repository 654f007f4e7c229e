package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/texpack/texpack/internal/engine"
)

var validateRoot string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every publishable template without producing releases",
	Long: `Resolve every publishable template's dependency closure and report
validation failures and missing dependencies. Nothing is written to disk.

Exits non-zero if any template fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := validateRoot
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			root = cwd
		}

		eng, _, err := newEngine(root)
		if err != nil {
			return err
		}

		result, err := eng.Validate(context.Background(), &engine.ValidateRequest{Root: root})
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := outputJSON(result); err != nil {
				return err
			}
		} else {
			for _, w := range result.Warnings {
				PrintWarning(w)
			}
			if len(result.Templates) == 0 {
				PrintEmptyState("No publishable templates found.")
				return nil
			}
			PrintSection("Validation")
			for i := range result.Templates {
				printTemplateResult(&result.Templates[i])
			}
		}

		failed := 0
		for i := range result.Templates {
			if result.Templates[i].Failed() {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%s failed validation", PrintCount(failed, "template", "templates"))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateRoot, "root", "r", "", "Project root directory (default: current directory)")
}
