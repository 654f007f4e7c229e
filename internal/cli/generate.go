package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/texpack/texpack/internal/engine"
)

var (
	generateRoot   string
	generateDryRun bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate release bundles for every publishable template",
	Long: `Generate a self-contained release bundle for every template whose manifest
sets publish to true.

The output directory is removed and regenerated from scratch on every run.
A template with a structural problem (invalid or missing dependency) is
skipped and its partial release directory rolled back; other templates are
unaffected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := generateRoot
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

		result, err := eng.Generate(context.Background(), &engine.GenerateRequest{
			Root:   root,
			DryRun: generateDryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		for _, w := range result.Warnings {
			PrintWarning(w)
		}

		if len(result.Templates) == 0 {
			PrintEmptyState("No publishable templates found.")
			return nil
		}

		if generateDryRun {
			PrintSection("Dry Run")
			for i := range result.Templates {
				res := &result.Templates[i]
				printTemplateResult(res)
				if !res.Failed() && len(res.Files) > 0 {
					PrintList(res.Files, 1)
				}
			}
			return nil
		}

		PrintSection("Generating Releases")
		for i := range result.Templates {
			printTemplateResult(&result.Templates[i])
		}

		fmt.Println()
		PrintSuccess(fmt.Sprintf("Produced %s in %s",
			PrintCount(result.Produced(), "release", "releases"), result.Duration.Round(timeRounding)))
		PrintLabelValue("Output", result.OutputDir)
		if failed := len(result.Templates) - result.Produced(); failed > 0 {
			PrintWarning(fmt.Sprintf("%s skipped due to errors", PrintCount(failed, "template", "templates")))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateRoot, "root", "r", "", "Project root directory (default: current directory)")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Resolve and plan without writing anything")
}
