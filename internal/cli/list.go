package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/texpack/texpack/internal/engine"
)

var listRoot string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List publishable templates and their declared dependencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := listRoot
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

		result, err := eng.List(context.Background(), &engine.ListRequest{Root: root})
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

		PrintSection("Publishable Templates")
		for _, t := range result.Templates {
			PrintLabelValue(t.Name, fmt.Sprintf("%s (%s)",
				t.Dir, PrintCount(len(t.Dependencies), "dependency", "dependencies")))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listRoot, "root", "r", "", "Project root directory (default: current directory)")
}
