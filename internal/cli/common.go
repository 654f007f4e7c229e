package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/texpack/texpack/internal/clock"
	"github.com/texpack/texpack/internal/config"
	"github.com/texpack/texpack/internal/engine"
	"github.com/texpack/texpack/internal/fsops"
)

// timeRounding is the precision used when printing run durations.
const timeRounding = time.Millisecond

// newEngine creates an engine wired with real implementations, configured
// for the project at root.
func newEngine(root string) (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	fs := fsops.NewRealFS()
	clk := &clock.RealClock{}

	return engine.New(fs, clk, cfg), cfg, nil
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTemplateResult prints one template's outcome in human form.
func printTemplateResult(res *engine.TemplateResult) {
	if res.Failed() {
		PrintError(fmt.Sprintf("%s: %s", res.Name, res.Failure))
	} else {
		PrintSuccess(fmt.Sprintf("%s (%s)", res.Name, PrintCount(len(res.Files), "file", "files")))
	}
	for _, w := range res.Warnings {
		PrintWarning(fmt.Sprintf("%s: %s", res.Name, w))
	}
}
