// Command typstify converts Markdown on stdin into Typst source on stdout.
package main

import (
	"bufio"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/prestodocs/typstify"
)

//go:embed manifest.json
var manifest string

//go:embed example.md
var example string

var (
	showManifest bool
	showVersion  bool
	showExample  bool
)

var rootCmd = &cobra.Command{
	Use:           "typstify",
	Short:         "Presto template: Markdown → Typst converter",
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&showManifest, "manifest", false, "Output embedded manifest.json")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Output version from manifest")
	rootCmd.Flags().BoolVar(&showExample, "example", false, "Output embedded example.md")
}

func run(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	switch {
	case showManifest:
		fmt.Fprint(stdout, manifest)
		return nil
	case showVersion:
		fmt.Fprintln(stdout, manifestVersion(manifest))
		return nil
	case showExample:
		fmt.Fprint(stdout, example)
		return nil
	}

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	w := bufio.NewWriter(stdout)
	if err := typstify.RenderDocument(w, string(input)); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// manifestVersion extracts the manifest's version field, falling back to the
// literal "unknown" when it is absent.
func manifestVersion(data string) string {
	var m struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal([]byte(data), &m); err != nil || m.Version == "" {
		return "unknown"
	}
	return m.Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		typstify.Logger.Fatal(err)
	}
}
