package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubegen/internal/render"
	"github.com/SeamusWaldron/cubegen/internal/tables"
)

type generateOptions struct {
	root *rootOptions
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	gen := &generateOptions{root: root}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the cublet identifier tables",
		Long: `Print the four lookup tables (Cublets3Ids, Cublets2Ids, Faces3Ids,
Faces2Ids) as source-code literals.

Examples:
  cubegen generate
  cubegen generate --format go --package cubeids -o cubeids/tables.go
  cubegen generate --format json`,
		Args: cobra.NoArgs,
		RunE: gen.run,
	}
	gen.addFlags(cmd)
	return cmd
}

func (g *generateOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().String(cfgKeyFormat, string(render.FormatCpp), "Output format (cpp, go, json)")
	cmd.Flags().String(cfgKeyPackage, render.DefaultPackage, "Package name for Go output")
	cmd.Flags().StringP(cfgKeyOutput, "o", "", "Output file (default: stdout)")
}

func (g *generateOptions) run(cmd *cobra.Command, args []string) error {
	v, err := g.root.loadConfig(cmd)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(v.GetString(cfgKeyFormat))
	if err != nil {
		return err
	}

	enums := tables.Build()
	ts := enums.Tables()
	for _, t := range ts {
		g.root.log.WithFields(logrus.Fields{
			"table":    t.Name,
			"cells":    len(t.Values),
			"distinct": t.Distinct(),
		}).Debug("materialised table")
	}

	opts := render.Options{Package: v.GetString(cfgKeyPackage)}
	output := v.GetString(cfgKeyOutput)
	if output == "" {
		return render.Write(cmd.OutOrStdout(), format, ts, opts)
	}

	if err := writeFile(output, func(w io.Writer) error {
		return render.Write(w, format, ts, opts)
	}); err != nil {
		return err
	}

	g.root.log.WithField("file", output).Info("wrote tables")
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d tables to %s\n", len(ts), output)
	return nil
}

// writeFile creates path, and its directory if needed, and fills it with fn.
func writeFile(path string, fn func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
