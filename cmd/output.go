package main

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/decision-cli/internal/render"
)

// outputOptions selects how a report is written.
type outputOptions struct {
	Format string // table, json or csv
	Color  string // auto, always or never
	Path   string // empty = stdout
	XLSX   string // optional workbook export path
}

func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("format", "", "output format: table, json or csv (overrides config)")
	f.String("color", "", "color mode: auto, always or never (overrides config)")
	f.StringP("output", "o", "", "output file path (default: stdout)")
	f.String("xlsx", "", "also export the report to this XLSX workbook")
}

// outputFromFlags returns the configured output options with CLI flag
// overrides applied.
func outputFromFlags(cmd *cobra.Command) outputOptions {
	opts := outputOptions{Format: cfg.Output.Format, Color: cfg.Output.Color}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		opts.Format = v
	}
	if v, _ := cmd.Flags().GetString("color"); v != "" {
		opts.Color = v
	}
	opts.Path, _ = cmd.Flags().GetString("output")
	opts.XLSX, _ = cmd.Flags().GetString("xlsx")
	return opts
}

// openOutput returns the destination writer and a close func.
func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "create output file %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}

// writeReport renders env in the requested format.
func writeReport(w io.Writer, env *render.Envelope, opts outputOptions) error {
	switch opts.Format {
	case "table":
		return render.Table(w, env, render.Style{Color: render.ColorEnabled(opts.Color, w)})
	case "json":
		return render.JSON(w, env)
	case "csv":
		return render.CSV(w, env)
	default:
		return eris.Errorf("unsupported format %q", opts.Format)
	}
}
