package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/charts/cmd/chartbar/internal/config"
	"github.com/go-drift/charts/pkg/plot"
	"github.com/go-drift/charts/pkg/raster"
)

// renderCommand creates the render subcommand.
func renderCommand() *cobra.Command {
	var (
		configPath string
		outPath    string
		normalize  string
		width      int
		height     int
	)

	cmd := &cobra.Command{
		Use:   "render <series.yaml>",
		Short: "Render a series file as a bar chart",
		Long: `Render reads a YAML series file and draws one column per record.

Without --out the chart is printed as ANSI bars on stdout. With --out the
chart is rasterized and written as a PNG file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			records, err := loadSeries(args[0])
			if err != nil {
				return err
			}
			logger.Debug("series loaded", "records", len(records))

			cfg, err := config.LoadOptional(configPath)
			if err != nil {
				return err
			}

			divisor, err := divisorFor(normalize)
			if err != nil {
				return err
			}

			surface := raster.NewSurface(width, height)
			p := plot.NewBarPlot[Record](newFileSource(records), surface,
				plot.WithValueSelector[Record](func(r Record) float64 { return r.Value }),
				plot.WithDivisorOperator[Record](divisor),
				plot.WithKeyFunc[Record](func(r Record) any { return r.Label }),
			)
			defer p.Dispose()
			cfg.Apply(p)

			points := p.Render()
			logger.Debug("layout computed", "points", len(points))

			if outPath == "" {
				printBars(cmd.OutOrStdout(), records, points, p.ColumnHeight())
				return nil
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			if err := surface.EncodePNG(f); err != nil {
				return fmt.Errorf("failed to encode png: %w", err)
			}
			logger.Info("chart written", "path", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "chart.yaml", "plot configuration file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write a PNG instead of printing to the terminal")
	cmd.Flags().StringVarP(&normalize, "normalize", "n", "max", "divisor strategy: max, sum, or none")
	cmd.Flags().IntVar(&width, "width", 640, "raster width in pixels")
	cmd.Flags().IntVar(&height, "height", 240, "raster height in pixels")

	return cmd
}

// divisorFor maps the --normalize flag to a divisor operator.
func divisorFor(name string) (plot.DivisorOperator[Record], error) {
	switch name {
	case "max":
		return plot.MaxValueDivisor[Record](), nil
	case "sum":
		return plot.SumDivisor[Record](), nil
	case "none":
		return plot.ConstantDivisor[Record](1), nil
	default:
		return nil, fmt.Errorf("unknown normalize strategy %q (want max, sum, or none)", name)
	}
}
