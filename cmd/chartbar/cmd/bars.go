package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/charts/pkg/plot"
)

// maxBarCells is the character width of a full-height bar in terminal
// output.
const maxBarCells = 40

var (
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	overflowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	labelStyle    = lipgloss.NewStyle().Faint(true)
)

// printBars writes the plotted points as horizontal ANSI bars, one row per
// column. Columns taller than the nominal height (domain overflow) switch
// to the overflow style and clamp at the full terminal width.
func printBars(w io.Writer, records []Record, points []plot.ColumnPoint[Record], columnHeight float64) {
	labelWidth := 0
	for _, r := range records {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
	}

	for _, pt := range points {
		fraction := 0.0
		if columnHeight > 0 {
			fraction = pt.DisplayHeight / columnHeight
		}
		cells := int(math.Round(fraction * maxBarCells))

		style := barStyle
		if cells > maxBarCells {
			cells = maxBarCells
			style = overflowStyle
		}
		if cells < 0 {
			cells = 0
		}

		fmt.Fprintf(w, "%s %s %.6g\n",
			labelStyle.Render(fmt.Sprintf("%*s", labelWidth, pt.Input.Label)),
			style.Render(strings.Repeat("█", cells)),
			pt.Value,
		)
	}
}
