package chart

import (
	"fmt"
	"io"
	"os"
	"strings"

	"aitrends/ports"

	"github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/floats"
)

const defaultBarWidth = 40

// TerminalChart renders a ranked series as a horizontal bar chart in plain
// text. With an output path it persists the same text instead of writing to
// the configured writer.
type TerminalChart struct {
	out      io.Writer
	barWidth int
}

// NewTerminalChart creates a terminal chart sink writing to out
func NewTerminalChart(out io.Writer) *TerminalChart {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalChart{out: out, barWidth: defaultBarWidth}
}

// Render implements ports.ChartSink
func (c *TerminalChart) Render(series ports.Series, title, xLabel, yLabel, outputPath string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", runewidth.StringWidth(title)))

	if series.Len() == 0 {
		b.WriteString("(no data)\n")
	} else {
		labelWidth := 0
		for _, label := range series.Labels {
			if w := runewidth.StringWidth(label); w > labelWidth {
				labelWidth = w
			}
		}

		max := floats.Max(series.Values)
		for i, label := range series.Labels {
			fmt.Fprintf(&b, "%s | %s %g\n",
				runewidth.FillRight(label, labelWidth),
				bar(series.Values[i], max, c.barWidth),
				series.Values[i])
		}
		fmt.Fprintf(&b, "(%s / %s)\n", xLabel, yLabel)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, []byte(b.String()), 0o644)
	}
	_, err := io.WriteString(c.out, b.String())
	return err
}

// bar scales a value against the series maximum into a block-character run.
// Positive values always get at least one block.
func bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
