package surface

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/diabred/diabred/internal/chart"
	"github.com/diabred/diabred/internal/risk"
)

// TerminalRenderer renders a risk result as colored terminal output. It
// keeps the last drawn chart and replaces it on every render.
type TerminalRenderer struct {
	panel chart.Panel
}

const (
	barWidth  = 20
	textWidth = 70
)

var levelANSI = map[risk.Level]string{
	risk.LevelLow:      "32",
	risk.LevelModerate: "33",
	risk.LevelHigh:     "31",
}

// palette applies SGR codes unless NO_COLOR is set.
type palette struct {
	plain bool
}

func newPalette() palette {
	_, off := os.LookupEnv("NO_COLOR")
	return palette{plain: off}
}

func (p palette) paint(code, s string) string {
	if p.plain || code == "" {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func (r *TerminalRenderer) Render(w io.Writer, result risk.Result) error {
	p := newPalette()
	lc := levelANSI[result.Level]

	fmt.Fprintln(w, p.paint("1", "Riesgo "+p.paint(lc, strings.ToUpper(string(result.Level)))))
	fmt.Fprintf(w, "Puntuación de Riesgo: %s de 10.0\n\n", p.paint(lc, fmt.Sprintf("%.1f", result.RiskScore)))

	fmt.Fprintln(w, "Factores Contribuyentes:")
	for _, f := range result.Factors.Describe() {
		fmt.Fprintf(w, "  %s %v/10 (%s)\n", p.paint("1", f.Label+":"), f.Value, f.Band)
	}
	fmt.Fprintln(w)

	if len(result.Reasons) > 0 {
		section(w, p, "Análisis:", result.Reasons)
		section(w, p, "Recomendaciones:", result.Recommendations)
	} else {
		fmt.Fprintln(w, "Estado:")
		for _, line := range wrap(risk.LowRiskStatus(), textWidth) {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintln(w)
		section(w, p, "Recomendaciones Generales:", result.Recommendations)
	}

	return r.drawChart(w, result.Factors)
}

func (r *TerminalRenderer) drawChart(w io.Writer, f risk.Factors) error {
	spec, err := r.panel.Draw(f).Spec()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Contribución al Riesgo:")
	values := spec.Data.Datasets[0].Data
	for i, label := range spec.Data.Labels {
		filled := int(values[i] / float64(spec.Options.YMax) * barWidth)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		fmt.Fprintf(w, "  %-13s %s %v\n", label, bar, values[i])
	}
	return nil
}

// section prints a titled bullet list; continuation lines are dimmed.
// Empty lists print nothing.
func section(w io.Writer, p palette, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	for _, item := range items {
		for i, line := range wrap(item, textWidth) {
			if i == 0 {
				fmt.Fprintf(w, "  • %s\n", line)
			} else {
				fmt.Fprintf(w, "    %s\n", p.paint("2", line))
			}
		}
	}
	fmt.Fprintln(w)
}

// wrap breaks s on spaces into lines of at most width runes. Words longer
// than width get a line of their own.
func wrap(s string, width int) []string {
	var (
		lines []string
		line  strings.Builder
		n     int
	)
	for _, word := range strings.Fields(s) {
		wn := utf8.RuneCountInString(word)
		if n > 0 && n+1+wn > width {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wn
	}
	if n > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
