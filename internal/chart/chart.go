// Package chart builds the factor bar chart shown next to a risk result.
// It produces a Chart.js compatible configuration; drawing it is left to
// the browser.
package chart

import (
	"errors"
	"fmt"

	"github.com/diabred/diabred/internal/risk"
)

// ErrDestroyed is returned when a destroyed chart is used again.
var ErrDestroyed = errors.New("chart: destroyed")

// Labels are the bar categories, in the order of risk.Factors.
var Labels = []string{"Alimentación", "Actividad", "Estrés", "Sueño"}

var (
	backgroundColors = []string{
		"rgba(37, 99, 235, 0.7)",
		"rgba(139, 92, 246, 0.7)",
		"rgba(245, 158, 11, 0.7)",
		"rgba(16, 185, 129, 0.7)",
	}
	borderColors = []string{
		"rgb(37, 99, 235)",
		"rgb(139, 92, 246)",
		"rgb(245, 158, 11)",
		"rgb(16, 185, 129)",
	}
)

// Spec is the serialisable chart configuration.
type Spec struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderColor     []string  `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
	BorderRadius    int       `json:"borderRadius"`
}

type Options struct {
	Responsive          bool   `json:"responsive"`
	MaintainAspectRatio bool   `json:"maintainAspectRatio"`
	Legend              bool   `json:"legend"`
	TooltipFormat       string `json:"tooltipFormat"` // %v is replaced by the bar value
	YMax                int    `json:"yMax"`
	YStep               int    `json:"yStep"`
	YTitle              string `json:"yTitle"`
	XTitle              string `json:"xTitle"`
}

// NewSpec builds the bar chart for a set of factor scores.
func NewSpec(f risk.Factors) Spec {
	return Spec{
		Type: "bar",
		Data: Data{
			Labels: append([]string(nil), Labels...),
			Datasets: []Dataset{{
				Label:           "Contribución al Riesgo",
				Data:            []float64{f.Food, f.Activity, f.Stress, f.Sleep},
				BackgroundColor: append([]string(nil), backgroundColors...),
				BorderColor:     append([]string(nil), borderColors...),
				BorderWidth:     2,
				BorderRadius:    8,
			}},
		},
		Options: Options{
			Responsive:    true,
			TooltipFormat: "Riesgo: %v/10",
			YMax:          int(risk.MaxScore),
			YStep:         2,
			YTitle:        "Nivel de Riesgo (0-10)",
			XTitle:        "Factores",
		},
	}
}

// Tooltip formats the tooltip text for the bar at index i.
func (s Spec) Tooltip(i int) (string, error) {
	if len(s.Data.Datasets) == 0 || i < 0 || i >= len(s.Data.Datasets[0].Data) {
		return "", fmt.Errorf("chart: no bar at index %d", i)
	}
	return fmt.Sprintf(s.Options.TooltipFormat, s.Data.Datasets[0].Data[i]), nil
}

// Chart is one drawn chart instance.
type Chart struct {
	spec      Spec
	destroyed bool
}

// Spec returns the configuration the chart was drawn with.
func (c *Chart) Spec() (Spec, error) {
	if c.destroyed {
		return Spec{}, ErrDestroyed
	}
	return c.spec, nil
}

// Destroy releases the chart. Destroying twice is a no-op.
func (c *Chart) Destroy() {
	c.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (c *Chart) Destroyed() bool {
	return c.destroyed
}

// Panel owns at most one live chart. Drawing replaces the previous chart,
// destroying it first. A Panel is not safe for concurrent use; each
// results view owns its own.
type Panel struct {
	current *Chart
}

// Draw destroys any chart already on the panel and draws a new one.
func (p *Panel) Draw(f risk.Factors) *Chart {
	p.Reset()
	p.current = &Chart{spec: NewSpec(f)}
	return p.current
}

// Current returns the live chart, or nil when the panel is empty.
func (p *Panel) Current() *Chart {
	return p.current
}

// Reset destroys the live chart, if any, and empties the panel.
func (p *Panel) Reset() {
	if p.current != nil {
		p.current.Destroy()
		p.current = nil
	}
}
