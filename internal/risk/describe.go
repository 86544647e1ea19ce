package risk

import "strings"

// FactorBand labels a single factor value for display.
func FactorBand(value float64) string {
	switch {
	case value <= 2:
		return "Óptimo"
	case value <= 4:
		return "Bueno"
	case value <= 6:
		return "Moderado"
	case value <= 8:
		return "Alto"
	default:
		return "Muy Alto"
	}
}

// FactorDescription is one row of the "Factores Contribuyentes" list.
type FactorDescription struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Band  string  `json:"band"`
}

// Describe lists the factors in display order with their bands.
func (f Factors) Describe() []FactorDescription {
	rows := []struct {
		key, label string
		value      float64
	}{
		{"food", "Alimentación", f.Food},
		{"activity", "Actividad Física", f.Activity},
		{"stress", "Estrés", f.Stress},
		{"sleep", "Sueño", f.Sleep},
	}
	out := make([]FactorDescription, 0, len(rows))
	for _, r := range rows {
		out = append(out, FactorDescription{Key: r.key, Label: r.label, Value: r.value, Band: FactorBand(r.value)})
	}
	return out
}

// Color returns the hex color the site uses for a risk level badge.
func (l Level) Color() string {
	switch strings.ToLower(string(l)) {
	case "alto":
		return "#ef4444"
	case "moderado":
		return "#f59e0b"
	case "bajo":
		return "#10b981"
	default:
		return "#6b7280"
	}
}
