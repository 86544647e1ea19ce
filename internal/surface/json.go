package surface

import (
	"encoding/json"
	"io"

	"github.com/diabred/diabred/internal/chart"
	"github.com/diabred/diabred/internal/risk"
)

// JSONRenderer marshals the result, its factor bands and chart to indented JSON.
type JSONRenderer struct{}

type jsonView struct {
	risk.Result
	FactorDescriptions []risk.FactorDescription `json:"factorDescriptions"`
	Chart              chart.Spec               `json:"chart"`
}

func (r *JSONRenderer) Render(w io.Writer, result risk.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonView{
		Result:             result,
		FactorDescriptions: result.Factors.Describe(),
		Chart:              chart.NewSpec(result.Factors),
	})
}
