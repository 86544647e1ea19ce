package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/diabred/diabred/internal/risk"
	"github.com/diabred/diabred/internal/surface"
)

type evaluateOpts struct {
	hoursSinceMeal float64
	sleepHours     float64
	activity       string
	stress         string
	diabetes       string
	outputFmt      string
}

func newEvaluateCmd() *cobra.Command {
	var opts evaluateOpts

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the glycemic risk for a day's habits",
		Long: `Scores time since the last meal, physical activity, stress and sleep into
an educational risk level. This is not a medical diagnosis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Float64Var(&opts.hoursSinceMeal, "hours", risk.DefaultHoursSinceMeal, "Hours since the last meal (0-24)")
	cmd.Flags().Float64Var(&opts.sleepHours, "sleep", risk.DefaultSleepHours, "Hours slept last night (0-24)")
	cmd.Flags().StringVar(&opts.activity, "activity", string(risk.ActivityLight), "Activity level: sedentary, light, moderate or intense")
	cmd.Flags().StringVar(&opts.stress, "stress", string(risk.StressLow), "Stress level: low, moderate or high")
	cmd.Flags().StringVar(&opts.diabetes, "diabetes", string(risk.DiabetesNone), "Diabetes type: none, type1 or type2")
	cmd.Flags().StringVar(&opts.outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func runEvaluate(w io.Writer, opts evaluateOpts) error {
	renderer, err := surface.ForFormat(opts.outputFmt)
	if err != nil {
		return err
	}

	in := risk.Input{
		HoursSinceMeal: opts.hoursSinceMeal,
		SleepHours:     opts.sleepHours,
		Activity:       risk.ActivityLevel(opts.activity),
		Stress:         risk.StressLevel(opts.stress),
		Diabetes:       risk.DiabetesType(opts.diabetes),
	}
	if err := risk.Validate(in); err != nil {
		return err
	}

	return renderer.Render(w, risk.Evaluate(in))
}
