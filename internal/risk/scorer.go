package risk

import (
	"github.com/shopspring/decimal"
)

// adjustment is one conditional rule applied after the aggregate score.
// A firing rule raises the level to at least Floor, adds Increment to the
// risk score and records its reason and recommendation.
type adjustment struct {
	ID             string
	Floor          Level
	Increment      float64
	Reason         string
	Recommendation string
	When           func(in Input) bool
}

// adjustments run in this order. They are not mutually exclusive.
var adjustments = []adjustment{
	{
		ID:             "type1_long_fast",
		Floor:          LevelHigh,
		Increment:      2,
		Reason:         reasonType1LongFast,
		Recommendation: recType1LongFast,
		When: func(in Input) bool {
			return in.Diabetes == DiabetesType1 && in.HoursSinceMeal > 6
		},
	},
	{
		// Only reachable when type1_long_fast did not fire.
		ID:             "type1_fasting_exercise",
		Floor:          LevelHigh,
		Increment:      1.5,
		Reason:         reasonType1FastingExercise,
		Recommendation: recType1FastingExercise,
		When: func(in Input) bool {
			return in.Diabetes == DiabetesType1 && in.HoursSinceMeal > 4 && in.HoursSinceMeal <= 6 && in.exercising()
		},
	},
	{
		// Fires for type 1 as well, on top of the rules above.
		ID:             "fasting_exercise",
		Floor:          LevelModerate,
		Increment:      1,
		Reason:         reasonFastingExercise,
		Recommendation: recFastingExercise,
		When: func(in Input) bool {
			return in.HoursSinceMeal > 4 && in.exercising()
		},
	},
	{
		ID:             "sleep_stress",
		Floor:          LevelModerate,
		Increment:      1,
		Reason:         reasonSleepStress,
		Recommendation: recSleepStress,
		When: func(in Input) bool {
			return in.SleepHours < 6 && in.Stress == StressHigh
		},
	},
	{
		ID:             "type2_sedentary_stress",
		Floor:          LevelModerate,
		Increment:      0.5,
		Reason:         reasonType2Sedentary,
		Recommendation: recType2Sedentary,
		When: func(in Input) bool {
			return in.Diabetes == DiabetesType2 && in.Activity == ActivitySedentary && in.Stress == StressHigh
		},
	},
}

// supplementary recommendations are appended whether or not any rule fired.
var supplementary = []struct {
	Text string
	When func(in Input) bool
}{
	{recMoreSleep, func(in Input) bool { return in.SleepHours < 6 }},
	{recRelaxation, func(in Input) bool { return in.Stress == StressHigh }},
	{recDailyActivity, func(in Input) bool { return in.Activity == ActivitySedentary }},
	{recFrequentMeals, func(in Input) bool { return in.HoursSinceMeal > 6 }},
}

const (
	moderateAggregateThreshold = 6.0
	highScoreThreshold         = 7.5
)

func (in Input) exercising() bool {
	return in.Activity == ActivityModerate || in.Activity == ActivityIntense
}

// Evaluate scores in and classifies the resulting risk. It has no side
// effects and is safe for concurrent use.
func Evaluate(in Input) Result {
	factors := ScoreFactors(in)
	aggregate := factors.Mean()

	level := LevelLow
	score := aggregate
	reasons := []string{}
	recommendations := []string{}

	for _, adj := range adjustments {
		if !adj.When(in) {
			continue
		}
		level = level.raise(adj.Floor)
		score = clamp(score + adj.Increment)
		reasons = append(reasons, adj.Reason)
		recommendations = append(recommendations, adj.Recommendation)
	}

	if level == LevelLow && aggregate >= moderateAggregateThreshold {
		level = LevelModerate
		reasons = append(reasons, reasonCombinedFactors)
	}

	if aggregate >= highScoreThreshold || score >= highScoreThreshold {
		level = level.raise(LevelHigh)
		reasons = append(reasons, reasonHighAggregate)
	}

	for _, s := range supplementary {
		if s.When(in) {
			recommendations = append(recommendations, s.Text)
		}
	}

	return Result{
		Factors:         factors,
		Level:           level,
		RiskScore:       roundTenth(score),
		AggregateScore:  roundTenth(aggregate),
		Reasons:         reasons,
		Recommendations: recommendations,
	}
}

func clamp(score float64) float64 {
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// roundTenth rounds half away from zero to one decimal place.
func roundTenth(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
