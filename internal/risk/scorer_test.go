package risk

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_HealthyHabits(t *testing.T) {
	r := Evaluate(Input{HoursSinceMeal: 2, Activity: ActivityLight, Stress: StressLow, SleepHours: 8, Diabetes: DiabetesNone})

	assert.Equal(t, Factors{Food: 1, Activity: 1, Stress: 1, Sleep: 1}, r.Factors)
	assert.Equal(t, 1.0, r.AggregateScore)
	assert.Equal(t, 1.0, r.RiskScore)
	assert.Equal(t, LevelLow, r.Level)
	assert.Empty(t, r.Reasons)
	assert.Empty(t, r.Recommendations)
}

func TestEvaluate_Type1LongFastWithExercise(t *testing.T) {
	r := Evaluate(Input{HoursSinceMeal: 7, Activity: ActivityIntense, Stress: StressHigh, SleepHours: 3, Diabetes: DiabetesType1})

	assert.Equal(t, Factors{Food: 8, Activity: 7, Stress: 8, Sleep: 9}, r.Factors)
	assert.Equal(t, 8.0, r.AggregateScore)
	assert.Equal(t, LevelHigh, r.Level)
	assert.Equal(t, 10.0, r.RiskScore)
	assert.Equal(t, []string{
		reasonType1LongFast,
		reasonFastingExercise,
		reasonSleepStress,
		reasonHighAggregate,
	}, r.Reasons)
	assert.Equal(t, []string{
		recType1LongFast,
		recFastingExercise,
		recSleepStress,
		recMoreSleep,
		recRelaxation,
		recFrequentMeals,
	}, r.Recommendations)
}

func TestEvaluate_FastingWithModerateExercise(t *testing.T) {
	r := Evaluate(Input{HoursSinceMeal: 5, Activity: ActivityModerate, Stress: StressModerate, SleepHours: 7, Diabetes: DiabetesNone})

	assert.Equal(t, Factors{Food: 6, Activity: 5, Stress: 4, Sleep: 2}, r.Factors)
	assert.Equal(t, 4.3, r.AggregateScore)
	assert.Equal(t, 5.3, r.RiskScore)
	assert.Equal(t, LevelModerate, r.Level)
	assert.Equal(t, []string{reasonFastingExercise}, r.Reasons)
	assert.Equal(t, []string{recFastingExercise}, r.Recommendations)
}

func TestEvaluate_Type2SedentaryLowStressStaysLow(t *testing.T) {
	r := Evaluate(Input{HoursSinceMeal: 0, Activity: ActivitySedentary, Stress: StressLow, SleepHours: 8, Diabetes: DiabetesType2})

	assert.Equal(t, Factors{Food: 1, Activity: 2, Stress: 1, Sleep: 1}, r.Factors)
	assert.Equal(t, 1.3, r.AggregateScore)
	assert.Equal(t, LevelLow, r.Level)
	assert.Empty(t, r.Reasons)
	assert.Equal(t, []string{recDailyActivity}, r.Recommendations)
}

// Type 1 with a 4-6h fast and exercise collects both the type 1 increment
// and the general fasting+exercise increment for the same condition.
func TestEvaluate_Type1FastingExerciseDoubleCount(t *testing.T) {
	r := Evaluate(Input{HoursSinceMeal: 5, Activity: ActivityModerate, Stress: StressLow, SleepHours: 8, Diabetes: DiabetesType1})

	assert.Equal(t, 3.3, r.AggregateScore)
	assert.Equal(t, 5.8, r.RiskScore, "3.25 + 1.5 + 1")
	assert.Equal(t, LevelHigh, r.Level)
	assert.Equal(t, []string{reasonType1FastingExercise, reasonFastingExercise}, r.Reasons)
	assert.Equal(t, []string{recType1FastingExercise, recFastingExercise}, r.Recommendations)
}

func TestEvaluate_Type1LongFastLightActivity(t *testing.T) {
	r := Evaluate(Input{HoursSinceMeal: 9, Activity: ActivityLight, Stress: StressLow, SleepHours: 8, Diabetes: DiabetesType1})

	assert.Equal(t, []string{reasonType1LongFast}, r.Reasons)
	assert.Equal(t, LevelHigh, r.Level)
	assert.Equal(t, 5.3, r.RiskScore, "3.25 + 2")
}

func TestEvaluate_Type2SedentaryHighStress(t *testing.T) {
	r := Evaluate(Input{HoursSinceMeal: 0, Activity: ActivitySedentary, Stress: StressHigh, SleepHours: 8, Diabetes: DiabetesType2})

	assert.Equal(t, 3.0, r.AggregateScore)
	assert.Equal(t, 3.5, r.RiskScore)
	assert.Equal(t, LevelModerate, r.Level)
	assert.Equal(t, []string{reasonType2Sedentary}, r.Reasons)
	assert.Equal(t, []string{recType2Sedentary, recRelaxation, recDailyActivity}, r.Recommendations)
}

func TestEvaluate_AggregatePromotesToModerate(t *testing.T) {
	r := Evaluate(Input{HoursSinceMeal: 10, Activity: "unknown", Stress: StressModerate, SleepHours: 4.5, Diabetes: DiabetesNone})

	assert.Equal(t, Factors{Food: 10, Activity: 3, Stress: 4, Sleep: 7}, r.Factors)
	assert.Equal(t, 6.0, r.AggregateScore)
	assert.Equal(t, 6.0, r.RiskScore)
	assert.Equal(t, LevelModerate, r.Level)
	assert.Equal(t, []string{reasonCombinedFactors}, r.Reasons)
	assert.Equal(t, []string{recMoreSleep, recFrequentMeals}, r.Recommendations)
}

func TestEvaluate_AdjustedScorePromotesToHigh(t *testing.T) {
	r := Evaluate(Input{HoursSinceMeal: 10, Activity: ActivityLight, Stress: StressHigh, SleepHours: 2, Diabetes: DiabetesNone})

	assert.Equal(t, 7.0, r.AggregateScore)
	assert.Equal(t, 8.0, r.RiskScore)
	assert.Equal(t, LevelHigh, r.Level)
	assert.Equal(t, []string{reasonSleepStress, reasonHighAggregate}, r.Reasons)
}

// Unknown categorical values score a mid-range 3 instead of failing.
func TestEvaluate_UnknownCategoriesDefault(t *testing.T) {
	r := Evaluate(Input{HoursSinceMeal: 1, Activity: "parkour", Stress: "zen", SleepHours: 9})

	assert.Equal(t, 3.0, r.Factors.Activity)
	assert.Equal(t, 3.0, r.Factors.Stress)
}

func TestScoreFactors_Thresholds(t *testing.T) {
	tests := []struct {
		hours, sleep  float64
		food, sleepSc float64
	}{
		{0, 24, 1, 1},
		{2, 8, 1, 1},
		{2.01, 7.99, 3, 2},
		{4, 7, 3, 2},
		{4.5, 6.99, 6, 5},
		{6, 6, 6, 5},
		{6.5, 5.99, 8, 7},
		{8, 4, 8, 7},
		{8.1, 3.99, 10, 9},
		{24, 0, 10, 9},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("meal=%v sleep=%v", tt.hours, tt.sleep), func(t *testing.T) {
			f := ScoreFactors(Input{HoursSinceMeal: tt.hours, SleepHours: tt.sleep})
			assert.Equal(t, tt.food, f.Food)
			assert.Equal(t, tt.sleepSc, f.Sleep)
		})
	}
}

func TestEvaluate_Invariants(t *testing.T) {
	activities := []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityIntense, "other"}
	stresses := []StressLevel{StressLow, StressModerate, StressHigh, "other"}
	types := []DiabetesType{DiabetesNone, DiabetesType1, DiabetesType2}
	hours := []float64{0, 1.5, 3, 4.5, 5, 6.5, 7, 9, 12, 24}

	for _, a := range activities {
		for _, s := range stresses {
			for _, d := range types {
				for _, h := range hours {
					for _, sl := range hours {
						in := Input{HoursSinceMeal: h, SleepHours: sl, Activity: a, Stress: s, Diabetes: d}
						r := Evaluate(in)

						for _, v := range []float64{r.Factors.Food, r.Factors.Activity, r.Factors.Stress, r.Factors.Sleep} {
							require.True(t, v >= 0 && v <= MaxScore, "factor out of range for %+v", in)
						}
						require.Equal(t, roundTenth(r.Factors.Mean()), r.AggregateScore, "%+v", in)
						require.GreaterOrEqual(t, r.RiskScore, r.AggregateScore, "%+v", in)
						require.LessOrEqual(t, r.RiskScore, MaxScore, "%+v", in)
						if r.AggregateScore >= highScoreThreshold || r.RiskScore >= highScoreThreshold {
							require.Equal(t, LevelHigh, r.Level, "%+v", in)
						}
						require.Equal(t, r, Evaluate(in), "evaluation must be deterministic")
					}
				}
			}
		}
	}
}

func TestLevel_Raise(t *testing.T) {
	assert.Equal(t, LevelHigh, LevelHigh.raise(LevelModerate))
	assert.Equal(t, LevelModerate, LevelLow.raise(LevelModerate))
	assert.Equal(t, LevelHigh, LevelModerate.raise(LevelHigh))
	assert.True(t, LevelHigh.atLeast(LevelModerate))
	assert.False(t, LevelLow.atLeast(LevelModerate))
	assert.Equal(t, LevelModerate, LevelModerate.raise(LevelModerate))
}

func TestRoundTenth(t *testing.T) {
	assert.Equal(t, 4.3, roundTenth(4.25))
	assert.Equal(t, 5.3, roundTenth(5.25))
	assert.Equal(t, 1.0, roundTenth(1))
	assert.Equal(t, 0.0, roundTenth(0.04))
	assert.False(t, math.IsNaN(roundTenth(9.999)))
}
