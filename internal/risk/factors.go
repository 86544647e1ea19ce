package risk

// defaultCategoryScore is used for activity or stress values outside the
// known enums. The scorer stays total instead of failing on them.
const defaultCategoryScore = 3

func foodScore(hoursSinceMeal float64) float64 {
	switch {
	case hoursSinceMeal <= 2:
		return 1
	case hoursSinceMeal <= 4:
		return 3
	case hoursSinceMeal <= 6:
		return 6
	case hoursSinceMeal <= 8:
		return 8
	default:
		return 10
	}
}

func activityScore(level ActivityLevel) float64 {
	switch level {
	case ActivitySedentary:
		return 2
	case ActivityLight:
		return 1
	case ActivityModerate:
		return 5
	case ActivityIntense:
		return 7
	default:
		return defaultCategoryScore
	}
}

func stressScore(level StressLevel) float64 {
	switch level {
	case StressLow:
		return 1
	case StressModerate:
		return 4
	case StressHigh:
		return 8
	default:
		return defaultCategoryScore
	}
}

func sleepScore(sleepHours float64) float64 {
	switch {
	case sleepHours >= 8:
		return 1
	case sleepHours >= 7:
		return 2
	case sleepHours >= 6:
		return 5
	case sleepHours >= 4:
		return 7
	default:
		return 9
	}
}

// ScoreFactors computes the per-factor table lookups for in.
func ScoreFactors(in Input) Factors {
	return Factors{
		Food:     foodScore(in.HoursSinceMeal),
		Activity: activityScore(in.Activity),
		Stress:   stressScore(in.Stress),
		Sleep:    sleepScore(in.SleepHours),
	}
}
