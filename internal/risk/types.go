// Package risk implements the DIABRED educational glycemic risk predictor.
// It maps a handful of lifestyle inputs through a fixed scoring table into
// a risk level, a 0-10 score and the reasons and recommendations behind it.
package risk

// ActivityLevel is the self-reported physical activity of the day.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityIntense   ActivityLevel = "intense"
)

// StressLevel is the self-reported stress of the day.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
)

// DiabetesType is the diagnosis the user reports, if any.
type DiabetesType string

const (
	DiabetesNone  DiabetesType = "none"
	DiabetesType1 DiabetesType = "type1"
	DiabetesType2 DiabetesType = "type2"
)

// Level is the ordinal risk classification. Bajo < Moderado < Alto.
type Level string

const (
	LevelLow      Level = "Bajo"
	LevelModerate Level = "Moderado"
	LevelHigh     Level = "Alto"
)

func (l Level) rank() int {
	switch l {
	case LevelHigh:
		return 2
	case LevelModerate:
		return 1
	default:
		return 0
	}
}

func (l Level) atLeast(other Level) bool {
	return l.rank() >= other.rank()
}

// raise returns the higher of l and to. Levels are never lowered.
func (l Level) raise(to Level) Level {
	if l.atLeast(to) {
		return l
	}
	return to
}

// Input is one evaluation request. Callers validate the numeric ranges
// with Validate before calling Evaluate.
type Input struct {
	HoursSinceMeal float64       `json:"hoursSinceMeal"`
	SleepHours     float64       `json:"sleepHours"`
	Activity       ActivityLevel `json:"activityLevel"`
	Stress         StressLevel   `json:"stressLevel"`
	Diabetes       DiabetesType  `json:"diabetesType"`
}

// Factors holds the independent 0-10 contribution of each lifestyle factor.
type Factors struct {
	Food     float64 `json:"food"`
	Activity float64 `json:"activity"`
	Stress   float64 `json:"stress"`
	Sleep    float64 `json:"sleep"`
}

// Mean is the unweighted average of the four factors.
func (f Factors) Mean() float64 {
	return (f.Food + f.Activity + f.Stress + f.Sleep) / 4
}

// Result is the complete output of one evaluation. Immutable once computed.
type Result struct {
	Factors         Factors  `json:"factors"`
	Level           Level    `json:"riskLevel"`
	RiskScore       float64  `json:"riskScore"`      // aggregate plus adjustments, clamped to 10
	AggregateScore  float64  `json:"aggregateScore"` // mean of the factors
	Reasons         []string `json:"reasons"`
	Recommendations []string `json:"recommendations"`
}

// MaxScore is the upper bound of every factor and of the risk score.
const MaxScore = 10.0
