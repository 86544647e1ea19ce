package risk

import (
	"math"
	"strings"
)

// Bounds of the numeric inputs accepted by the form.
const (
	MinHours = 0.0
	MaxHours = 24.0
)

// Defaults used when the form leaves a numeric field empty.
const (
	DefaultHoursSinceMeal = 0.0
	DefaultSleepHours     = 8.0
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid risk input: " + strings.Join(msgs, "; ")
}

// Validate checks the numeric ranges Evaluate relies on. It returns a
// *ValidationError when any field is out of range.
func Validate(in Input) error {
	var fields []FieldError
	if !inHourRange(in.HoursSinceMeal) {
		fields = append(fields, FieldError{Field: "hoursSinceMeal", Message: msgHoursSinceMeal})
	}
	if !inHourRange(in.SleepHours) {
		fields = append(fields, FieldError{Field: "sleepHours", Message: msgSleepHoursRange})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func inHourRange(v float64) bool {
	return !math.IsNaN(v) && v >= MinHours && v <= MaxHours
}
