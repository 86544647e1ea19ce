package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/diabred/diabred/internal/chart"
	"github.com/diabred/diabred/internal/risk"
	"github.com/diabred/diabred/internal/store"
)

// formNumber accepts a JSON number or a numeric string, as sent by the
// site's form. Empty strings and null leave it unset; unparsable strings
// become NaN so validation rejects them.
type formNumber struct {
	set   bool
	value float64
}

func (n *formNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		n.set, n.value = true, f
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected number or numeric string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f = math.NaN()
	}
	n.set, n.value = true, f
	return nil
}

func (n formNumber) or(fallback float64) float64 {
	if !n.set {
		return fallback
	}
	return n.value
}

type evaluateRequest struct {
	HoursSinceMeal formNumber `json:"hoursSinceMeal"`
	SleepHours     formNumber `json:"sleepHours"`
	ActivityLevel  string     `json:"activityLevel"`
	StressLevel    string     `json:"stressLevel"`
	DiabetesType   string     `json:"diabetesType"`
}

func (r evaluateRequest) input() risk.Input {
	return risk.Input{
		HoursSinceMeal: r.HoursSinceMeal.or(risk.DefaultHoursSinceMeal),
		SleepHours:     r.SleepHours.or(risk.DefaultSleepHours),
		Activity:       risk.ActivityLevel(strings.TrimSpace(r.ActivityLevel)),
		Stress:         risk.StressLevel(strings.TrimSpace(r.StressLevel)),
		Diabetes:       risk.DiabetesType(strings.TrimSpace(r.DiabetesType)),
	}
}

type evaluationView struct {
	ID                 string                   `json:"id,omitempty"`
	Result             risk.Result              `json:"result"`
	Color              string                   `json:"color"`
	FactorDescriptions []risk.FactorDescription `json:"factorDescriptions"`
	Status             string                   `json:"status,omitempty"`
	Chart              chart.Spec               `json:"chart"`
}

func newEvaluationView(id string, res risk.Result) evaluationView {
	v := evaluationView{
		ID:                 id,
		Result:             res,
		Color:              res.Level.Color(),
		FactorDescriptions: res.Factors.Describe(),
		Chart:              chart.NewSpec(res.Factors),
	}
	if len(res.Reasons) == 0 {
		v.Status = risk.LowRiskStatus()
	}
	return v
}

func (s *server) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	in := req.input()
	if err := risk.Validate(in); err != nil {
		var verr *risk.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation_failed", "details": verr.Fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := risk.Evaluate(in)
	s.metrics.ObserveEvaluation(string(res.Level))

	var id string
	if s.evaluations != nil {
		e := store.NewEvaluation(in, res)
		if err := s.evaluations.Save(c.Request.Context(), e); err != nil {
			// Persistence failures do not fail the evaluation.
			s.logger.Error("save evaluation", "error", err)
		} else {
			id = e.ID.String()
		}
	}

	c.JSON(http.StatusOK, newEvaluationView(id, res))
}

func (s *server) listEvaluations(c *gin.Context) {
	if s.evaluations == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage disabled"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	evals, err := s.evaluations.Recent(c.Request.Context(), store.ClampLimit(limit))
	if err != nil {
		s.logger.Error("list evaluations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluations": evals})
}

func (s *server) getEvaluation(c *gin.Context) {
	if s.evaluations == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage disabled"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	e, err := s.evaluations.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		s.logger.Error("get evaluation", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluation": e, "view": newEvaluationView(e.ID.String(), e.Result)})
}
