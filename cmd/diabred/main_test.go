package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/diabred/diabred/internal/risk"
)

func TestEvaluateCmdFlags(t *testing.T) {
	cmd := newEvaluateCmd()
	f := cmd.Flags()

	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}
	sleep, _ := f.GetFloat64("sleep")
	if sleep != 8 {
		t.Errorf("default sleep = %v, want 8", sleep)
	}

	for _, flag := range []string{"hours", "sleep", "activity", "stress", "diabetes", "output"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestRunEvaluateJSON(t *testing.T) {
	var buf bytes.Buffer
	err := runEvaluate(&buf, evaluateOpts{
		hoursSinceMeal: 7,
		sleepHours:     5,
		activity:       "sedentary",
		stress:         "high",
		diabetes:       "type2",
		outputFmt:      "json",
	})
	if err != nil {
		t.Fatalf("runEvaluate: %v", err)
	}

	var out struct {
		RiskLevel string  `json:"riskLevel"`
		RiskScore float64 `json:"riskScore"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.RiskLevel != "Alto" || out.RiskScore != 7.8 {
		t.Errorf("got %s %.1f, want Alto 7.8", out.RiskLevel, out.RiskScore)
	}
}

func TestRunEvaluateRejectsOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	err := runEvaluate(&buf, evaluateOpts{hoursSinceMeal: 30, sleepHours: 8, outputFmt: "text"})

	var verr *risk.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestRunEvaluateUnknownFormat(t *testing.T) {
	if err := runEvaluate(&bytes.Buffer{}, evaluateOpts{sleepHours: 8, outputFmt: "yaml"}); err == nil {
		t.Fatal("expected error for unknown output format")
	}
}

func TestAskCmd(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"ask", "¿Qué", "es", "la", "diabetes?"})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "La diabetes mellitus") {
		t.Errorf("unexpected answer:\n%s", out)
	}
	if !strings.Contains(out, "[what-is-diabetes] Ver sección completa") {
		t.Errorf("expected action line:\n%s", out)
	}
}

func TestAskRequiresQuestion(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"ask"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error without a question")
	}
}

func TestMigrateRequiresURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"migrate"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected missing URL error, got %v", err)
	}
}
