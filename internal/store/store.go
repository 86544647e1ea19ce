// Package store persists risk evaluations in PostgreSQL.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diabred/diabred/internal/risk"
)

// ErrNotFound is returned when an evaluation does not exist.
var ErrNotFound = errors.New("store: evaluation not found")

// MaxRecent caps how many evaluations Recent returns.
const MaxRecent = 100

// Evaluation is one stored scorer run.
type Evaluation struct {
	ID        uuid.UUID   `json:"id"`
	Input     risk.Input  `json:"input"`
	Result    risk.Result `json:"result"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewEvaluation wraps a scorer run with a fresh id and timestamp.
func NewEvaluation(in risk.Input, res risk.Result) Evaluation {
	return Evaluation{
		ID:        uuid.New(),
		Input:     in,
		Result:    res,
		CreatedAt: time.Now().UTC(),
	}
}

// Connect opens a pool to url and verifies it with a ping.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

// Store reads and writes evaluations.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store over pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Save inserts an evaluation.
func (s *Store) Save(ctx context.Context, e Evaluation) error {
	f := e.Result.Factors
	_, err := s.pool.Exec(ctx, `
		INSERT INTO evaluations (
			id, hours_since_meal, sleep_hours, activity_level, stress_level, diabetes_type,
			food_score, activity_score, stress_score, sleep_score,
			risk_level, risk_score, aggregate_score, reasons, recommendations, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, e.ID, e.Input.HoursSinceMeal, e.Input.SleepHours,
		string(e.Input.Activity), string(e.Input.Stress), string(e.Input.Diabetes),
		f.Food, f.Activity, f.Stress, f.Sleep,
		string(e.Result.Level), e.Result.RiskScore, e.Result.AggregateScore,
		e.Result.Reasons, e.Result.Recommendations, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

const selectEvaluation = `
	SELECT id, hours_since_meal, sleep_hours, activity_level, stress_level, diabetes_type,
		food_score, activity_score, stress_score, sleep_score,
		risk_level, risk_score, aggregate_score, reasons, recommendations, created_at
	FROM evaluations`

// Get retrieves one evaluation by id.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Evaluation, error) {
	row := s.pool.QueryRow(ctx, selectEvaluation+` WHERE id = $1`, id)
	e, err := scanEvaluation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Evaluation{}, ErrNotFound
	}
	if err != nil {
		return Evaluation{}, fmt.Errorf("get evaluation: %w", err)
	}
	return e, nil
}

// Recent returns up to limit evaluations, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Evaluation, error) {
	limit = ClampLimit(limit)

	rows, err := s.pool.Query(ctx, selectEvaluation+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	out := []Evaluation{}
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}
	return out, nil
}

// ClampLimit bounds a requested page size to [1, MaxRecent], defaulting
// to 20.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return 20
	case limit > MaxRecent:
		return MaxRecent
	default:
		return limit
	}
}

func scanEvaluation(row pgx.Row) (Evaluation, error) {
	var (
		e                              Evaluation
		activity, stress, dtype, level string
	)
	err := row.Scan(
		&e.ID, &e.Input.HoursSinceMeal, &e.Input.SleepHours, &activity, &stress, &dtype,
		&e.Result.Factors.Food, &e.Result.Factors.Activity, &e.Result.Factors.Stress, &e.Result.Factors.Sleep,
		&level, &e.Result.RiskScore, &e.Result.AggregateScore, &e.Result.Reasons, &e.Result.Recommendations,
		&e.CreatedAt,
	)
	if err != nil {
		return Evaluation{}, err
	}
	e.Input.Activity = risk.ActivityLevel(activity)
	e.Input.Stress = risk.StressLevel(stress)
	e.Input.Diabetes = risk.DiabetesType(dtype)
	e.Result.Level = risk.Level(level)
	return e, nil
}
