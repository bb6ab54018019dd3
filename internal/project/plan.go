// Package project persists solved cut plans: plain JSON files for working
// storage and compressed archives for sharing.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sliceforge/cakecut/internal/model"
)

// Plan is a named, saved cut-planning run: the problem, the settings it ran
// with and the solution it produced.
type Plan struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CreatedAt  string          `json:"created_at"`
	CakeWidth  float64         `json:"cake_width"`
	CakeLength float64         `json:"cake_length"`
	Tolerance  float64         `json:"tolerance"`
	Requests   []model.Request `json:"requests"`
	Settings   model.Settings  `json:"settings"`
	Solution   *model.Solution `json:"solution,omitempty"`
}

// NewPlan builds a plan with a fresh id and creation timestamp.
func NewPlan(name string, width, length, tolerance float64, requests []model.Request, settings model.Settings) Plan {
	return Plan{
		ID:         uuid.New().String()[:8],
		Name:       name,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		CakeWidth:  width,
		CakeLength: length,
		Tolerance:  tolerance,
		Requests:   requests,
		Settings:   settings,
	}
}

// DefaultPlansDir returns the default directory for saved plans.
// On all platforms this is ~/.cakecut/
func DefaultPlansDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cakecut")
}

// SavePlan persists a plan to the given path as JSON.
// It creates any missing parent directories automatically.
func SavePlan(path string, plan Plan) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPlan reads a plan from the given path.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	var plan Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return Plan{}, err
	}
	// Ensure Requests is never nil
	if plan.Requests == nil {
		plan.Requests = []model.Request{}
	}
	return plan, nil
}
