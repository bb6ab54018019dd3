package model

// GeneticConfig holds parameters for the genetic refinement stage.
type GeneticConfig struct {
	PopulationSize  int     `json:"population_size" yaml:"population_size"`
	Cutoff          int     `json:"cutoff" yaml:"cutoff"`                     // worst candidates dropped per generation
	MutationProb    float64 `json:"mutation_prob" yaml:"mutation_prob"`       // per-cut mutation probability
	MutationStep    float64 `json:"mutation_step" yaml:"mutation_step"`       // endpoint shift per mutation, cake units
	StagnationLimit int     `json:"stagnation_limit" yaml:"stagnation_limit"` // generations without improvement before stopping
}

// DefaultGeneticConfig returns the refinement defaults.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize:  20,
		Cutoff:          6,
		MutationProb:    0.4,
		MutationStep:    0.1,
		StagnationLimit: 30,
	}
}

// Settings holds all planner configuration. Trial budgets are externally
// configurable so tests can run small and production runs can run large.
type Settings struct {
	// Matching strategy: "greedy" (default) or "hungarian".
	Strategy string `json:"strategy" yaml:"strategy"`

	// Plate feasibility.
	PlateRadius float64 `json:"plate_radius" yaml:"plate_radius"` // piece must fit a circle of this radius
	CrumbArea   float64 `json:"crumb_area" yaml:"crumb_area"`     // pieces below this area always fit

	// Cut-count search budgets.
	TrialsPerCount    int `json:"trials_per_count" yaml:"trials_per_count"`
	SpamTrials        int `json:"spam_trials" yaml:"spam_trials"`
	CoarseGranularity int `json:"coarse_granularity" yaml:"coarse_granularity"` // boundary points per edge, search pass
	FineGranularity   int `json:"fine_granularity" yaml:"fine_granularity"`     // boundary points per edge, spam pass
	EarlyExitMargin   int `json:"early_exit_margin" yaml:"early_exit_margin"`   // stop once count exceeds best by this

	// Parallelism and reproducibility. Workers <= 0 means one worker per CPU.
	Workers int   `json:"workers" yaml:"workers"`
	Seed    int64 `json:"seed" yaml:"seed"`

	Genetic GeneticConfig `json:"genetic" yaml:"genetic"`
}

// DefaultSettings returns production-quality defaults.
func DefaultSettings() Settings {
	return Settings{
		Strategy:          "greedy",
		PlateRadius:       12.5,
		CrumbArea:         0.25,
		TrialsPerCount:    200,
		SpamTrials:        2000,
		CoarseGranularity: 6,
		FineGranularity:   12,
		EarlyExitMargin:   5,
		Workers:           0,
		Seed:              42,
		Genetic:           DefaultGeneticConfig(),
	}
}
