package evolution

// Config holds one evolutionary run's tunable parameters (spec.md §4.3,
// §6's CLI surface), grounded on the teacher's evolution.EvolutionConfig.
type Config struct {
	PopulationSize     int     `json:"populationSize"`
	Generations        int     `json:"generations"`
	GamesPerEvaluation int     `json:"gamesPerEvaluation"`
	MutationRate       float64 `json:"mutationRate"`
	MutationStrength   float64 `json:"mutationStrength"`
	EliteCount         int     `json:"eliteCount"`
	TournamentSize     int     `json:"tournamentSize"`
	CheckpointInterval int     `json:"checkpointInterval"`
	MaxTurnsPerGame    int     `json:"maxTurnsPerGame"`
	OutputDir          string  `json:"outputDir"`
	Verbose            bool    `json:"verbose"`
}

// DefaultConfig mirrors the teacher's DefaultConfig: sane defaults for an
// unattended run, overridden by cmd/train's flags.
func DefaultConfig() Config {
	return Config{
		PopulationSize:     50,
		Generations:        100,
		GamesPerEvaluation: 10,
		MutationRate:       0.1,
		MutationStrength:   0.2,
		EliteCount:         5,
		TournamentSize:     3,
		CheckpointInterval: 10,
		MaxTurnsPerGame:    1000,
		OutputDir:          "output",
		Verbose:            false,
	}
}

// QuickConfig is a small preset for local iteration (spec.md §6's --quick).
func QuickConfig() Config {
	cfg := DefaultConfig()
	cfg.PopulationSize = 10
	cfg.Generations = 10
	cfg.GamesPerEvaluation = 2
	return cfg
}

// OvernightConfig is a large preset suited to an unattended multi-hour run
// (spec.md §6's --overnight).
func OvernightConfig() Config {
	cfg := DefaultConfig()
	cfg.PopulationSize = 200
	cfg.Generations = 500
	cfg.GamesPerEvaluation = 20
	return cfg
}
