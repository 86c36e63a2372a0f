package evolution

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/beauBalthazarBruneau/Solitario-Russo/ai"
)

// WeightsFile is the self-describing exported-individual record (spec.md
// §6: "{version, timestamp, fitness, weights: {featureName: number, …}}").
type WeightsFile struct {
	Version   int        `json:"version"`
	Timestamp time.Time  `json:"timestamp"`
	Fitness   float64    `json:"fitness"`
	Weights   ai.Weights `json:"weights"`
}

// SaveWeightsFile writes ind's weights to path in the canonical JSON shape.
func SaveWeightsFile(path string, ind *Individual, timestamp time.Time) error {
	wf := WeightsFile{
		Version:   CheckpointVersion,
		Timestamp: timestamp,
		Fitness:   ind.Fitness,
		Weights:   ind.Weights,
	}
	data, err := json.MarshalIndent(wf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal weights file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write weights file: %w", err)
	}
	return nil
}

// LoadWeightsFile reads a weights file produced by SaveWeightsFile.
func LoadWeightsFile(path string) (*WeightsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights file: %w", err)
	}
	var wf WeightsFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("unmarshal weights file: %w", err)
	}
	return &wf, nil
}
