package evolution

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CheckpointVersion is the only checkpoint schema version this trainer
// accepts (spec.md §6: "the implementer MUST reject any checkpoint whose
// version ≠ 1" — an integer, unlike the teacher's string "1.0").
const CheckpointVersion = 1

// ErrCheckpointUnsupportedVersion is returned by LoadCheckpoint when the
// file's version field doesn't match CheckpointVersion (spec.md §7).
var ErrCheckpointUnsupportedVersion = errors.New("evolution: unsupported checkpoint version")

// Checkpoint is the atomically-persisted training snapshot (spec.md §6).
type Checkpoint struct {
	Version           int              `json:"version"`
	Config            Config           `json:"config"`
	CurrentGeneration int              `json:"currentGeneration"`
	BestIndividual    *Individual      `json:"bestIndividual"`
	AllTimeBest       *Individual      `json:"allTimeBest"`
	Population        []*Individual    `json:"population"`
	GenerationHistory []GenerationStat `json:"generationHistory"`
	StartTime         time.Time        `json:"startTime"`
	TotalGamesPlayed  int              `json:"totalGamesPlayed"`
}

// SaveCheckpoint serializes cp to path via a temp-file write plus atomic
// rename, grounded on the teacher's evolution/checkpoint.go SaveCheckpoint.
func SaveCheckpoint(path string, cp Checkpoint) error {
	cp.Version = CheckpointVersion

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create checkpoint directory: %w", err)
	}

	data, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal checkpoint: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("write checkpoint: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("finalize checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads and validates a checkpoint file, rejecting any
// version other than CheckpointVersion.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checkpoint: %w", err)
	}

	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, fmt.Errorf("unmarshal checkpoint: %w", err)
	}
	if cp.Version != CheckpointVersion {
		return nil, fmt.Errorf("checkpoint version %d: %w", cp.Version, ErrCheckpointUnsupportedVersion)
	}
	return &cp, nil
}
