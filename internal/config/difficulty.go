package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Cards.ProbabilityHeart = 0.5
		cfg.Board.Size = 5
		cfg.Punishment.Min = 0
	case DifficultyHard:
		cfg.Cards.ProbabilityHeart = 0.3
		cfg.Board.Size = 3
		cfg.Punishment.Min = 2
	}

	if cfg.Board.StartingOpportunities > cfg.Board.Size {
		cfg.Board.StartingOpportunities = cfg.Board.Size
	}
}
