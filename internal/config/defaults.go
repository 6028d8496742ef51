package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultConfig returns the default game configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Size:                  4,
			StartingOpportunities: 1,
		},
		Cards: CardsConfig{
			ProbabilityHeart: 0.4,
		},
		Timing: TimingConfig{
			MaxTurns:       10,
			TurnsDiv:       3,
			ExpiryExponent: 3,
			ExpiryScale:    10,
		},
		Punishment: PunishmentConfig{
			Min: 1,
			Div: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
