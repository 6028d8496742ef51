// Package config provides YAML-based game configuration loading and
// difficulty presets for flirt.
package config

import (
	"fmt"

	"github.com/vovakirdan/flirt/internal/game"
)

// Config contains all tunable numbers of a game.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Cards      CardsConfig      `yaml:"cards"`
	Timing     TimingConfig     `yaml:"timing"`
	Punishment PunishmentConfig `yaml:"punishment"`
}

// BoardConfig defines how many opportunities can be in play.
type BoardConfig struct {
	Size                  int `yaml:"size"`                   // Max concurrent opportunities
	StartingOpportunities int `yaml:"starting_opportunities"` // Initial board fill
}

// CardsConfig defines how cards are drawn.
type CardsConfig struct {
	ProbabilityHeart float64 `yaml:"probability_heart"`
}

// TimingConfig defines expiry odds and the time weight of punishment.
type TimingConfig struct {
	MaxTurns       int     `yaml:"max_turns"`
	TurnsDiv       int     `yaml:"turns_div"`
	ExpiryExponent float64 `yaml:"expiry_exponent"`
	ExpiryScale    float64 `yaml:"expiry_scale"`
}

// PunishmentConfig defines how hard a rejection hits the board.
type PunishmentConfig struct {
	Min int `yaml:"min"`
	Div int `yaml:"div"`
}

// Rules converts the config into engine rules.
func (c Config) Rules() game.Rules {
	return game.Rules{
		BoardSize:             c.Board.Size,
		StartingOpportunities: c.Board.StartingOpportunities,
		ProbabilityHeart:      c.Cards.ProbabilityHeart,
		MaxTurns:              c.Timing.MaxTurns,
		TurnsDiv:              c.Timing.TurnsDiv,
		MinPunishment:         c.Punishment.Min,
		PunishmentDiv:         c.Punishment.Div,
		ExpiryExponent:        c.Timing.ExpiryExponent,
		ExpiryScale:           c.Timing.ExpiryScale,
	}
}

// Validate reports whether the config can drive a game.
func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
