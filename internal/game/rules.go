package game

import "fmt"

// Rules holds every tunable number of the game.
type Rules struct {
	BoardSize             int     // Max opportunities in play at once
	StartingOpportunities int     // Opportunities drawn when the game starts
	ProbabilityHeart      float64 // Chance that a new card is a heart
	MaxTurns              int     // Time budget used by the punishment formula
	TurnsDiv              int     // Weight divisor for elapsed time in punishment
	MinPunishment         int     // Cards removed per opportunity on any rejection
	PunishmentDiv         int     // Divisor applied to an opportunity's punishment level
	ExpiryExponent        float64 // Power applied to the expiry draw
	ExpiryScale           float64 // Remaining time is divided by this in the expiry check
}

// DefaultRules returns the standard game numbers.
func DefaultRules() Rules {
	return Rules{
		BoardSize:             4,
		StartingOpportunities: 1,
		ProbabilityHeart:      0.4,
		MaxTurns:              10,
		TurnsDiv:              3,
		MinPunishment:         1,
		PunishmentDiv:         2,
		ExpiryExponent:        3,
		ExpiryScale:           10,
	}
}

// Validate reports the first rule that cannot drive a game.
func (r Rules) Validate() error {
	switch {
	case r.BoardSize < 1:
		return fmt.Errorf("%w: board size %d must be at least 1", ErrInvalidRules, r.BoardSize)
	case r.StartingOpportunities < 0 || r.StartingOpportunities > r.BoardSize:
		return fmt.Errorf("%w: starting opportunities %d must be within [0, %d]",
			ErrInvalidRules, r.StartingOpportunities, r.BoardSize)
	case r.ProbabilityHeart < 0 || r.ProbabilityHeart > 1:
		return fmt.Errorf("%w: heart probability %v must be within [0, 1]", ErrInvalidRules, r.ProbabilityHeart)
	case r.TurnsDiv <= 0:
		return fmt.Errorf("%w: turns divisor must be positive", ErrInvalidRules)
	case r.PunishmentDiv <= 0:
		return fmt.Errorf("%w: punishment divisor must be positive", ErrInvalidRules)
	case r.ExpiryScale <= 0:
		return fmt.Errorf("%w: expiry scale must be positive", ErrInvalidRules)
	case r.ExpiryExponent <= 0:
		return fmt.Errorf("%w: expiry exponent must be positive", ErrInvalidRules)
	}
	return nil
}
