package euchre

import (
	"fmt"

	"euchre-lite/card"
)

type Config struct {
	// Score a team must reach to win the game (0 => 10).
	WinningScore int

	// How many times an illegal answer is re-solicited from the same agent
	// before the query fails with IllegalMoveError (0 => 3).
	MaxSolicits int

	// RNG seed (0 => time-based)
	Seed int64

	// Test hooks: fixed first dealer and a stacked deck in deal order.
	ForcedDealerSeat *int
	DeckOverride     []card.Card
}

func (c Config) validate() error {
	if c.WinningScore < 0 {
		return fmt.Errorf("WinningScore must be >= 0")
	}
	if c.MaxSolicits < 0 {
		return fmt.Errorf("MaxSolicits must be >= 0")
	}
	if c.ForcedDealerSeat != nil && (*c.ForcedDealerSeat < 0 || *c.ForcedDealerSeat >= NumSeats) {
		return fmt.Errorf("ForcedDealerSeat must be in [0,%d)", NumSeats)
	}
	if c.DeckOverride != nil {
		if err := validateDeckOverride(c.DeckOverride); err != nil {
			return err
		}
	}
	return nil
}

// validateDeckOverride 校验牌堆覆盖：必须恰好是 24 张不重复的 euchre 牌
func validateDeckOverride(cards []card.Card) error {
	if len(cards) != len(EuchreCards) {
		return fmt.Errorf("DeckOverride must contain %d cards, got %d", len(EuchreCards), len(cards))
	}
	seen := make(map[card.Card]bool, len(cards))
	valid := make(map[card.Card]bool, len(EuchreCards))
	for _, c := range EuchreCards {
		valid[c] = true
	}
	for _, c := range cards {
		if !valid[c] {
			return fmt.Errorf("DeckOverride contains non-euchre card %v", c)
		}
		if seen[c] {
			return fmt.Errorf("DeckOverride contains duplicate card %v", c)
		}
		seen[c] = true
	}
	return nil
}
