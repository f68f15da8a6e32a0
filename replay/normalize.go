package replay

import (
	"fmt"
	"math/rand"
	"strings"

	"euchre-lite/card"
	"euchre-lite/euchre"
)

const (
	queryCallTrump   = "call_trump"
	queryChooseTrump = "choose_trump"
	queryReplaceCard = "replace_card"
	queryGoAlone     = "go_alone"
	queryPlayCard    = "play_card"
)

type normalizedDecision struct {
	query string
	seat  int
	call  bool
	suit  card.Suit
	card  card.Card
}

type normalizedSpec struct {
	dealerSeat int
	names      [euchre.NumSeats]string
	deck       []card.Card
	decisions  []normalizedDecision
	seed       int64
}

func normalizeSpec(spec HandSpec) (normalizedSpec, error) {
	var out normalizedSpec
	out.dealerSeat = spec.DealerSeat
	out.seed = seedFromSpec(spec.RNG)

	if out.dealerSeat < 0 || out.dealerSeat >= euchre.NumSeats {
		return out, &ReplayError{StepIndex: -1, Reason: "invalid_dealer", Message: "dealer_seat out of range"}
	}

	for i := range out.names {
		out.names[i] = defaultSeatName(i)
	}
	handConstraints := make(map[int]card.CardList, len(spec.Seats))
	seen := make(map[int]struct{}, len(spec.Seats))
	for i, seat := range spec.Seats {
		if seat.Seat < 0 || seat.Seat >= euchre.NumSeats {
			return out, &ReplayError{StepIndex: -1, Reason: "invalid_seat", Message: fmt.Sprintf("seats[%d] out of range", i)}
		}
		if _, dup := seen[seat.Seat]; dup {
			return out, &ReplayError{StepIndex: -1, Reason: "duplicate_seat", Message: fmt.Sprintf("duplicate seat %d", seat.Seat)}
		}
		seen[seat.Seat] = struct{}{}
		if name := strings.TrimSpace(seat.Name); name != "" {
			out.names[seat.Seat] = name
		}
		if len(seat.Hand) > 0 {
			if len(seat.Hand) != euchre.HandSize {
				return out, &ReplayError{
					StepIndex: -1, Reason: "invalid_hand",
					Message: fmt.Sprintf("seat %d hand must contain %d cards", seat.Seat, euchre.HandSize),
				}
			}
			cards, err := parseEuchreCards(seat.Hand)
			if err != nil {
				return out, &ReplayError{StepIndex: -1, Reason: "invalid_hand_card", Message: fmt.Sprintf("seat %d: %v", seat.Seat, err)}
			}
			handConstraints[seat.Seat] = cards
		}
	}

	constraints, err := buildSlotConstraints(out.dealerSeat, handConstraints, spec.Lead)
	if err != nil {
		return out, err
	}
	out.deck, err = parseOrBuildDeck(spec.Deck, constraints, out.seed)
	if err != nil {
		return out, err
	}

	if len(spec.Decisions) == 0 {
		return out, &ReplayError{StepIndex: -1, Reason: "empty_script", Message: "at least one decision is required"}
	}
	out.decisions = make([]normalizedDecision, 0, len(spec.Decisions))
	for i, d := range spec.Decisions {
		nd, err := normalizeDecision(d)
		if err != nil {
			return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_decision", Message: err.Error()}
		}
		out.decisions = append(out.decisions, nd)
	}
	return out, nil
}

func normalizeDecision(d DecisionSpec) (normalizedDecision, error) {
	nd := normalizedDecision{seat: d.Seat, call: d.Call, card: card.CardInvalid}
	if d.Seat < 0 || d.Seat >= euchre.NumSeats {
		return nd, fmt.Errorf("seat %d out of range", d.Seat)
	}
	switch d.Type {
	case queryCallTrump, queryGoAlone:
		nd.query = d.Type
	case queryChooseTrump:
		nd.query = d.Type
		if d.Call {
			suit, err := parseSuitName(d.Suit)
			if err != nil {
				return nd, err
			}
			nd.suit = suit
		}
	case queryReplaceCard, queryPlayCard:
		nd.query = d.Type
		c, err := parseEuchreCard(d.Card)
		if err != nil {
			return nd, err
		}
		nd.card = c
	default:
		return nd, fmt.Errorf("unknown decision type %q", d.Type)
	}
	return nd, nil
}

// buildSlotConstraints maps constrained cards to deck positions. The deal
// order starts left of the dealer and ends on the dealer; seat hands occupy
// five consecutive slots each, then the lead card, then the kitty.
func buildSlotConstraints(dealerSeat int, hands map[int]card.CardList, lead string) (map[int]card.Card, error) {
	constraints := make(map[int]card.Card, len(hands)*euchre.HandSize+1)
	used := make(map[card.Card]struct{}, len(hands)*euchre.HandSize+1)

	for seat, cards := range hands {
		pos := ((seat - dealerSeat - 1) + euchre.NumSeats) % euchre.NumSeats
		for i, c := range cards {
			if err := assignConstraint(constraints, used, pos*euchre.HandSize+i, c); err != nil {
				return nil, err
			}
		}
	}
	if lead != "" {
		c, err := parseEuchreCard(lead)
		if err != nil {
			return nil, &ReplayError{StepIndex: -1, Reason: "invalid_lead_card", Message: err.Error()}
		}
		if err := assignConstraint(constraints, used, euchre.NumSeats*euchre.HandSize, c); err != nil {
			return nil, err
		}
	}
	return constraints, nil
}

func assignConstraint(constraints map[int]card.Card, used map[card.Card]struct{}, slot int, c card.Card) error {
	if _, ok := used[c]; ok {
		return &ReplayError{
			StepIndex: -1, Reason: "duplicate_cards",
			Message: fmt.Sprintf("card %s appears in multiple constraints", card.CompactString(c)),
		}
	}
	constraints[slot] = c
	used[c] = struct{}{}
	return nil
}

func parseOrBuildDeck(deck []string, constraints map[int]card.Card, seed int64) ([]card.Card, error) {
	if len(deck) > 0 {
		if len(deck) != len(euchre.EuchreCards) {
			return nil, &ReplayError{
				StepIndex: -1, Reason: "invalid_deck",
				Message: fmt.Sprintf("deck must contain %d cards", len(euchre.EuchreCards)),
			}
		}
		out, err := parseEuchreCards(deck)
		if err != nil {
			return nil, &ReplayError{StepIndex: -1, Reason: "invalid_deck_card", Message: err.Error()}
		}
		seenAt := make(map[card.Card]int, len(out))
		for i, c := range out {
			if _, dup := seenAt[c]; dup {
				return nil, &ReplayError{StepIndex: -1, Reason: "invalid_deck", Message: fmt.Sprintf("duplicate card in deck[%d]", i)}
			}
			seenAt[c] = i
		}
		for slot, expected := range constraints {
			if out[slot] != expected {
				return nil, &ReplayError{
					StepIndex: -1, Reason: "deck_constraint_mismatch",
					Message: fmt.Sprintf("deck[%d] does not match constrained card %s", slot, card.CompactString(expected)),
				}
			}
		}
		return out, nil
	}
	if len(constraints) == 0 {
		// 无约束时直接让引擎自行洗牌
		return nil, nil
	}

	used := make(map[card.Card]struct{}, len(constraints))
	for _, c := range constraints {
		used[c] = struct{}{}
	}
	remaining := make([]card.Card, 0, len(euchre.EuchreCards)-len(constraints))
	for _, c := range euchre.EuchreCards {
		if _, ok := used[c]; ok {
			continue
		}
		remaining = append(remaining, c)
	}
	if seed != 0 {
		r := rand.New(rand.NewSource(seed))
		r.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
	}

	out := make([]card.Card, len(euchre.EuchreCards))
	ri := 0
	for i := range out {
		if constrained, ok := constraints[i]; ok {
			out[i] = constrained
			continue
		}
		out[i] = remaining[ri]
		ri++
	}
	return out, nil
}

func parseEuchreCards(strs []string) (card.CardList, error) {
	out := make(card.CardList, 0, len(strs))
	for i, s := range strs {
		c, err := parseEuchreCard(s)
		if err != nil {
			return nil, fmt.Errorf("card[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseEuchreCard(s string) (card.Card, error) {
	c, err := card.ParseCard(strings.TrimSpace(s))
	if err != nil {
		return card.CardInvalid, err
	}
	if c.Rank() != 1 && (c.Rank() < 9 || c.Rank() > 13) {
		return card.CardInvalid, fmt.Errorf("%s is not a euchre card", card.CompactString(c))
	}
	return c, nil
}

func parseSuitName(s string) (card.Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "spade", "spades":
		return card.Spade, nil
	case "h", "heart", "hearts":
		return card.Heart, nil
	case "c", "club", "clubs":
		return card.Club, nil
	case "d", "diamond", "diamonds":
		return card.Diamond, nil
	}
	return 0, fmt.Errorf("unknown suit %q", s)
}

func defaultSeatName(seat int) string {
	return [euchre.NumSeats]string{"North", "East", "South", "West"}[seat]
}

func seedFromSpec(rng *RNGSpec) int64 {
	if rng == nil {
		return 0
	}
	return rng.Seed
}
