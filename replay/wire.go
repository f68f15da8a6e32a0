package replay

// WireTape is the camelCase JSON projection of a Tape, for web viewers.
type WireTape struct {
	TapeVersion int             `json:"tapeVersion"`
	GameID      string          `json:"gameId"`
	DealerSeat  int             `json:"dealerSeat"`
	Events      []WireTapeEvent `json:"events"`
	Settlement  *WireSettlement `json:"settlement,omitempty"`
}

type WireTapeEvent struct {
	Seq    uint64   `json:"seq"`
	Type   string   `json:"type"`
	Seat   int      `json:"seat"`
	Card   string   `json:"card,omitempty"`
	Suit   string   `json:"suit,omitempty"`
	Team   int      `json:"team"`
	Cards  []string `json:"cards,omitempty"`
	Points int      `json:"points,omitempty"`
	Tricks int      `json:"tricks,omitempty"`
}

type WireSettlement struct {
	CallingTeam     int  `json:"callingTeam"`
	WinningTeam     int  `json:"winningTeam"`
	CallingTricks   int  `json:"callingTricks"`
	DefendingTricks int  `json:"defendingTricks"`
	Points          int  `json:"points"`
	March           bool `json:"march"`
	Euchred         bool `json:"euchred"`
	Loner           bool `json:"loner"`
}

func ToWireTape(tape *Tape) *WireTape {
	if tape == nil {
		return nil
	}
	out := &WireTape{
		TapeVersion: tape.TapeVersion,
		GameID:      tape.GameID,
		DealerSeat:  tape.DealerSeat,
		Events:      make([]WireTapeEvent, 0, len(tape.Events)),
	}
	for _, e := range tape.Events {
		out.Events = append(out.Events, WireTapeEvent{
			Seq:    e.Seq,
			Type:   e.Type,
			Seat:   e.Seat,
			Card:   e.Card,
			Suit:   e.Suit,
			Team:   e.Team,
			Cards:  e.Cards,
			Points: e.Points,
			Tricks: e.Tricks,
		})
	}
	if s := tape.Settlement; s != nil {
		out.Settlement = &WireSettlement{
			CallingTeam:     s.CallingTeam,
			WinningTeam:     s.WinningTeam,
			CallingTricks:   s.CallingTricks,
			DefendingTricks: s.DefendingTricks,
			Points:          s.Points,
			March:           s.March,
			Euchred:         s.Euchred,
			Loner:           s.Loner,
		}
	}
	return out
}
