package replay

// HandSpec describes one euchre hand to re-run deterministically: the
// dealer, optional per-seat card constraints, and the full script of agent
// decisions in the order the engine asks for them.
type HandSpec struct {
	DealerSeat int            `json:"dealer_seat"`
	Seats      []SeatSpec     `json:"seats,omitempty"`
	Deck       []string       `json:"deck,omitempty"`
	Lead       string         `json:"lead,omitempty"`
	Decisions  []DecisionSpec `json:"decisions"`
	RNG        *RNGSpec       `json:"rng,omitempty"`
}

type SeatSpec struct {
	Seat int      `json:"seat"`
	Name string   `json:"name,omitempty"`
	Hand []string `json:"hand,omitempty"`
}

// DecisionSpec is one scripted answer. Type is one of call_trump,
// choose_trump, replace_card, go_alone, play_card.
type DecisionSpec struct {
	Type string `json:"type"`
	Seat int    `json:"seat"`
	Call bool   `json:"call,omitempty"`
	Suit string `json:"suit,omitempty"`
	Card string `json:"card,omitempty"`
}

type RNGSpec struct {
	Seed int64 `json:"seed"`
}

// Tape is the replayed hand's full event transcript plus its settlement.
type Tape struct {
	TapeVersion int             `json:"tape_version"`
	GameID      string          `json:"game_id"`
	DealerSeat  int             `json:"dealer_seat"`
	Events      []TapeEvent     `json:"events"`
	Settlement  *TapeSettlement `json:"settlement,omitempty"`
}

type TapeEvent struct {
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

type TapeSettlement struct {
	CallingTeam     int  `json:"calling_team"`
	WinningTeam     int  `json:"winning_team"`
	CallingTricks   int  `json:"calling_tricks"`
	DefendingTricks int  `json:"defending_tricks"`
	Points          int  `json:"points"`
	March           bool `json:"march"`
	Euchred         bool `json:"euchred"`
	Loner           bool `json:"loner"`
}
