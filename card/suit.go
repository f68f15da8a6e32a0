package card

type Suit byte

const (
	Spade Suit = iota // ♠️
	Heart             // ♥️
	Club              // ♣️
	Diamond           // ♦️
)

// Suits 四种花色，按编码顺序
var Suits = []Suit{Spade, Heart, Club, Diamond}

func (s Suit) String() string {
	switch s {
	case Diamond:
		return "♦️"
	case Club:
		return "♣️"
	case Heart:
		return "♥️"
	case Spade:
		return "♠️"
	}
	return "?"
}

// Name returns the plain english suit name.
func (s Suit) Name() string {
	switch s {
	case Spade:
		return "spades"
	case Heart:
		return "hearts"
	case Club:
		return "clubs"
	case Diamond:
		return "diamonds"
	}
	return "unknown"
}

func (s Suit) Valid() bool {
	return s <= Diamond
}

// Color 花色颜色：红桃/方块为红，黑桃/梅花为黑
type Color byte

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

func (s Suit) Color() Color {
	if s == Heart || s == Diamond {
		return Red
	}
	return Black
}

// SameColor reports whether two suits share a color. The left bower rule
// hangs off this: the off-suit jack of the trump color is itself trump.
func (s Suit) SameColor(o Suit) bool {
	return s.Color() == o.Color()
}
