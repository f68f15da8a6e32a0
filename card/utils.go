package card

// CardStrings formats cards with letter suits ("Js", "Th"), the compact form
// used in tapes and hand specs.
func CardStrings(cs []Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, CompactString(c))
	}
	return out
}

// CompactString 紧凑形式: 点数+花色字母 (如 "Js", "Th")
func CompactString(c Card) string {
	if c == CardInvalid || c == CardRear {
		return "??"
	}
	ranks := map[byte]string{1: "A", 9: "9", 10: "T", 11: "J", 12: "Q", 13: "K"}
	suits := map[Suit]string{Spade: "s", Heart: "h", Club: "c", Diamond: "d"}
	r, ok := ranks[c.Rank()]
	if !ok {
		r = string('0' + c.Rank())
	}
	return r + suits[c.Suit()]
}
