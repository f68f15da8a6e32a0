package card

type CardList []Card

func (ds *CardList) Init(cards []Card) {
	*ds = make([]Card, len(cards))
	copy(*ds, cards)
}

// Count 获取总牌数
func (ds CardList) Count() int {
	return len(ds)
}

func (ds *CardList) Add(cards ...Card) {
	*ds = append(*ds, cards...)
}

func (ds *CardList) PopCards(size int) ([]Card, bool) {
	if size > ds.Count() {
		return nil, false
	}
	cards := make([]Card, size)
	copy(cards, (*ds)[:size])
	*ds = (*ds)[size:]
	return cards, true
}

// Contains 判断牌是否在列表里
func (ds CardList) Contains(c Card) bool {
	for _, cc := range ds {
		if cc == c {
			return true
		}
	}
	return false
}

// Remove removes exactly one occurrence of c. Reports whether a card was
// removed; the list is untouched when c is absent.
func (ds *CardList) Remove(c Card) bool {
	for i, cc := range *ds {
		if cc == c {
			*ds = append((*ds)[:i], (*ds)[i+1:]...)
			return true
		}
	}
	return false
}

// OfEffectiveSuit returns the cards whose effective suit (left bower counts
// as trump) matches want.
func (ds CardList) OfEffectiveSuit(want Suit, trump Suit) CardList {
	out := make(CardList, 0, len(ds))
	for _, c := range ds {
		if EffectiveSuit(c, trump) == want {
			out = append(out, c)
		}
	}
	return out
}
