package euchre

import "euchre-lite/card"

// Agent answers the engine's decision queries for one seat. Queries are
// strictly sequential: the engine blocks on each call and never has two in
// flight. Agents see only the HandView they are handed and answer through
// return values; they never mutate engine state.
//
// An answer the rules reject is re-solicited up to Config.MaxSolicits times,
// then the query fails with IllegalMoveError.
type Agent interface {
	// CallTrump asks whether to order up the face-up lead card (round 1).
	CallTrump(view HandView) bool

	// ChooseTrump asks for a trump suit in round 2. ok=false passes. The
	// turned-down suit is never a legal choice, and when view.MustChoose is
	// set (the stuck dealer) a pass is illegal.
	ChooseTrump(view HandView) (suit card.Suit, ok bool)

	// ReplaceCard asks the round-1 caller which held card to discard in
	// exchange for the lead card. The answer must be a card in view.Cards.
	ReplaceCard(view HandView, lead card.Card) card.Card

	// GoAlone asks the calling player whether to play without their partner.
	GoAlone(view HandView) bool

	// PlayCard asks for a card to play into the current trick. The answer
	// must be held and must follow suit when possible.
	PlayCard(view HandView) card.Card
}

// PlayView is one (seat, card) play already on the table.
type PlayView struct {
	Seat int
	Name string
	Card card.Card
}

// HandView is the read-only projection handed to an agent with each query.
// Card slices are copies; agents may keep or mutate them freely.
type HandView struct {
	Seat  int
	Cards card.CardList // the queried player's own hand

	DealerSeat int
	IsDealer   bool

	Lead       card.Card // the face-up card turned from the deck
	TurnedDown bool      // round 1 produced no caller; Lead's suit is barred

	TrumpSet  bool
	TrumpSuit card.Suit

	// MustChoose is set on the round-2 query to a dealer who may not pass.
	MustChoose bool

	LedSet  bool
	LedSuit card.Suit
	Trick   []PlayView // plays so far in the current trick, in order

	Scores [2]int // cumulative game score by TeamID
	Tricks [2]int // tricks taken this hand by TeamID
}
