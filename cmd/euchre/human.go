package main

import (
	"github.com/pterm/pterm"

	"euchre-lite/card"
	"euchre-lite/euchre"
)

// humanAgent answers engine queries from terminal prompts. Every prompt
// offers only legal answers, so the engine never has to re-solicit.
type humanAgent struct {
	name string
}

func newHumanAgent(name string) *humanAgent {
	return &humanAgent{name: name}
}

func (h *humanAgent) CallTrump(view euchre.HandView) bool {
	renderHandView(view)
	prompt := pterm.Sprintf("%s, order up the %s (trump would be %s)?", h.name, view.Lead.String(), view.Lead.Suit().Name())
	ok, _ := pterm.DefaultInteractiveConfirm.WithDefaultText(prompt).WithDefaultValue(false).Show()
	return ok
}

func (h *humanAgent) ChooseTrump(view euchre.HandView) (card.Suit, bool) {
	renderHandView(view)
	barred := view.Lead.Suit()
	options := make([]string, 0, len(card.Suits))
	for _, s := range card.Suits {
		if s == barred {
			continue
		}
		options = append(options, s.Name())
	}
	if !view.MustChoose {
		options = append(options, "pass")
	} else {
		pterm.Info.Println("Dealer must call: picking a suit is compulsory this turn.")
	}

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText(pterm.Sprintf("The %s were turned down; name trump", barred.Name())).
		WithOptions(options).Show()
	if choice == "pass" {
		return 0, false
	}
	for _, s := range card.Suits {
		if s.Name() == choice {
			return s, true
		}
	}
	return 0, false
}

func (h *humanAgent) ReplaceCard(view euchre.HandView, lead card.Card) card.Card {
	renderHandView(view)
	pterm.Info.Printfln("You take the %s into your hand.", lead.String())
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Discard one card").
		WithOptions(card.CardStrings(view.Cards)).Show()
	return mustParse(choice)
}

func (h *humanAgent) GoAlone(view euchre.HandView) bool {
	ok, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Go alone? Your partner sits out; a sweep scores 4.").
		WithDefaultValue(false).Show()
	return ok
}

func (h *humanAgent) PlayCard(view euchre.HandView) card.Card {
	renderHandView(view)
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Play a card").
		WithOptions(card.CardStrings(legalCards(view))).Show()
	return mustParse(choice)
}

// legalCards narrows the hand to cards the follow-suit rule allows.
func legalCards(view euchre.HandView) card.CardList {
	if !view.LedSet {
		return view.Cards
	}
	inSuit := view.Cards.OfEffectiveSuit(view.LedSuit, view.TrumpSuit)
	if inSuit.Count() > 0 {
		return inSuit
	}
	return view.Cards
}

func mustParse(s string) card.Card {
	c, err := card.ParseCard(s)
	if err != nil {
		return card.CardInvalid
	}
	return c
}
