package main

import (
	"strings"

	"github.com/pterm/pterm"

	"euchre-lite/card"
	"euchre-lite/euchre"
)

var teamNames = [2]string{"North/South", "East/West"}

// renderHandView draws the table from one player's point of view: the
// score line, the trick so far and the player's own cards.
func renderHandView(view euchre.HandView) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	status := pterm.Sprintfln("%s %d  vs  %s %d",
		teamNames[0], view.Scores[0], teamNames[1], view.Scores[1])
	status += pterm.Sprintfln("Tricks this hand: %d-%d", view.Tricks[0], view.Tricks[1])
	if view.TrumpSet {
		status += pterm.Sprintfln("Trump: %s", pterm.LightYellow(view.TrumpSuit.Name()))
	} else {
		status += pterm.Sprintfln("Face up: %s", view.Lead.String())
	}
	statusPanel := pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan("|TABLE|")).WithTitleTopCenter().Sprintf(status)}

	trick := ""
	for _, play := range view.Trick {
		trick += pterm.Sprintfln("%s: %s", play.Name, play.Card.String())
	}
	if trick == "" {
		trick = "You lead."
	}
	trickPanel := pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|TRICK|")).WithTitleTopCenter().Sprintf(trick)}

	hand := pterm.BgGreen.Sprintf(" %s ", strings.Join(card.CardStrings(view.Cards), "  "))
	handPanel := pterm.Panel{Data: pbox.WithTitle("Your hand").WithTitleTopLeft().Sprintf(hand)}

	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{statusPanel, trickPanel},
		{handPanel},
	}).Render()
}

func renderTrickResult(win euchre.Play) {
	pterm.Info.Printfln("%s takes the trick with %s", pterm.LightCyan(win.Player.Name), win.Card.String())
}

func renderSettlement(result *euchre.SettlementResult) {
	line := pterm.Sprintf("%s score %d", teamNames[result.WinningTeam], result.Points)
	switch {
	case result.Loner && result.March:
		line += " - loner march!"
	case result.March:
		line += " - march!"
	case result.Euchred:
		line += " - euchred!"
	}
	pterm.Success.Println(line)
}

func renderGameOver(game *euchre.Game) {
	winner, ok := game.Winner()
	if !ok {
		return
	}
	pbox := pterm.DefaultBox.WithLeftPadding(6).WithRightPadding(6).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("%s win %d to %d after %d hands",
		pterm.LightGreen(teamNames[winner.ID]),
		winner.Score(),
		game.Seating().Teams()[1-winner.ID].Score(),
		game.HandsPlayed())
	pterm.Println(pbox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().Sprint(body))
}
