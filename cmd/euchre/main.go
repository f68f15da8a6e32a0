package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"euchre-lite/euchre"
	"euchre-lite/euchre/npc"
	"euchre-lite/ledger"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "deck shuffle seed (0 = time-based)")
	winScoreFlag := flag.Int("win-score", euchre.DefaultWinningScore, "points needed to win")
	botsFlag := flag.String("bots", "", "comma-separated persona IDs for the bot seats (empty = random)")
	personasFlag := flag.String("personas", "", "path to a personas JSON file")
	watchFlag := flag.Bool("watch", false, "all four seats are bots; just watch")
	flag.Parse()

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Eu", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("chre", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		logger.Error(err.Error())
	}
	pterm.Print(title)

	store, mode, err := ledger.NewServiceFromEnv()
	if err != nil {
		logger.Error("ledger init failed", "err", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("ledger ready", "mode", mode)

	registry := npc.NewRegistry()
	if *personasFlag != "" {
		if err := registry.LoadFromFile(*personasFlag); err != nil {
			logger.Error("load personas failed", "path", *personasFlag, "err", err)
			os.Exit(1)
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game, err := euchre.NewGame(euchre.Config{
		WinningScore: *winScoreFlag,
		Seed:         seed,
	})
	if err != nil {
		logger.Error("engine init failed", "err", err)
		os.Exit(1)
	}

	if err := seatEveryone(game, registry, seed, *botsFlag, *watchFlag); err != nil {
		logger.Error("seating failed", "err", err)
		os.Exit(1)
	}

	gameID := uuid.NewString()
	runGame(game, store, gameID, logger)
}

// seatEveryone fills the four seats: the human at seat 0 (unless watching)
// and bots everywhere else.
func seatEveryone(game *euchre.Game, registry *npc.PersonaRegistry, seed int64, bots string, watch bool) error {
	var botIDs []string
	if bots != "" {
		botIDs = strings.Split(bots, ",")
	}
	pickRng := rand.New(rand.NewSource(seed))

	firstBot := 1
	if watch {
		firstBot = 0
	} else {
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Enter your name").WithDefaultValue("You").Show()
		pterm.Println()
		if err := game.SitDown(0, name, newHumanAgent(name)); err != nil {
			return err
		}
	}

	botNo := 0
	for seat := firstBot; seat < euchre.NumSeats; seat++ {
		var persona *npc.Persona
		if botNo < len(botIDs) {
			p, ok := registry.Get(strings.TrimSpace(botIDs[botNo]))
			if !ok {
				return &unknownPersonaError{id: botIDs[botNo]}
			}
			persona = p
		} else {
			persona = registry.Pick(pickRng)
		}
		brain := npc.NewRuleBrain(persona, seed+int64(seat))
		if err := game.SitDown(seat, persona.Name, brain); err != nil {
			return err
		}
		pterm.Info.Printfln("Seat %d: %s (%s)", seat, persona.Name, persona.Tagline)
		botNo++
	}
	return nil
}

type unknownPersonaError struct{ id string }

func (e *unknownPersonaError) Error() string { return "unknown persona " + e.id }

// runGame drives hands until one team reaches the winning score, writing
// each settlement to the ledger as it lands.
func runGame(game *euchre.Game, store ledger.Service, gameID string, logger *slog.Logger) {
	ctx := context.Background()
	for game.Active() {
		if err := game.DealHand(); err != nil {
			logger.Error("deal failed", "err", err)
			return
		}
		hand := game.Hand()
		dealerSeat := game.Seating().Dealer().Seat
		pterm.Info.Printfln("%s deals; %s is face up.",
			game.Seating().Dealer().Name, hand.Lead().String())

		if err := hand.ProcessCallTrump(); err != nil {
			logger.Error("bidding failed", "err", err)
			return
		}
		trump, _ := hand.TrumpSuit()
		pterm.Info.Printfln("Trump is %s, called by team %s.",
			pterm.LightYellow(trump.Name()), hand.TrumpTeam().String())
		if loner := hand.LonerPlayer(); loner != nil {
			pterm.Info.Printfln("%s goes alone!", loner.Name)
		}

		for hand.Active() {
			win, err := hand.PlayTrick()
			if err != nil {
				logger.Error("trick failed", "err", err)
				return
			}
			renderTrickResult(win)
		}

		result, err := game.SettleHand()
		if err != nil {
			logger.Error("settlement failed", "err", err)
			return
		}
		renderSettlement(result)

		rec := ledger.HandRecordOf(gameID, game.HandsPlayed()-1, dealerSeat, trump.Name(), result)
		if err := store.AppendHand(ctx, rec); err != nil {
			logger.Warn("ledger hand append failed", "err", err)
		}
	}

	renderGameOver(game)
	winner, _ := game.Winner()
	var seats [euchre.NumSeats]string
	for _, p := range game.Seating().Players() {
		seats[p.Seat] = p.Name
	}
	err := store.AppendGame(ctx, ledger.GameRecord{
		GameID:      gameID,
		PlayedAt:    time.Now().UTC(),
		WinningTeam: int(winner.ID),
		Scores: [2]int{
			game.Seating().Team(euchre.TeamNorthSouth).Score(),
			game.Seating().Team(euchre.TeamEastWest).Score(),
		},
		HandsPlayed: game.HandsPlayed(),
		Seats:       seats,
	})
	if err != nil {
		logger.Warn("ledger game append failed", "err", err)
	}
}
