package euchre

import "euchre-lite/card"

const InvalidSeat int = -1

const (
	NumSeats  = 4
	HandSize  = 5
	KittySize = 3

	DefaultWinningScore = 10
	DefaultMaxSolicits  = 3
)

// Phase 牌局阶段
type Phase byte

const (
	PhaseTypeDeal    Phase = 0
	PhaseTypeBidding Phase = 1
	PhaseTypePlay    Phase = 2
	PhaseTypeScored  Phase = 3
)

var PhaseTypeDictionary = map[Phase]string{
	PhaseTypeDeal:    "deal",
	PhaseTypeBidding: "bidding",
	PhaseTypePlay:    "play",
	PhaseTypeScored:  "scored",
}

// TeamID 两个搭档队伍：0 = 南北, 1 = 东西
type TeamID byte

const (
	TeamNorthSouth TeamID = 0
	TeamEastWest   TeamID = 1
)

var TeamIDDictionary = map[TeamID]string{
	TeamNorthSouth: "north-south",
	TeamEastWest:   "east-west",
}

// EuchreCards is the 24-card euchre deck: 9 through ace in each suit.
var EuchreCards = []card.Card{
	card.CardSpade9, card.CardSpadeT, card.CardSpadeJ, card.CardSpadeQ, card.CardSpadeK, card.CardSpadeA,
	card.CardHeart9, card.CardHeartT, card.CardHeartJ, card.CardHeartQ, card.CardHeartK, card.CardHeartA,
	card.CardClub9, card.CardClubT, card.CardClubJ, card.CardClubQ, card.CardClubK, card.CardClubA,
	card.CardDiamond9, card.CardDiamondT, card.CardDiamondJ, card.CardDiamondQ, card.CardDiamondK, card.CardDiamondA,
}
