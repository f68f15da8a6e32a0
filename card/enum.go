package card

const (
	CardInvalid Card = 0
	CardRear    Card = 0xFF
)

// Spade 黑桃
const (
	CardSpadeA Card = 0x01
	CardSpade9 Card = 0x09
	CardSpadeT Card = 0x0A
	CardSpadeJ Card = 0x0B
	CardSpadeQ Card = 0x0C
	CardSpadeK Card = 0x0D
)

// Heart 红心
const (
	CardHeartA Card = 0x11
	CardHeart9 Card = 0x19
	CardHeartT Card = 0x1A
	CardHeartJ Card = 0x1B
	CardHeartQ Card = 0x1C
	CardHeartK Card = 0x1D
)

// Club 梅花
const (
	CardClubA Card = 0x21
	CardClub9 Card = 0x29
	CardClubT Card = 0x2A
	CardClubJ Card = 0x2B
	CardClubQ Card = 0x2C
	CardClubK Card = 0x2D
)

// Diamond 方块
const (
	CardDiamondA Card = 0x31
	CardDiamond9 Card = 0x39
	CardDiamondT Card = 0x3A
	CardDiamondJ Card = 0x3B
	CardDiamondQ Card = 0x3C
	CardDiamondK Card = 0x3D
)
