package card

import (
	"fmt"
	"strings"
)

// Card 牌枚举
//
// 编码规则:
// - 高4位: 花色 (0:Spade, 1:Heart, 2:Club, 3:Diamond)
// - 低4位: 点数 (1:A, 9, 10:T, 11:J, 12:Q, 13:K)
//
// Euchre only uses the six ranks 9..A; the encoding keeps room for the rest
// so that card strings round-trip for any standard card.
type Card byte

func (c Card) String() string {
	if c == CardInvalid {
		return "Invalid"
	}
	if c == CardRear {
		return "Rear"
	}

	suit := Suit(c >> 4) // 高4位表示花色
	rank := c & 0x0F     // 低4位表示点数

	rankStr := ""
	switch rank {
	case 1:
		rankStr = "A"
	case 10:
		rankStr = "T"
	case 11:
		rankStr = "J"
	case 12:
		rankStr = "Q"
	case 13:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", rank)
	}

	return fmt.Sprintf("%s%s", suit, rankStr)
}

// Rank 获取牌面值 1-13 (A=1, K=13)
func (c Card) Rank() byte {
	if c == CardInvalid || c == CardRear {
		return 0
	}
	return byte(c & 0x0F) // Get low 4 bits
}

// Suit 花色 (0:Spades, 1:Hearts, 2:Clubs, 3:Diamonds)
func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

func (c Card) IsAce() bool {
	return c.Rank() == 1
}

// IsJack reports whether the card is a jack, the rank eligible to become a
// bower once a trump suit is chosen.
func (c Card) IsJack() bool {
	return c.Rank() == 11
}

// TrickVal 返回用于比较大小的点数:
// - A 视为 14
// - 其它为原始点数
func (c Card) TrickVal() int {
	r := int(c & 0x0F)
	if r == 1 {
		return 14
	}
	return r
}

// IsTrump reports whether c counts as trump for the given trump suit.
//
// Every card of the trump suit is trump. The jack of the other suit of the
// same color (the left bower) is also trump; it plays as a trump card and
// not as a member of its printed suit.
func IsTrump(c Card, trump Suit) bool {
	if c.Suit() == trump {
		return true
	}
	return c.IsJack() && c.Suit().SameColor(trump)
}

// EffectiveSuit 返回实际花色：左 Bower 视为将牌花色，其余按牌面
func EffectiveSuit(c Card, trump Suit) Suit {
	if IsTrump(c, trump) {
		return trump
	}
	return c.Suit()
}

// ParseCard 将字符串 (如 "As", "Td", "10h", "J♠️") 转换为 Card 常量
func ParseCard(cardStr string) (Card, error) {
	cardStr = strings.TrimSpace(cardStr)
	if len(cardStr) < 2 {
		return 0, fmt.Errorf("invalid card string: %s", cardStr)
	}

	// 1. 解析花色 (取最后一个字符)
	suitBase, rest, err := trailingSuit(cardStr)
	if err != nil {
		return 0, err
	}

	// 2. 解析点数
	var rankVal Card
	switch strings.ToUpper(rest) {
	case "A":
		rankVal = 0x01
	case "2":
		rankVal = 0x02
	case "3":
		rankVal = 0x03
	case "4":
		rankVal = 0x04
	case "5":
		rankVal = 0x05
	case "6":
		rankVal = 0x06
	case "7":
		rankVal = 0x07
	case "8":
		rankVal = 0x08
	case "9":
		rankVal = 0x09
	case "T", "10":
		rankVal = 0x0A
	case "J":
		rankVal = 0x0B
	case "Q":
		rankVal = 0x0C
	case "K":
		rankVal = 0x0D
	default:
		return 0, fmt.Errorf("invalid rank: %s", rest)
	}

	return suitBase + rankVal, nil
}

func trailingSuit(s string) (Card, string, error) {
	// Emoji suit forms first (multi-byte), then single letters.
	for suffix, base := range map[string]Card{
		"♠️": 0x00, "♥️": 0x10, "♣️": 0x20, "♦️": 0x30,
		"♠": 0x00, "♥": 0x10, "♣": 0x20, "♦": 0x30,
	} {
		if strings.HasSuffix(s, suffix) {
			return base, strings.TrimSuffix(s, suffix), nil
		}
	}

	switch s[len(s)-1] {
	case 's', 'S':
		return 0x00, s[:len(s)-1], nil // 黑桃
	case 'h', 'H':
		return 0x10, s[:len(s)-1], nil // 红心
	case 'c', 'C':
		return 0x20, s[:len(s)-1], nil // 梅花
	case 'd', 'D':
		return 0x30, s[:len(s)-1], nil // 方块
	}
	return 0, "", fmt.Errorf("invalid suit: %c", s[len(s)-1])
}
