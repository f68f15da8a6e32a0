package npc

// PersonalityProfile defines the tunable parameters for a RuleBrain.
type PersonalityProfile struct {
	Aggression float64 `json:"aggression"` // 0.0–1.0: appetite for calling trump and going alone
	Tightness  float64 `json:"tightness"`  // 0.0–1.0: hand strength demanded before calling (1.0 = premiums only)
	Randomness float64 `json:"randomness"` // 0.0–1.0: decision noise
}

// Persona defines a named bot character.
type Persona struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Tagline string             `json:"tagline"`
	Brain   PersonalityProfile `json:"brain"`
}

// DefaultPersonas ships a small spread of table temperaments so a game can
// be filled without a persona file.
var DefaultPersonas = []*Persona{
	{
		ID:      "steady",
		Name:    "Steady Freddy",
		Tagline: "Calls it when the count is right.",
		Brain:   PersonalityProfile{Aggression: 0.45, Tightness: 0.55, Randomness: 0.10},
	},
	{
		ID:      "maverick",
		Name:    "Maverick May",
		Tagline: "Orders it up on a jack and a prayer.",
		Brain:   PersonalityProfile{Aggression: 0.85, Tightness: 0.20, Randomness: 0.30},
	},
	{
		ID:      "rock",
		Name:    "Rocco",
		Tagline: "Passes until the deck begs.",
		Brain:   PersonalityProfile{Aggression: 0.20, Tightness: 0.90, Randomness: 0.05},
	},
	{
		ID:      "gambler",
		Name:    "Lady Antoinette",
		Tagline: "Goes alone more than she should.",
		Brain:   PersonalityProfile{Aggression: 0.70, Tightness: 0.40, Randomness: 0.45},
	},
}
