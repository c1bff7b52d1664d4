package models

import (
	"fmt"
	"strings"
)

// TreasureTypeArmor is the one treasure kind that can be equipped.
const TreasureTypeArmor = "armor"

// Rarity is a rank on the ordered treasure rarity scale.
type Rarity int

const (
	RarityCommon Rarity = iota + 1
	RarityUncommon
	RarityRare
	RarityVeryRare
	RarityLegendary
)

// Rarities lists the scale in ascending order, for uniform draws.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityVeryRare, RarityLegendary}

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityVeryRare:
		return "Very rare"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// Treasure is a lootable object found in the dungeon. Value (and, for armor,
// defense value) is derived from rarity; rarity is fixed at creation.
type Treasure struct {
	ID           string `yaml:"id,omitempty"`
	TreasureType string `yaml:"treasure_type"`
	Material     string `yaml:"material"`
	Origin       string `yaml:"origin"`
	Rarity       Rarity `yaml:"rarity"`
	Value        int    `yaml:"value"`
	DefenseValue int    `yaml:"defense_value,omitempty"`
}

// NewTreasure builds a treasure with its derived fields filled in.
func NewTreasure(treasureType, material, origin string, rarity Rarity) Treasure {
	t := Treasure{
		TreasureType: treasureType,
		Material:     material,
		Origin:       origin,
		Rarity:       rarity,
		Value:        int(rarity) * 10,
	}
	if t.TreasureType == TreasureTypeArmor {
		t.DefenseValue = int(rarity) * 10
	}
	return t
}

// IsArmor reports whether the treasure can be equipped.
func (t Treasure) IsArmor() bool {
	return t.TreasureType == TreasureTypeArmor
}

func (t Treasure) String() string {
	return fmt.Sprintf("a %s %s %s of %s origin (worth %d doubloons)",
		strings.ToLower(t.Rarity.String()), t.Material, t.TreasureType, t.Origin, t.Value)
}
