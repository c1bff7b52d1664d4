package game

import (
	"fmt"

	"github.com/ebarkley/dungeoneer/internal/models"
)

// Fixed vocabularies for procedural encounter and treasure assembly. Each
// attribute is a uniform draw.
var (
	treasureMaterials = []string{
		"golden", "silver", "crystalline", "jewel-encrusted", "ancient stone",
	}
	treasureTypes = []string{
		"jewel", "scroll", "potion", "armor", "chest", "statue", "amulet", "crown", "sword",
	}
	treasureAdornments = []string{
		"intricate runes", "mystical symbols", "gemstones", "ancient inscriptions", "magical glyphs",
	}
	treasureOrigins = []string{
		"Elvish", "Dwarven", "Ancient Human", "Lost Civilization", "Mythical",
	}
	treasurePowers = []string{
		"an enigmatic magical aura", "a curse of eternal slumber", "a blessing of invincibility",
		"the power of foresight", "a charm of endless wealth",
	}

	enemyTypes = []string{
		"goblin skirmisher", "skeletal warrior", "cave troll", "shadow wraith",
		"giant spider", "dungeon ghast",
	}
	enemyWeapons = []string{
		"a rusted scimitar", "a bone cudgel", "venom-dripping fangs",
		"a spectral chain", "jagged claws",
	}
	enemyAppearances = []string{
		"hunched and twitching", "towering and scarred", "half-swallowed by darkness",
		"wreathed in pale mist", "armored in black chitin",
	}
	enemyStrengths = []string{
		"unnatural speed", "brute strength", "an aura of dread",
		"uncanny cunning", "a hide like old iron",
	}
	enemyWeaknesses = []string{
		"bright light", "an old wound", "its own overconfidence",
		"brittle bones", "open flame",
	}
)

// enemy is a procedurally assembled encounter descriptor.
type enemy struct {
	Type       string
	Weapon     string
	Appearance string
	Strength   string
	Weakness   string
}

func (s *Service) newEnemy() enemy {
	return enemy{
		Type:       s.rng.Pick(enemyTypes),
		Weapon:     s.rng.Pick(enemyWeapons),
		Appearance: s.rng.Pick(enemyAppearances),
		Strength:   s.rng.Pick(enemyStrengths),
		Weakness:   s.rng.Pick(enemyWeaknesses),
	}
}

func (e enemy) promptVars(threatLevel float64) map[string]string {
	return map[string]string{
		"EnemyType":   e.Type,
		"Weapon":      e.Weapon,
		"Appearance":  e.Appearance,
		"Strength":    e.Strength,
		"Weakness":    e.Weakness,
		"ThreatLevel": fmt.Sprintf("%.1f", threatLevel),
	}
}

// newTreasure rolls a treasure with a uniform rarity and vocabulary draws.
func (s *Service) newTreasure() models.Treasure {
	rarity := models.Rarities[s.rng.Intn(len(models.Rarities))]
	return models.NewTreasure(
		s.rng.Pick(treasureTypes),
		s.rng.Pick(treasureMaterials),
		s.rng.Pick(treasureOrigins),
		rarity,
	)
}
