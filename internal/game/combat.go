package game

import (
	"fmt"
	"math"

	"github.com/ebarkley/dungeoneer/internal/models"
)

// CombatOutcome is the result of a resolved encounter.
type CombatOutcome int

const (
	CombatWon CombatOutcome = iota
	CombatLost
)

func (o CombatOutcome) String() string {
	if o == CombatWon {
		return "won"
	}
	return "lost"
}

// HandleCombat resolves one encounter as a single exchange: the enemy lands
// ceil(threat) minus the player's effective base damage, floored at zero
// (armor reduces it further inside TakeDamage). The player wins if they are
// still standing afterwards. Experience equal to ceil(threat) is awarded on
// every resolution, and the strength-potion timer burns one encounter.
func HandleCombat(p *models.Player, enemyThreatLevel float64) (CombatOutcome, string) {
	threat := int(math.Ceil(enemyThreatLevel))
	damage := threat - p.EffectiveBaseDamage()
	if damage < 0 {
		damage = 0
	}

	levelMsg := p.AwardExp(threat)
	msg, died := p.TakeDamage(damage)
	p.TickDamageBoost()

	if died {
		return CombatLost, msg
	}
	return CombatWon, fmt.Sprintf("%s\nYou earned %d experience.%s", msg, threat, levelMsg)
}
