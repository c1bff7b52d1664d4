package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid marks user mistakes (bad index, wrong room, not enough
// doubloons). The wrapped message is safe to echo back to the player.
var ErrInvalid = errors.New("invalid choice")

const (
	DefaultMaxHealth  = 100
	DefaultBaseDamage = 10

	healthPotionHeal         = 50
	strengthPotionBonus      = 5
	strengthPotionEncounters = 3
)

// Player is the per-adventurer aggregate: progression, resources, inventory
// and the mutations combat and shopping apply to them. Methods here are
// pure state changes; persistence is the caller's job.
type Player struct {
	Name          string     `yaml:"name"`
	Level         int        `yaml:"level"`
	Experience    int        `yaml:"experience"`
	Doubloons     int        `yaml:"doubloons"`
	Health        int        `yaml:"health"`
	MaxHealth     int        `yaml:"max_health"`
	MaxBaseDamage int        `yaml:"max_base_damage"`
	Inventory     []Treasure `yaml:"inventory"`
	Items         []Item     `yaml:"items"`
	Armor         *Treasure  `yaml:"armor,omitempty"`

	// Temporary strength-potion boost. Counts down one per combat encounter.
	BoostDamage         int `yaml:"boost_damage,omitempty"`
	BoostEncountersLeft int `yaml:"boost_encounters_left,omitempty"`
}

// NewPlayer creates a fresh level-one adventurer.
func NewPlayer(name string) *Player {
	return &Player{
		Name:          name,
		Level:         1,
		Health:        DefaultMaxHealth,
		MaxHealth:     DefaultMaxHealth,
		MaxBaseDamage: DefaultBaseDamage,
	}
}

// EffectiveBaseDamage is the player's damage stat with any active potion
// boost applied.
func (p *Player) EffectiveBaseDamage() int {
	if p.BoostEncountersLeft > 0 {
		return p.MaxBaseDamage + p.BoostDamage
	}
	return p.MaxBaseDamage
}

// TickDamageBoost burns one encounter off the strength-potion timer.
func (p *Player) TickDamageBoost() {
	if p.BoostEncountersLeft == 0 {
		return
	}
	p.BoostEncountersLeft--
	if p.BoostEncountersLeft == 0 {
		p.BoostDamage = 0
	}
}

// TakeDamage applies incoming damage, reduced by equipped armor and floored
// at zero. Reaching zero health triggers Die and appends its messages.
func (p *Player) TakeDamage(amount int) (msg string, died bool) {
	if p.Armor != nil {
		amount -= p.Armor.DefenseValue
	}
	if amount < 0 {
		amount = 0
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	msg = fmt.Sprintf("You took %d damage and have %d health remaining.", amount, p.Health)
	if p.Health == 0 {
		deathMsg, lost := p.Die()
		return msg + "\n" + deathMsg + "\n" + lost, true
	}
	return msg, false
}

// Die snapshots the inventory into a loss summary, then resets the player
// for their next life. Safe to call on an already-reset player.
func (p *Player) Die() (deathMessage, lostTreasures string) {
	lostTreasures = "You died with no treasures in your possession."
	if len(p.Inventory) > 0 {
		lostTreasures = "You've lost all your treasures:\n" + p.describeTreasures()
	}
	p.resetAfterLoss()
	return "You have died.", lostTreasures
}

// Flee forfeits everything, same as death, with its own narration. There is
// no partial salvage when fleeing.
func (p *Player) Flee() string {
	p.resetAfterLoss()
	return "You have fled the dungeon. You've lost all your treasures and doubloons."
}

// resetAfterLoss restores health and wipes the run's gains. Level survives;
// the named player record persists across adventures.
func (p *Player) resetAfterLoss() {
	p.Health = p.MaxHealth
	p.Experience = 0
	p.Doubloons = 0
	p.Inventory = nil
	p.Armor = nil
	p.BoostDamage = 0
	p.BoostEncountersLeft = 0
}

// AwardExp credits experience and applies any level-ups earned. The
// returned message is empty unless a level was gained.
func (p *Player) AwardExp(exp int) string {
	p.Experience += exp
	var msg string
	for p.Experience >= p.Level*100 {
		p.Level++
		msg += fmt.Sprintf("\nYou reached level %d!", p.Level)
	}
	return msg
}

// AddTreasure appends loot to the inventory in acquisition order.
func (p *Player) AddTreasure(t Treasure) {
	p.Inventory = append(p.Inventory, t)
}

// EquipArmor equips the armor at the given inventory index. Any armor
// already worn is swapped back into the inventory, not discarded.
func (p *Player) EquipArmor(index int) (string, error) {
	if index < 0 || index >= len(p.Inventory) {
		return "", fmt.Errorf("%w: no inventory item at position %d", ErrInvalid, index+1)
	}
	t := p.Inventory[index]
	if !t.IsArmor() {
		return "", fmt.Errorf("%w: the %s %s is not armor", ErrInvalid, t.Material, t.TreasureType)
	}
	p.Inventory = append(p.Inventory[:index], p.Inventory[index+1:]...)
	msg := fmt.Sprintf("You equip %s.", t)
	if p.Armor != nil {
		p.Inventory = append(p.Inventory, *p.Armor)
		msg += fmt.Sprintf(" Your old %s goes back in your pack.", p.Armor.TreasureType)
	}
	p.Armor = &t
	return msg, nil
}

// SellTreasure removes the treasure at the given index and credits its
// value. The removed treasure is returned so its record can be deleted.
func (p *Player) SellTreasure(index int) (Treasure, string, error) {
	if index < 0 || index >= len(p.Inventory) {
		return Treasure{}, "", fmt.Errorf("%w: no inventory item at position %d", ErrInvalid, index+1)
	}
	t := p.Inventory[index]
	p.Inventory = append(p.Inventory[:index], p.Inventory[index+1:]...)
	p.Doubloons += t.Value
	msg := fmt.Sprintf("You sold the %s %s for %d doubloons. You now have %d doubloons.",
		t.Material, t.TreasureType, t.Value, p.Doubloons)
	return t, msg, nil
}

// SellAllTreasures empties the inventory and credits the combined value.
func (p *Player) SellAllTreasures() ([]Treasure, string) {
	if len(p.Inventory) == 0 {
		return nil, "You have no treasures to sell."
	}
	sold := p.Inventory
	total := 0
	for _, t := range sold {
		total += t.Value
	}
	p.Inventory = nil
	p.Doubloons += total
	return sold, fmt.Sprintf("You sold %d treasures for %d doubloons. You now have %d doubloons.",
		len(sold), total, p.Doubloons)
}

// UseItem consumes the item at the given index and applies its effect.
func (p *Player) UseItem(index int) (string, error) {
	if index < 0 || index >= len(p.Items) {
		return "", fmt.Errorf("%w: no item at position %d", ErrInvalid, index+1)
	}
	item := p.Items[index]
	p.Items = append(p.Items[:index], p.Items[index+1:]...)

	switch item.Name {
	case "health_potion":
		p.Health += healthPotionHeal
		if p.Health > p.MaxHealth {
			p.Health = p.MaxHealth
		}
		return fmt.Sprintf("You drink the health potion and feel restored. Health: %d/%d.",
			p.Health, p.MaxHealth), nil
	case "strength_potion":
		p.BoostDamage = strengthPotionBonus
		p.BoostEncountersLeft = strengthPotionEncounters
		return fmt.Sprintf("You drink the strength potion. Attack power raised by %d for the next %d encounters.",
			strengthPotionBonus, strengthPotionEncounters), nil
	default:
		return fmt.Sprintf("You used the %s.", item.Name), nil
	}
}

// DescribeInventory renders the treasures grouped by type, the equipped
// armor, and any consumables the player is carrying.
func (p *Player) DescribeInventory() string {
	if len(p.Inventory) == 0 && p.Armor == nil && len(p.Items) == 0 {
		return "Your inventory is empty."
	}
	var sections []string
	if len(p.Inventory) > 0 {
		sections = append(sections, p.describeTreasures())
	}
	if p.Armor != nil {
		sections = append(sections, fmt.Sprintf("Equipped: %s (defense %d)", *p.Armor, p.Armor.DefenseValue))
	}
	if len(p.Items) > 0 {
		names := make([]string, len(p.Items))
		for i, item := range p.Items {
			names[i] = item.Name
		}
		sections = append(sections, "Consumables: "+strings.Join(names, ", "))
	}
	return strings.Join(sections, "\n")
}

// describeTreasures groups the flat inventory by treasure type for display,
// preserving first-seen order within and across groups.
func (p *Player) describeTreasures() string {
	var order []string
	grouped := make(map[string][]string)
	for _, t := range p.Inventory {
		if _, seen := grouped[t.TreasureType]; !seen {
			order = append(order, t.TreasureType)
		}
		grouped[t.TreasureType] = append(grouped[t.TreasureType], t.String())
	}
	lines := make([]string, 0, len(order))
	for _, typ := range order {
		lines = append(lines, capitalize(typ)+": "+strings.Join(grouped[typ], ", "))
	}
	return strings.Join(lines, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DescribeStats renders the player document for the stats command.
func (p *Player) DescribeStats() string {
	lines := []string{
		"Name: " + p.Name,
		fmt.Sprintf("Level: %d", p.Level),
		fmt.Sprintf("Experience: %d", p.Experience),
		fmt.Sprintf("Health: %d/%d", p.Health, p.MaxHealth),
		fmt.Sprintf("Doubloons: %d", p.Doubloons),
		fmt.Sprintf("Attack power: %d", p.EffectiveBaseDamage()),
	}
	if p.BoostEncountersLeft > 0 {
		lines = append(lines, fmt.Sprintf("Strength boost: +%d for %d more encounters", p.BoostDamage, p.BoostEncountersLeft))
	}
	if p.Armor != nil {
		lines = append(lines, fmt.Sprintf("Armor: %s", *p.Armor))
	}
	return strings.Join(lines, "\n")
}
