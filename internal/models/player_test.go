package models

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer("rina")

	if p.Level != 1 {
		t.Errorf("Expected level 1, got %d", p.Level)
	}
	if p.Health != DefaultMaxHealth || p.MaxHealth != DefaultMaxHealth {
		t.Errorf("Expected health %d/%d, got %d/%d", DefaultMaxHealth, DefaultMaxHealth, p.Health, p.MaxHealth)
	}
	if p.EffectiveBaseDamage() != DefaultBaseDamage {
		t.Errorf("Expected base damage %d, got %d", DefaultBaseDamage, p.EffectiveBaseDamage())
	}
	if p.Doubloons != 0 || p.Experience != 0 {
		t.Errorf("Expected no doubloons or experience, got %d and %d", p.Doubloons, p.Experience)
	}
}

func TestTakeDamageArmorReduction(t *testing.T) {
	p := NewPlayer("rina")
	armor := NewTreasure(TreasureTypeArmor, "silver", "Dwarven", RarityCommon)
	p.Armor = &armor

	msg, died := p.TakeDamage(15)
	if died {
		t.Fatal("Expected player to survive")
	}
	if p.Health != 95 {
		t.Errorf("Expected 95 health after armor reduced 15 to 5, got %d", p.Health)
	}
	if !strings.Contains(msg, "5 damage") {
		t.Errorf("Expected message to report 5 damage, got %q", msg)
	}

	// Armor absorbing the whole hit floors damage at zero.
	_, died = p.TakeDamage(3)
	if died || p.Health != 95 {
		t.Errorf("Expected fully absorbed hit to leave 95 health, got %d", p.Health)
	}
}

func TestTakeDamageClampsAndKills(t *testing.T) {
	p := NewPlayer("rina")
	p.Health = 10
	p.AddTreasure(NewTreasure("jewel", "golden", "Elvish", RarityRare))
	p.Doubloons = 40
	p.Experience = 90

	msg, died := p.TakeDamage(500)
	if !died {
		t.Fatal("Expected player to die")
	}
	if !strings.Contains(msg, "You have died.") {
		t.Errorf("Expected death message, got %q", msg)
	}
	if !strings.Contains(msg, "You've lost all your treasures:") {
		t.Errorf("Expected lost treasure summary, got %q", msg)
	}

	// Death resets the run but keeps the level.
	if p.Health != p.MaxHealth {
		t.Errorf("Expected health restored to %d, got %d", p.MaxHealth, p.Health)
	}
	if p.Doubloons != 0 || p.Experience != 0 || len(p.Inventory) != 0 {
		t.Errorf("Expected run gains wiped, got doubloons=%d exp=%d inventory=%d",
			p.Doubloons, p.Experience, len(p.Inventory))
	}
}

func TestDieWithEmptyInventory(t *testing.T) {
	p := NewPlayer("rina")
	_, lost := p.Die()
	if lost != "You died with no treasures in your possession." {
		t.Errorf("Expected empty-inventory death message, got %q", lost)
	}
}

func TestFleeForfeitsRun(t *testing.T) {
	p := NewPlayer("rina")
	p.Level = 3
	p.Doubloons = 100
	p.AddTreasure(NewTreasure("crown", "golden", "Mythical", RarityLegendary))
	armor := NewTreasure(TreasureTypeArmor, "ancient stone", "Ancient Human", RarityUncommon)
	p.Armor = &armor

	msg := p.Flee()
	if !strings.Contains(msg, "fled the dungeon") {
		t.Errorf("Expected flee message, got %q", msg)
	}
	if p.Doubloons != 0 || len(p.Inventory) != 0 || p.Armor != nil {
		t.Errorf("Expected everything forfeited, got doubloons=%d inventory=%d armor=%v",
			p.Doubloons, len(p.Inventory), p.Armor)
	}
	if p.Level != 3 {
		t.Errorf("Expected level to survive fleeing, got %d", p.Level)
	}
}

func TestAwardExpLevelsUp(t *testing.T) {
	p := NewPlayer("rina")

	if msg := p.AwardExp(50); msg != "" {
		t.Errorf("Expected no level-up at 50 exp, got %q", msg)
	}

	// 200 cumulative exp clears the level 1 and level 2 thresholds.
	msg := p.AwardExp(150)
	if p.Level != 3 {
		t.Errorf("Expected level 3 at 200 exp, got %d", p.Level)
	}
	if !strings.Contains(msg, "You reached level 2!") || !strings.Contains(msg, "You reached level 3!") {
		t.Errorf("Expected both level-up messages, got %q", msg)
	}
}

func TestEquipArmorSwapsOldArmorBack(t *testing.T) {
	p := NewPlayer("rina")
	p.AddTreasure(NewTreasure(TreasureTypeArmor, "silver", "Dwarven", RarityCommon))
	p.AddTreasure(NewTreasure("sword", "crystalline", "Elvish", RarityRare))
	p.AddTreasure(NewTreasure(TreasureTypeArmor, "golden", "Mythical", RarityLegendary))

	if _, err := p.EquipArmor(0); err != nil {
		t.Fatalf("Failed to equip first armor: %v", err)
	}
	if p.Armor == nil || p.Armor.Material != "silver" {
		t.Fatalf("Expected silver armor equipped, got %v", p.Armor)
	}
	if len(p.Inventory) != 2 {
		t.Fatalf("Expected 2 items left in inventory, got %d", len(p.Inventory))
	}

	msg, err := p.EquipArmor(1)
	if err != nil {
		t.Fatalf("Failed to equip second armor: %v", err)
	}
	if p.Armor.Material != "golden" {
		t.Errorf("Expected golden armor equipped, got %s", p.Armor.Material)
	}
	if !strings.Contains(msg, "goes back in your pack") {
		t.Errorf("Expected swap-back message, got %q", msg)
	}
	if len(p.Inventory) != 2 {
		t.Errorf("Expected old armor back in inventory, got %d items", len(p.Inventory))
	}
}

func TestEquipArmorRejectsBadChoices(t *testing.T) {
	p := NewPlayer("rina")
	p.AddTreasure(NewTreasure("sword", "crystalline", "Elvish", RarityRare))

	if _, err := p.EquipArmor(5); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for out-of-range index, got %v", err)
	}
	if _, err := p.EquipArmor(0); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for non-armor item, got %v", err)
	}
	if p.Armor != nil || len(p.Inventory) != 1 {
		t.Error("Expected failed equips to leave the player unchanged")
	}
}

func TestSellTreasure(t *testing.T) {
	p := NewPlayer("rina")
	p.AddTreasure(NewTreasure("jewel", "golden", "Elvish", RarityRare))

	sold, msg, err := p.SellTreasure(0)
	if err != nil {
		t.Fatalf("Failed to sell treasure: %v", err)
	}
	if sold.TreasureType != "jewel" {
		t.Errorf("Expected the jewel back, got %s", sold.TreasureType)
	}
	if p.Doubloons != 30 {
		t.Errorf("Expected 30 doubloons for a rare treasure, got %d", p.Doubloons)
	}
	if !strings.Contains(msg, "30 doubloons") {
		t.Errorf("Expected sale message to name the price, got %q", msg)
	}
	if len(p.Inventory) != 0 {
		t.Errorf("Expected empty inventory, got %d items", len(p.Inventory))
	}

	if _, _, err := p.SellTreasure(0); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid when selling from an empty inventory, got %v", err)
	}
}

func TestSellAllTreasures(t *testing.T) {
	p := NewPlayer("rina")

	sold, msg := p.SellAllTreasures()
	if sold != nil || msg != "You have no treasures to sell." {
		t.Errorf("Expected empty-inventory message, got %q", msg)
	}

	p.AddTreasure(NewTreasure("jewel", "golden", "Elvish", RarityCommon))
	p.AddTreasure(NewTreasure("crown", "silver", "Dwarven", RarityLegendary))

	sold, msg = p.SellAllTreasures()
	if len(sold) != 2 {
		t.Fatalf("Expected 2 treasures sold, got %d", len(sold))
	}
	if p.Doubloons != 60 {
		t.Errorf("Expected 60 doubloons total, got %d", p.Doubloons)
	}
	if !strings.Contains(msg, "sold 2 treasures for 60 doubloons") {
		t.Errorf("Expected summary message, got %q", msg)
	}
}

func TestUseHealthPotionCapsAtMax(t *testing.T) {
	p := NewPlayer("rina")
	p.Health = 40
	p.Items = []Item{{Name: "health_potion"}, {Name: "health_potion"}}

	if _, err := p.UseItem(0); err != nil {
		t.Fatalf("Failed to use potion: %v", err)
	}
	if p.Health != 90 {
		t.Errorf("Expected 90 health, got %d", p.Health)
	}

	if _, err := p.UseItem(0); err != nil {
		t.Fatalf("Failed to use second potion: %v", err)
	}
	if p.Health != p.MaxHealth {
		t.Errorf("Expected health capped at %d, got %d", p.MaxHealth, p.Health)
	}
	if len(p.Items) != 0 {
		t.Errorf("Expected potions consumed, got %d items", len(p.Items))
	}
}

func TestStrengthPotionBoostExpires(t *testing.T) {
	p := NewPlayer("rina")
	p.Items = []Item{{Name: "strength_potion"}}

	if _, err := p.UseItem(0); err != nil {
		t.Fatalf("Failed to use potion: %v", err)
	}
	if p.EffectiveBaseDamage() != DefaultBaseDamage+5 {
		t.Errorf("Expected boosted damage %d, got %d", DefaultBaseDamage+5, p.EffectiveBaseDamage())
	}

	for i := 0; i < 3; i++ {
		p.TickDamageBoost()
	}
	if p.EffectiveBaseDamage() != DefaultBaseDamage {
		t.Errorf("Expected boost expired after 3 encounters, got damage %d", p.EffectiveBaseDamage())
	}
	if p.BoostDamage != 0 {
		t.Errorf("Expected boost damage cleared, got %d", p.BoostDamage)
	}
}

func TestUseItemRejectsBadIndex(t *testing.T) {
	p := NewPlayer("rina")
	if _, err := p.UseItem(0); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestDescribeInventoryGroupsByType(t *testing.T) {
	p := NewPlayer("rina")

	if got := p.DescribeInventory(); got != "Your inventory is empty." {
		t.Errorf("Expected empty message, got %q", got)
	}

	p.AddTreasure(NewTreasure("jewel", "golden", "Elvish", RarityCommon))
	p.AddTreasure(NewTreasure("scroll", "ancient stone", "Lost Civilization", RarityRare))
	p.AddTreasure(NewTreasure("jewel", "silver", "Dwarven", RarityUncommon))
	armor := NewTreasure(TreasureTypeArmor, "crystalline", "Mythical", RarityVeryRare)
	p.Armor = &armor
	p.Items = []Item{{Name: "health_potion"}}

	got := p.DescribeInventory()
	jewelLine := "Jewel: a common golden jewel of Elvish origin (worth 10 doubloons), a uncommon silver jewel of Dwarven origin (worth 20 doubloons)"
	if !strings.Contains(got, jewelLine) {
		t.Errorf("Expected grouped jewel line %q in %q", jewelLine, got)
	}
	if !strings.Contains(got, "Scroll:") {
		t.Errorf("Expected scroll group in %q", got)
	}
	if !strings.Contains(got, "Equipped:") || !strings.Contains(got, "defense 40") {
		t.Errorf("Expected equipped armor with defense in %q", got)
	}
	if !strings.Contains(got, "Consumables: health_potion") {
		t.Errorf("Expected consumables line in %q", got)
	}
}

func TestPlayerYAML(t *testing.T) {
	p := NewPlayer("rina")
	p.AddTreasure(NewTreasure("amulet", "jewel-encrusted", "Mythical", RarityLegendary))
	armor := NewTreasure(TreasureTypeArmor, "silver", "Dwarven", RarityCommon)
	p.Armor = &armor
	p.Items = []Item{{Name: "health_potion", Cost: 10, Description: "Restores 50 points of health."}}
	p.BoostDamage = 5
	p.BoostEncountersLeft = 2

	data, err := yaml.Marshal(p)
	if err != nil {
		t.Fatalf("Failed to marshal player: %v", err)
	}

	var p2 Player
	if err := yaml.Unmarshal(data, &p2); err != nil {
		t.Fatalf("Failed to unmarshal player: %v", err)
	}

	if p2.Name != p.Name || p2.Level != p.Level {
		t.Errorf("Expected name %q level %d, got %q level %d", p.Name, p.Level, p2.Name, p2.Level)
	}
	if len(p2.Inventory) != 1 || p2.Inventory[0].Value != 50 {
		t.Errorf("Expected inventory to survive the round trip, got %v", p2.Inventory)
	}
	if p2.Armor == nil || p2.Armor.DefenseValue != 10 {
		t.Errorf("Expected equipped armor to survive the round trip, got %v", p2.Armor)
	}
	if p2.BoostEncountersLeft != 2 {
		t.Errorf("Expected boost timer to survive the round trip, got %d", p2.BoostEncountersLeft)
	}
}
