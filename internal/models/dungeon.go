package models

import "math"

const (
	DefaultMaxThreatLevel        = 5.0
	DefaultThreatLevelMultiplier = 1.5

	// RoomTypeEscape marks a room with a way out of the dungeon.
	RoomTypeEscape = "escape"
)

// Dungeon is the state of one active adventure, keyed by the player's name.
// It is addressed independently of the Player record; the two are joined
// only by that shared key.
type Dungeon struct {
	PlayerName            string   `yaml:"player_name"`
	Depth                 int      `yaml:"depth"`
	ThreatLevel           float64  `yaml:"threat_level"`
	MaxThreatLevel        float64  `yaml:"max_threat_level"`
	ThreatLevelMultiplier float64  `yaml:"threat_level_multiplier"`
	RoomType              string   `yaml:"room_type,omitempty"`
	History               []string `yaml:"history"`
}

// NewDungeon creates a fresh adventure at threat level one.
func NewDungeon(playerName string) *Dungeon {
	return &Dungeon{
		PlayerName:            playerName,
		ThreatLevel:           1,
		MaxThreatLevel:        DefaultMaxThreatLevel,
		ThreatLevelMultiplier: DefaultThreatLevelMultiplier,
	}
}

// Reset restarts the adventure: depth and threat back to the start, history
// cleared. A start while already active never resumes.
func (d *Dungeon) Reset() {
	d.Depth = 0
	d.ThreatLevel = 1
	d.RoomType = ""
	d.History = nil
}

// AdvanceThreat raises the threat level one step. Monotonic and capped.
func (d *Dungeon) AdvanceThreat() {
	d.ThreatLevel = math.Min(d.ThreatLevel*d.ThreatLevelMultiplier, d.MaxThreatLevel)
}

// EncounterWeights returns the weighted odds of the three room outcomes at
// the current threat level. Every weight stays at least one, so no outcome
// is ever structurally excluded.
func (d *Dungeon) EncounterWeights() (combat, treasure, nothing float64) {
	combat = d.ThreatLevel
	treasure = math.Max(1, 5-d.ThreatLevel)
	nothing = math.Max(1, 10-d.ThreatLevel)
	return combat, treasure, nothing
}

// AppendHistory records one narrative segment. Append-only within a run.
func (d *Dungeon) AppendHistory(segment string) {
	d.History = append(d.History, segment)
}

// HistoryContext returns the most recent narrative entries for prompt
// grounding. Older history is dropped to keep prompts bounded.
func (d *Dungeon) HistoryContext() []string {
	const keep = 4
	if len(d.History) <= keep {
		return d.History
	}
	return d.History[len(d.History)-keep:]
}
