// Package repo defines the persistence contract for the game's three record
// kinds: players, dungeons, and per-player treasure sub-collections.
package repo

import (
	"errors"

	"github.com/ebarkley/dungeoneer/internal/models"
)

// ErrNotFound is returned when no record exists for the given key.
var ErrNotFound = errors.New("repo: record not found")

// Repository is the storage capability consumed by the game engine. Saves
// have upsert semantics and replace the outgoing document in full.
type Repository interface {
	LoadPlayer(name string) (*models.Player, error)
	SavePlayer(p *models.Player) error

	LoadDungeon(name string) (*models.Dungeon, error)
	SaveDungeon(d *models.Dungeon) error
	DeleteDungeon(name string) error

	// SaveTreasure persists a treasure into the player's sub-collection,
	// assigning t.ID when empty. The ID stays stable for later deletion.
	SaveTreasure(playerName string, t *models.Treasure) error
	DeleteTreasure(playerName, id string) error
	DeletePlayerTreasures(name string) error
}
