package repo

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ebarkley/dungeoneer/internal/models"
)

// MemoryRepository keeps all records in maps. It backs tests and the
// simulation harness; records are copied on the way in and out so callers
// never share state with the store.
type MemoryRepository struct {
	players   map[string]*models.Player
	dungeons  map[string]*models.Dungeon
	treasures map[string]map[string]models.Treasure
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		players:   make(map[string]*models.Player),
		dungeons:  make(map[string]*models.Dungeon),
		treasures: make(map[string]map[string]models.Treasure),
	}
}

func (r *MemoryRepository) LoadPlayer(name string) (*models.Player, error) {
	p, ok := r.players[name]
	if !ok {
		return nil, fmt.Errorf("%w: player %q", ErrNotFound, name)
	}
	return clonePlayer(p), nil
}

func (r *MemoryRepository) SavePlayer(p *models.Player) error {
	r.players[p.Name] = clonePlayer(p)
	return nil
}

func (r *MemoryRepository) LoadDungeon(name string) (*models.Dungeon, error) {
	d, ok := r.dungeons[name]
	if !ok {
		return nil, fmt.Errorf("%w: dungeon for %q", ErrNotFound, name)
	}
	return cloneDungeon(d), nil
}

func (r *MemoryRepository) SaveDungeon(d *models.Dungeon) error {
	r.dungeons[d.PlayerName] = cloneDungeon(d)
	return nil
}

func (r *MemoryRepository) DeleteDungeon(name string) error {
	delete(r.dungeons, name)
	return nil
}

func (r *MemoryRepository) SaveTreasure(playerName string, t *models.Treasure) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if r.treasures[playerName] == nil {
		r.treasures[playerName] = make(map[string]models.Treasure)
	}
	r.treasures[playerName][t.ID] = *t
	return nil
}

func (r *MemoryRepository) DeleteTreasure(playerName, id string) error {
	delete(r.treasures[playerName], id)
	return nil
}

func (r *MemoryRepository) DeletePlayerTreasures(name string) error {
	delete(r.treasures, name)
	return nil
}

// TreasureCount reports how many treasure records a player has. Test helper.
func (r *MemoryRepository) TreasureCount(name string) int {
	return len(r.treasures[name])
}

// HasDungeon reports whether a dungeon record exists. Test helper.
func (r *MemoryRepository) HasDungeon(name string) bool {
	_, ok := r.dungeons[name]
	return ok
}

func clonePlayer(src *models.Player) *models.Player {
	cp := *src
	cp.Inventory = append([]models.Treasure(nil), src.Inventory...)
	cp.Items = append([]models.Item(nil), src.Items...)
	if src.Armor != nil {
		armor := *src.Armor
		cp.Armor = &armor
	}
	return &cp
}

func cloneDungeon(src *models.Dungeon) *models.Dungeon {
	cp := *src
	cp.History = append([]string(nil), src.History...)
	return &cp
}

var _ Repository = (*MemoryRepository)(nil)
