package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ebarkley/dungeoneer/internal/models"
)

// FileRepository stores each record as a YAML document under a per-player
// directory:
//
//	<dir>/<player>/player.yaml
//	<dir>/<player>/dungeon.yaml
//	<dir>/<player>/treasures/<id>.yaml
type FileRepository struct {
	dir string
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

func (r *FileRepository) playerDir(name string) string {
	return filepath.Join(r.dir, name)
}

func (r *FileRepository) LoadPlayer(name string) (*models.Player, error) {
	data, err := os.ReadFile(filepath.Join(r.playerDir(name), "player.yaml"))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: player %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	var p models.Player
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding player %q: %w", name, err)
	}
	return &p, nil
}

func (r *FileRepository) SavePlayer(p *models.Player) error {
	return r.writeDoc(r.playerDir(p.Name), "player.yaml", p)
}

func (r *FileRepository) LoadDungeon(name string) (*models.Dungeon, error) {
	data, err := os.ReadFile(filepath.Join(r.playerDir(name), "dungeon.yaml"))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: dungeon for %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	var d models.Dungeon
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decoding dungeon for %q: %w", name, err)
	}
	return &d, nil
}

func (r *FileRepository) SaveDungeon(d *models.Dungeon) error {
	return r.writeDoc(r.playerDir(d.PlayerName), "dungeon.yaml", d)
}

func (r *FileRepository) DeleteDungeon(name string) error {
	err := os.Remove(filepath.Join(r.playerDir(name), "dungeon.yaml"))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r *FileRepository) SaveTreasure(playerName string, t *models.Treasure) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return r.writeDoc(filepath.Join(r.playerDir(playerName), "treasures"), t.ID+".yaml", t)
}

func (r *FileRepository) DeleteTreasure(playerName, id string) error {
	err := os.Remove(filepath.Join(r.playerDir(playerName), "treasures", id+".yaml"))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r *FileRepository) DeletePlayerTreasures(name string) error {
	return os.RemoveAll(filepath.Join(r.playerDir(name), "treasures"))
}

func (r *FileRepository) writeDoc(dir, file string, doc any) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, file), data, 0644)
}

var _ Repository = (*FileRepository)(nil)
