package game

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"

	"github.com/ebarkley/dungeoneer/internal/models"
	"github.com/ebarkley/dungeoneer/internal/repo"
)

//go:embed prompts/begin_adventure.txt
var beginAdventurePrompt string

//go:embed prompts/enemy.txt
var enemyPrompt string

//go:embed prompts/victory.txt
var victoryPrompt string

//go:embed prompts/defeat.txt
var defeatPrompt string

//go:embed prompts/treasure.txt
var treasurePrompt string

//go:embed prompts/empty_room.txt
var emptyRoomPrompt string

const actionSuffix = "\nDo you /continue or /flee?"

// escapeChance: one room in this many offers a way out of the dungeon.
const escapeChance = 10

// start opens a fresh adventure. Re-entrant: starting while one is active
// restarts depth and threat level and clears history, never resumes.
func (s *Service) start(ctx context.Context, actor string) (string, error) {
	p, err := s.repo.LoadPlayer(actor)
	if errors.Is(err, repo.ErrNotFound) {
		p = models.NewPlayer(actor)
	} else if err != nil {
		return "", err
	}

	d, err := s.repo.LoadDungeon(actor)
	if errors.Is(err, repo.ErrNotFound) {
		d = models.NewDungeon(actor)
	} else if err != nil {
		return "", err
	}
	d.Reset()

	text := s.generate(ctx, d, beginAdventurePrompt, map[string]string{
		"AdventureType": "dungeoneering",
	})
	d.AppendHistory(text)

	if err := s.repo.SavePlayer(p); err != nil {
		return "", err
	}
	if err := s.repo.SaveDungeon(d); err != nil {
		return "", err
	}
	return text + actionSuffix, nil
}

// continueAdventure advances the adventure one step: deeper, more
// dangerous, and into a weighted-random encounter.
func (s *Service) continueAdventure(ctx context.Context, actor string) (string, error) {
	p, err := s.repo.LoadPlayer(actor)
	if err != nil {
		return "", err
	}
	d, err := s.repo.LoadDungeon(actor)
	if err != nil {
		return "", err
	}

	d.Depth++
	d.AdvanceThreat()
	d.RoomType = ""

	response := fmt.Sprintf("Threat Level: %.1f", d.ThreatLevel)

	wCombat, wTreasure, wNothing := d.EncounterWeights()
	var died bool
	switch s.rng.WeightedSelect([]float64{wCombat, wTreasure, wNothing}) {
	case 0:
		var text string
		text, died = s.combatEncounter(ctx, p, d)
		response += "\nCOMBAT ENCOUNTER\n" + text
	case 1:
		text, err := s.treasureEncounter(ctx, p, d)
		if err != nil {
			return "", err
		}
		response += "\nTREASURE ROOM\n" + text
	default:
		response += "\nEMPTY ROOM\n" + s.emptyRoom(ctx, d)
	}

	if died {
		// The run is over: the dungeon record and the lost treasure
		// records go away, the named player persists.
		if err := s.repo.DeleteDungeon(actor); err != nil {
			return "", err
		}
		if err := s.repo.DeletePlayerTreasures(actor); err != nil {
			return "", err
		}
		if err := s.repo.SavePlayer(p); err != nil {
			return "", err
		}
		return response, nil
	}

	if s.rng.Chance(escapeChance) {
		d.RoomType = models.RoomTypeEscape
		response += "\nA narrow shaft of daylight cuts through the ceiling here. You could /escape."
	}

	if err := s.repo.SavePlayer(p); err != nil {
		return "", err
	}
	if err := s.repo.SaveDungeon(d); err != nil {
		return "", err
	}
	return response, nil
}

func (s *Service) combatEncounter(ctx context.Context, p *models.Player, d *models.Dungeon) (string, bool) {
	foe := s.newEnemy()
	description := s.generate(ctx, d, enemyPrompt, foe.promptVars(d.ThreatLevel))

	outcome, combatMsg := HandleCombat(p, d.ThreatLevel)

	var narrative string
	if outcome == CombatWon {
		narrative = s.generate(ctx, d, victoryPrompt, map[string]string{
			"EnemyDescription": description,
		})
	} else {
		narrative = s.generate(ctx, d, defeatPrompt, map[string]string{
			"EnemyDescription": description,
		})
	}

	text := description + "\n" + narrative + "\n" + combatMsg
	d.AppendHistory(text)
	return text, outcome == CombatLost
}

func (s *Service) treasureEncounter(ctx context.Context, p *models.Player, d *models.Dungeon) (string, error) {
	t := s.newTreasure()
	if err := s.repo.SaveTreasure(p.Name, &t); err != nil {
		return "", err
	}
	p.AddTreasure(t)

	assembled := fmt.Sprintf("%s %s adorned with %s, an artifact of %s origin, believed to possess %s",
		t.Material, t.TreasureType, s.rng.Pick(treasureAdornments), t.Origin, s.rng.Pick(treasurePowers))
	narrative := s.generate(ctx, d, treasurePrompt, map[string]string{
		"TreasureDescription": assembled,
	})

	text := fmt.Sprintf("%s\nYou stow away %s.", narrative, t)
	d.AppendHistory(text)
	return text, nil
}

func (s *Service) emptyRoom(ctx context.Context, d *models.Dungeon) string {
	text := s.generate(ctx, d, emptyRoomPrompt, nil)
	d.AppendHistory(text)
	return text
}

// flee abandons the adventure, forfeiting treasures and doubloons.
func (s *Service) flee(ctx context.Context, actor string) (string, error) {
	p, err := s.repo.LoadPlayer(actor)
	if err != nil {
		return "", err
	}
	if _, err := s.repo.LoadDungeon(actor); err != nil {
		return "", err
	}

	msg := p.Flee()
	if err := s.repo.DeletePlayerTreasures(actor); err != nil {
		return "", err
	}
	if err := s.repo.DeleteDungeon(actor); err != nil {
		return "", err
	}
	if err := s.repo.SavePlayer(p); err != nil {
		return "", err
	}
	return msg, nil
}

// escape leaves through an escape room: health restored, treasures and
// doubloons kept. Only valid when the current room has a way out.
func (s *Service) escape(ctx context.Context, actor string) (string, error) {
	p, err := s.repo.LoadPlayer(actor)
	if err != nil {
		return "", err
	}
	d, err := s.repo.LoadDungeon(actor)
	if err != nil {
		return "", err
	}
	if d.RoomType != models.RoomTypeEscape {
		return "", fmt.Errorf("%w: there is no way out of this room", models.ErrInvalid)
	}

	p.Health = p.MaxHealth
	if err := s.repo.DeleteDungeon(actor); err != nil {
		return "", err
	}
	if err := s.repo.SavePlayer(p); err != nil {
		return "", err
	}
	return fmt.Sprintf("You haul yourself up through the gap and out of the dungeon. "+
		"Your wounds mend in the open air, and your haul of %d treasures comes with you.",
		len(p.Inventory)), nil
}

// generate renders one narrative segment, degrading to a clearly marked
// fallback message when the backend fails. Mechanical effects never wait
// on narration.
func (s *Service) generate(ctx context.Context, d *models.Dungeon, promptTemplate string, vars map[string]string) string {
	text, err := s.gen.Generate(ctx, promptTemplate, vars, d.HistoryContext())
	if err != nil {
		log.Printf("narrative generation failed for %s: %v", d.PlayerName, err)
		return fmt.Sprintf("I couldn't generate a response due to: %v", err)
	}
	return text
}
