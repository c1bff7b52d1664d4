package game

import (
	"fmt"
	"strings"

	"github.com/ebarkley/dungeoneer/internal/models"
)

// Shop holds the fixed item catalogue. Display order is catalogue order.
type Shop struct {
	catalogue []models.Item
}

func NewShop() *Shop {
	return &Shop{catalogue: []models.Item{
		{Name: "health_potion", Cost: 10, Description: "Restores 50 points of health."},
		{Name: "strength_potion", Cost: 20, Description: "Increases attack power by 5 for the next 3 encounters."},
	}}
}

// Display enumerates the catalogue with 1-based indices.
func (s *Shop) Display() string {
	lines := make([]string, len(s.catalogue))
	for i, item := range s.catalogue {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}

// Buy debits the item's cost and hands the player a fresh copy. Bad indices
// and empty purses are user errors, not failures.
func (s *Shop) Buy(index int, p *models.Player) (string, error) {
	if index < 0 || index >= len(s.catalogue) {
		return "", fmt.Errorf("%w: the shop has no item %d", models.ErrInvalid, index+1)
	}
	item := s.catalogue[index]
	if p.Doubloons < item.Cost {
		return "", fmt.Errorf("%w: the %s costs %d doubloons and you have %d",
			models.ErrInvalid, item.Name, item.Cost, p.Doubloons)
	}
	p.Doubloons -= item.Cost
	p.Items = append(p.Items, item)
	return fmt.Sprintf("You bought the %s. You have %d doubloons left.", item.Name, p.Doubloons), nil
}
