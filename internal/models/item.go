package models

import "fmt"

// Item is a shop-purchasable consumable, distinct from Treasure. Catalogue
// entries are immutable; a player owns copies in Player.Items.
type Item struct {
	Name        string `yaml:"name"`
	Cost        int    `yaml:"cost"`
	Description string `yaml:"description"`
}

func (i Item) String() string {
	return fmt.Sprintf("%s - %d doubloons - %s", i.Name, i.Cost, i.Description)
}
