package menu

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/player"
)

// RenderInventory formats the player's inventory as indexed lines, or the
// empty state when nothing is owned.
func RenderInventory(p *player.Player) string {
	listings := p.List()
	if len(listings) == 0 {
		return "Your inventory is empty.\n"
	}

	var b strings.Builder
	b.WriteString("Inventory:\n")
	for _, l := range listings {
		b.WriteString(fmt.Sprintf("  %d) %s\n", l.Index, l.Description))
	}
	return b.String()
}

// RenderStats formats the player's name, health, combat totals, and equip
// slot contents.
func RenderStats(p *player.Player) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", p.Name()))
	b.WriteString(fmt.Sprintf("  Health:  %d/%d\n", p.Health(), p.MaxHealth()))
	b.WriteString(fmt.Sprintf("  Attack:  %d\n", p.Attack()))
	b.WriteString(fmt.Sprintf("  Defense: %d\n", p.Defense()))
	if w := p.EquippedWeapon(); w != nil {
		b.WriteString(fmt.Sprintf("  Weapon:  %s\n", w.Name()))
	} else {
		b.WriteString("  Weapon:  none\n")
	}
	if a := p.EquippedArmor(); a != nil {
		b.WriteString(fmt.Sprintf("  Armor:   %s\n", a.Name()))
	} else {
		b.WriteString("  Armor:   none\n")
	}
	return b.String()
}

// DefSummary formats a catalog entry for the acquire listing, e.g.
// "Sword (weapon, damage 10)".
func DefSummary(d *item.ItemDef) string {
	switch d.Kind {
	case item.KindWeapon:
		return fmt.Sprintf("%s (%s, damage %d)", d.Name, d.Kind, d.Damage)
	case item.KindArmor:
		return fmt.Sprintf("%s (%s, defense %d)", d.Name, d.Kind, d.Defense)
	case item.KindPotion:
		return fmt.Sprintf("%s (%s, heals %d)", d.Name, d.Kind, d.Heal)
	default:
		return fmt.Sprintf("%s (%s)", d.Name, d.Kind)
	}
}
