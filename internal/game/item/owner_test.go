package item_test

import "github.com/cory-johannsen/adventure/internal/game/item"

// fakeOwner records the capability calls an item makes during Use.
type fakeOwner struct {
	weapon   *item.Weapon
	armor    *item.Armor
	healed   int
	consumed []item.Item
}

func (o *fakeOwner) EquipWeapon(w *item.Weapon) { o.weapon = w }
func (o *fakeOwner) EquipArmor(a *item.Armor)   { o.armor = a }
func (o *fakeOwner) AddHealth(delta int)        { o.healed += delta }

func (o *fakeOwner) ConsumeItem(it item.Item) bool {
	o.consumed = append(o.consumed, it)
	return true
}
