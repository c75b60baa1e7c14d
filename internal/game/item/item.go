// Package item defines the closed item taxonomy for the inventory demo:
// weapons, armor, and potions behind a shared Item interface.
package item

// Kind identifies an item variant.
type Kind string

const (
	// KindWeapon marks an equippable weapon that contributes to attack.
	KindWeapon Kind = "weapon"
	// KindArmor marks an equippable armor piece that contributes to defense.
	KindArmor Kind = "armor"
	// KindPotion marks a consumable that heals its user.
	KindPotion Kind = "potion"
)

// validKinds is the set of valid item kinds.
var validKinds = map[Kind]bool{
	KindWeapon: true,
	KindArmor:  true,
	KindPotion: true,
}

// kindLabels maps each kind to its human-readable label.
var kindLabels = map[Kind]string{
	KindWeapon: "Weapon",
	KindArmor:  "Armor",
	KindPotion: "Potion",
}

// Label returns the human-readable label for the kind.
//
// Postcondition: returns the registered label, or string(k) if not found.
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// Owner is the capability surface an item acts on when used. Each variant
// invokes exactly the operations its use-effect needs: weapons and armor
// ask to be equipped, potions heal the owner and then ask to be consumed.
type Owner interface {
	// EquipWeapon places w in the owner's weapon slot.
	EquipWeapon(w *Weapon)
	// EquipArmor places a in the owner's armor slot.
	EquipArmor(a *Armor)
	// AddHealth adjusts the owner's health by delta, clamped to the owner's range.
	AddHealth(delta int)
	// ConsumeItem removes and discards the exact item instance from the
	// owner's inventory, reporting whether it was found.
	ConsumeItem(it Item) bool
}

// Item is the shared contract of every inventory entry.
type Item interface {
	// ID returns the unique instance identifier assigned at construction.
	ID() string
	// Name returns the display name.
	Name() string
	// Kind returns the variant tag.
	Kind() Kind
	// Describe returns a deterministic human-readable summary: name, kind
	// label, stat value, and an "(equipped)" marker for equipped gear.
	// It has no side effects.
	Describe() string
	// Use applies the variant's use-effect to owner.
	Use(owner Owner)
}
