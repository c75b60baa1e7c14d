package item

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Weapon is an equippable item that adds its damage to the owner's attack.
type Weapon struct {
	id       string
	name     string
	damage   int
	equipped bool
}

// NewWeapon constructs a Weapon with a fresh instance ID.
//
// Precondition:  name must be non-empty; damage must be >= 0.
// Postcondition: returns an unequipped Weapon, or a non-nil error.
func NewWeapon(name string, damage int) (*Weapon, error) {
	if name == "" {
		return nil, errors.New("item: NewWeapon: name must not be empty")
	}
	if damage < 0 {
		return nil, fmt.Errorf("item: NewWeapon: damage must be >= 0, got %d", damage)
	}
	return &Weapon{
		id:     uuid.New().String(),
		name:   name,
		damage: damage,
	}, nil
}

// ID returns the unique instance identifier.
func (w *Weapon) ID() string { return w.id }

// Name returns the display name.
func (w *Weapon) Name() string { return w.name }

// Kind returns KindWeapon.
func (w *Weapon) Kind() Kind { return KindWeapon }

// Damage returns the attack bonus granted while equipped.
func (w *Weapon) Damage() int { return w.damage }

// IsEquipped reports whether the weapon is currently equipped.
func (w *Weapon) IsEquipped() bool { return w.equipped }

// SetEquipped marks or unmarks the weapon as equipped. Intended for the
// owning player's equip-slot bookkeeping.
func (w *Weapon) SetEquipped(equipped bool) { w.equipped = equipped }

// Describe returns e.g. "Sword [Weapon] damage: 10 (equipped)".
func (w *Weapon) Describe() string {
	s := fmt.Sprintf("%s [%s] damage: %d", w.name, KindWeapon.Label(), w.damage)
	if w.equipped {
		s += " (equipped)"
	}
	return s
}

// Use equips the weapon on owner.
//
// Precondition: owner must not be nil.
func (w *Weapon) Use(owner Owner) {
	owner.EquipWeapon(w)
}
