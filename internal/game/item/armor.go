package item

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Armor is an equippable item that adds its defense to the owner's defense.
type Armor struct {
	id       string
	name     string
	defense  int
	equipped bool
}

// NewArmor constructs an Armor piece with a fresh instance ID.
//
// Precondition:  name must be non-empty; defense must be >= 0.
// Postcondition: returns an unequipped Armor, or a non-nil error.
func NewArmor(name string, defense int) (*Armor, error) {
	if name == "" {
		return nil, errors.New("item: NewArmor: name must not be empty")
	}
	if defense < 0 {
		return nil, fmt.Errorf("item: NewArmor: defense must be >= 0, got %d", defense)
	}
	return &Armor{
		id:      uuid.New().String(),
		name:    name,
		defense: defense,
	}, nil
}

// ID returns the unique instance identifier.
func (a *Armor) ID() string { return a.id }

// Name returns the display name.
func (a *Armor) Name() string { return a.name }

// Kind returns KindArmor.
func (a *Armor) Kind() Kind { return KindArmor }

// Defense returns the defense bonus granted while equipped.
func (a *Armor) Defense() int { return a.defense }

// IsEquipped reports whether the armor is currently equipped.
func (a *Armor) IsEquipped() bool { return a.equipped }

// SetEquipped marks or unmarks the armor as equipped. Intended for the
// owning player's equip-slot bookkeeping.
func (a *Armor) SetEquipped(equipped bool) { a.equipped = equipped }

// Describe returns e.g. "Shield [Armor] defense: 8 (equipped)".
func (a *Armor) Describe() string {
	s := fmt.Sprintf("%s [%s] defense: %d", a.name, KindArmor.Label(), a.defense)
	if a.equipped {
		s += " (equipped)"
	}
	return s
}

// Use equips the armor on owner.
//
// Precondition: owner must not be nil.
func (a *Armor) Use(owner Owner) {
	owner.EquipArmor(a)
}
