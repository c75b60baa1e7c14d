package item

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Potion is a consumable item that heals its user and is destroyed on use.
// Potions are not equippable.
type Potion struct {
	id   string
	name string
	heal int
}

// NewPotion constructs a Potion with a fresh instance ID.
//
// Precondition:  name must be non-empty; heal must be >= 1.
// Postcondition: returns a Potion, or a non-nil error.
func NewPotion(name string, heal int) (*Potion, error) {
	if name == "" {
		return nil, errors.New("item: NewPotion: name must not be empty")
	}
	if heal < 1 {
		return nil, fmt.Errorf("item: NewPotion: heal must be >= 1, got %d", heal)
	}
	return &Potion{
		id:   uuid.New().String(),
		name: name,
		heal: heal,
	}, nil
}

// ID returns the unique instance identifier.
func (p *Potion) ID() string { return p.id }

// Name returns the display name.
func (p *Potion) Name() string { return p.name }

// Kind returns KindPotion.
func (p *Potion) Kind() Kind { return KindPotion }

// Heal returns the amount of health restored on use.
func (p *Potion) Heal() int { return p.heal }

// Describe returns e.g. "Tonic [Potion] heals: 5".
func (p *Potion) Describe() string {
	return fmt.Sprintf("%s [%s] heals: %d", p.name, KindPotion.Label(), p.heal)
}

// Use heals owner by the potion's heal amount, then asks owner to consume
// this exact instance. Healing is applied before consumption.
//
// Precondition: owner must not be nil.
func (p *Potion) Use(owner Owner) {
	owner.AddHealth(p.heal)
	owner.ConsumeItem(p)
}
