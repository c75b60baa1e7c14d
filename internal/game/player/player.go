// Package player defines the inventory-owning player aggregate: an ordered
// collection of owned items, two non-owning equip slots, and derived
// combat stats.
package player

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/item"
)

// Stats holds the construction-time attributes of a Player.
type Stats struct {
	Name        string
	MaxHealth   int
	BaseAttack  int
	BaseDefense int
}

// Listing pairs an inventory index with the item's description.
type Listing struct {
	Index       int
	Description string
}

// Player owns an ordered inventory of items plus weapon and armor equip
// slots referencing items inside it.
//
// Invariant: the weapon and armor slots, when set, always reference an item
// currently present in the inventory; removal paths clear the matching slot
// before discarding the item. Health stays within [0, MaxHealth].
type Player struct {
	name        string
	health      int
	maxHealth   int
	baseAttack  int
	baseDefense int

	weapon    *item.Weapon // non-owning; nil when empty
	armor     *item.Armor  // non-owning; nil when empty
	inventory []item.Item

	logger *zap.Logger
}

// New constructs a Player at full health with an empty inventory.
//
// Precondition:  stats.Name must be non-empty; stats.MaxHealth must be >= 1;
// stats.BaseAttack and stats.BaseDefense must be >= 0.
// Postcondition: returns a Player with health == MaxHealth and both equip
// slots empty, or a non-nil error. A nil logger is replaced by a no-op logger.
func New(stats Stats, logger *zap.Logger) (*Player, error) {
	if stats.Name == "" {
		return nil, errors.New("player: New: name must not be empty")
	}
	if stats.MaxHealth < 1 {
		return nil, fmt.Errorf("player: New: max health must be >= 1, got %d", stats.MaxHealth)
	}
	if stats.BaseAttack < 0 {
		return nil, fmt.Errorf("player: New: base attack must be >= 0, got %d", stats.BaseAttack)
	}
	if stats.BaseDefense < 0 {
		return nil, fmt.Errorf("player: New: base defense must be >= 0, got %d", stats.BaseDefense)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		name:        stats.Name,
		health:      stats.MaxHealth,
		maxHealth:   stats.MaxHealth,
		baseAttack:  stats.BaseAttack,
		baseDefense: stats.BaseDefense,
		logger:      logger,
	}, nil
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// Health returns the current health value.
//
// Postcondition: result is in [0, MaxHealth()].
func (p *Player) Health() int { return p.health }

// MaxHealth returns the health ceiling.
func (p *Player) MaxHealth() int { return p.maxHealth }

// AddHealth adjusts health by delta (which may be negative) and clamps the
// result to [0, MaxHealth].
func (p *Player) AddHealth(delta int) {
	p.health += delta
	if p.health > p.maxHealth {
		p.health = p.maxHealth
	}
	if p.health < 0 {
		p.health = 0
	}
}

// Attack returns the base attack plus the equipped weapon's damage, if any.
func (p *Player) Attack() int {
	total := p.baseAttack
	if p.weapon != nil {
		total += p.weapon.Damage()
	}
	return total
}

// Defense returns the base defense plus the equipped armor's defense, if any.
func (p *Player) Defense() int {
	total := p.baseDefense
	if p.armor != nil {
		total += p.armor.Defense()
	}
	return total
}

// AddItem takes ownership of it and appends it to the inventory.
//
// Precondition:  it must not be nil.
// Postcondition: it is reachable at index Count()-1.
func (p *Player) AddItem(it item.Item) error {
	if it == nil {
		return errors.New("player: AddItem: item must not be nil")
	}
	p.inventory = append(p.inventory, it)
	p.logger.Debug("item added",
		zap.String("player", p.name),
		zap.String("item", it.Name()),
		zap.String("kind", string(it.Kind())),
		zap.String("instance_id", it.ID()),
		zap.Int("count", len(p.inventory)),
	)
	return nil
}

// Items returns a snapshot copy of the inventory sequence.
//
// Postcondition: mutating the returned slice does not affect the player.
func (p *Player) Items() []item.Item {
	out := make([]item.Item, len(p.inventory))
	copy(out, p.inventory)
	return out
}

// Count returns the number of owned items.
func (p *Player) Count() int {
	return len(p.inventory)
}

// ItemAt returns the item at index and whether the index was in bounds.
func (p *Player) ItemAt(index int) (item.Item, bool) {
	if index < 0 || index >= len(p.inventory) {
		return nil, false
	}
	return p.inventory[index], true
}

// List returns each item's description paired with its current index, in
// sequence order. An empty inventory yields an empty slice; callers render
// the empty state.
func (p *Player) List() []Listing {
	out := make([]Listing, 0, len(p.inventory))
	for i, it := range p.inventory {
		out = append(out, Listing{Index: i, Description: it.Describe()})
	}
	return out
}

// RemoveItemAt removes and discards the item at index. If the item occupies
// an equip slot, the slot is cleared first so no slot ever references a
// removed item. Later items shift down by one index.
//
// Postcondition: on success the inventory shrinks by one; on an out-of-range
// index an error is returned and no state changes.
func (p *Player) RemoveItemAt(index int) error {
	if index < 0 || index >= len(p.inventory) {
		return fmt.Errorf("player: RemoveItemAt: no item at index %d", index)
	}
	it := p.inventory[index]
	p.clearSlotFor(it)
	p.inventory = append(p.inventory[:index], p.inventory[index+1:]...)
	p.logger.Debug("item removed",
		zap.String("player", p.name),
		zap.String("item", it.Name()),
		zap.String("instance_id", it.ID()),
		zap.Int("count", len(p.inventory)),
	)
	return nil
}

// UseItem looks up the item at index and invokes its use-effect with this
// player as the target: weapons and armor equip themselves, potions heal
// and consume themselves.
//
// Postcondition: on an out-of-range index an error is returned and no state
// changes.
func (p *Player) UseItem(index int) error {
	it, ok := p.ItemAt(index)
	if !ok {
		return fmt.Errorf("player: UseItem: no item at index %d", index)
	}
	it.Use(p)
	return nil
}

// EquipWeapon places w in the weapon slot, unmarking any previously
// equipped weapon.
//
// Precondition: w must not be nil and should already be owned by this
// player's inventory.
func (p *Player) EquipWeapon(w *item.Weapon) {
	if w == nil {
		return
	}
	if p.weapon != nil {
		p.weapon.SetEquipped(false)
	}
	p.weapon = w
	w.SetEquipped(true)
	p.logger.Info("weapon equipped",
		zap.String("player", p.name),
		zap.String("item", w.Name()),
		zap.Int("attack", p.Attack()),
	)
}

// EquipArmor places a in the armor slot, unmarking any previously
// equipped armor.
//
// Precondition: a must not be nil and should already be owned by this
// player's inventory.
func (p *Player) EquipArmor(a *item.Armor) {
	if a == nil {
		return
	}
	if p.armor != nil {
		p.armor.SetEquipped(false)
	}
	p.armor = a
	a.SetEquipped(true)
	p.logger.Info("armor equipped",
		zap.String("player", p.name),
		zap.String("item", a.Name()),
		zap.Int("defense", p.Defense()),
	)
}

// ConsumeItem searches the inventory for the exact item instance, removes
// and discards it, and reports whether it was found. A miss leaves all
// state unchanged.
func (p *Player) ConsumeItem(it item.Item) bool {
	for i := range p.inventory {
		if p.inventory[i] == it {
			p.clearSlotFor(it)
			p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
			p.logger.Debug("item consumed",
				zap.String("player", p.name),
				zap.String("item", it.Name()),
				zap.String("instance_id", it.ID()),
				zap.Int("count", len(p.inventory)),
			)
			return true
		}
	}
	return false
}

// EquippedWeapon returns the weapon slot contents, or nil when empty.
func (p *Player) EquippedWeapon() *item.Weapon { return p.weapon }

// EquippedArmor returns the armor slot contents, or nil when empty.
func (p *Player) EquippedArmor() *item.Armor { return p.armor }

// clearSlotFor empties whichever equip slot references it, unmarking the
// item, so the slot never outlives the owned item.
func (p *Player) clearSlotFor(it item.Item) {
	if p.weapon != nil && item.Item(p.weapon) == it {
		p.weapon.SetEquipped(false)
		p.weapon = nil
	}
	if p.armor != nil && item.Item(p.armor) == it {
		p.armor.SetEquipped(false)
		p.armor = nil
	}
}
