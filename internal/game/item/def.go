package item

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ItemDef defines the static properties of a spawnable item loaded from YAML.
// A def is a template: Spawn produces a fresh owned instance each call.
type ItemDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Kind        Kind   `yaml:"kind"`
	Damage      int    `yaml:"damage"`  // weapons only
	Defense     int    `yaml:"defense"` // armor only
	Heal        int    `yaml:"heal"`    // potions only
}

// Validate checks that the ItemDef satisfies its invariants. Invalid stat
// ranges are rejected here rather than clamped.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validKinds[d.Kind] {
		errs = append(errs, fmt.Errorf("Kind must be one of weapon, armor, potion; got %q", d.Kind))
	}
	if d.Kind == KindWeapon && d.Damage < 0 {
		errs = append(errs, errors.New("Damage must be >= 0"))
	}
	if d.Kind == KindArmor && d.Defense < 0 {
		errs = append(errs, errors.New("Defense must be >= 0"))
	}
	if d.Kind == KindPotion && d.Heal < 1 {
		errs = append(errs, errors.New("Heal must be >= 1 for potions"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item def validation failed: %v", errs)
	}
	return nil
}

// Spawn constructs a new Item instance of the def's kind.
//
// Precondition:  d must satisfy Validate.
// Postcondition: returns a fresh instance with its own instance ID.
func (d *ItemDef) Spawn() (Item, error) {
	switch d.Kind {
	case KindWeapon:
		return NewWeapon(d.Name, d.Damage)
	case KindArmor:
		return NewArmor(d.Name, d.Defense)
	case KindPotion:
		return NewPotion(d.Name, d.Heal)
	default:
		return nil, fmt.Errorf("item: ItemDef.Spawn: unknown kind %q", d.Kind)
	}
}

// LoadDefs reads all *.yaml and *.yml files from dir, parses each as an
// ItemDef, validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadDefs(dir string) ([]*ItemDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadDefs: cannot read directory %q: %w", dir, err)
	}

	var defs []*ItemDef
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot read file %q: %w", path, err)
		}
		var d ItemDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadDefs: invalid item in %q: %w", path, err)
		}
		defs = append(defs, &d)
	}
	return defs, nil
}
