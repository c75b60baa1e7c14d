package item

import "fmt"

// Registry holds all loaded item definitions indexed by ID. Registration
// order is preserved so menu listings are stable.
type Registry struct {
	defs  map[string]*ItemDef
	order []string
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal index is initialised.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*ItemDef)}
}

// Register adds d to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Def(d.ID) returns (d, true); returns error if d.ID already registered.
func (r *Registry) Register(d *ItemDef) error {
	if _, exists := r.defs[d.ID]; exists {
		return fmt.Errorf("item: Registry.Register: item ID %q already registered", d.ID)
	}
	r.defs[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

// Def returns the ItemDef for the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Def(id string) (*ItemDef, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns all registered ItemDefs in registration order.
//
// Postcondition: len(result) == number of registered defs.
func (r *Registry) All() []*ItemDef {
	out := make([]*ItemDef, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

// Len returns the number of registered defs.
func (r *Registry) Len() int {
	return len(r.order)
}
