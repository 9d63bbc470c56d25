package mode

import "fmt"

// Registry is the static table of registered modes. It is populated once
// during application startup and never mutated afterwards; registration
// order defines the mode switcher display order.
type Registry struct {
	descriptors map[ID]Descriptor
	order       []ID
}

// NewRegistry creates an empty mode registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[ID]Descriptor),
	}
}

// Register adds a descriptor to the registry. Registering an id twice is
// rejected so that persisted mode ids always resolve to one descriptor.
func (r *Registry) Register(d Descriptor) error {
	if d.ID == "" {
		return fmt.Errorf("mode id cannot be empty")
	}
	if d.New == nil {
		return fmt.Errorf("mode %q has no view factory", d.ID)
	}
	if _, exists := r.descriptors[d.ID]; exists {
		return fmt.Errorf("register %q: %w", d.ID, ErrDuplicateMode)
	}

	r.descriptors[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

// Resolve looks up the descriptor for an id.
func (r *Registry) Resolve(id ID) (Descriptor, bool) {
	d, ok := r.descriptors[id]
	return d, ok
}

// OrderedIDs returns all registered ids in registration order.
func (r *Registry) OrderedIDs() []ID {
	ids := make([]ID, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the number of registered modes.
func (r *Registry) Len() int {
	return len(r.order)
}
