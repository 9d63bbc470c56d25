package mode

import "fmt"

// Cache holds the lazily-constructed view instance for each mode. It is
// owned by the presentation container and lives as long as the workspace
// window: a view is built on first activation and never rebuilt, which is
// what keeps terminal sessions visible after switching away and back.
type Cache struct {
	registry *Registry
	views    map[ID]View
}

// NewCache creates a view cache backed by the given registry.
func NewCache(registry *Registry) *Cache {
	return &Cache{
		registry: registry,
		views:    make(map[ID]View),
	}
}

// ViewFor returns the view instance for a mode, constructing it through
// the registry factory on first use.
func (c *Cache) ViewFor(id ID) (View, error) {
	if v, ok := c.views[id]; ok {
		return v, nil
	}

	d, ok := c.registry.Resolve(id)
	if !ok {
		return nil, fmt.Errorf("view for %q: %w", id, ErrUnknownMode)
	}

	v, err := d.New()
	if err != nil {
		return nil, fmt.Errorf("failed to construct view for %q: %w", id, err)
	}

	c.views[id] = v
	return v, nil
}

// Peek returns the view instance for a mode only if it has already been
// constructed. Deactivation hooks use this so that switching away from a
// mode never forces construction of its view.
func (c *Cache) Peek(id ID) (View, bool) {
	v, ok := c.views[id]
	return v, ok
}
