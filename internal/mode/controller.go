package mode

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// Persister is the durable storage the controller records the active
// mode in. Reads happen once at workspace load; writes happen on every
// committed switch and are fire-and-forget.
type Persister interface {
	// SaveActiveMode records the active mode for a workspace.
	SaveActiveMode(workspaceID string, id ID) error

	// LoadActiveMode returns the recorded mode for a workspace. ok is
	// false when no usable record exists.
	LoadActiveMode(workspaceID string) (id ID, ok bool, err error)
}

// Controller is the workspace mode state machine. It tracks the active
// mode, executes transitions, and is the single mutation point for
// "which mode is showing". Switches run to completion on the UI event
// loop; only the persistence write leaves the loop.
type Controller struct {
	registry    *Registry
	cache       *Cache
	store       Persister
	workspaceID string
	fallback    ID
	logger      *log.Logger

	mu     sync.Mutex
	active ID

	persisting sync.WaitGroup
}

// NewController creates a controller for one workspace. fallback is the
// mode a workspace with no usable persisted record opens in; an empty
// or unregistered fallback resolves to the built-in default. The
// controller starts uninitialized; call Restore before the first
// SwitchTo.
func NewController(registry *Registry, cache *Cache, store Persister, workspaceID string, fallback ID, logger *log.Logger) *Controller {
	return &Controller{
		registry:    registry,
		cache:       cache,
		store:       store,
		workspaceID: workspaceID,
		fallback:    fallback,
		logger:      logger,
	}
}

// fallbackID resolves the configured fallback, guarding against a
// misconfigured or unregistered value.
func (c *Controller) fallbackID() ID {
	if c.fallback != "" {
		if _, ok := c.registry.Resolve(c.fallback); ok {
			return c.fallback
		}
		c.logger.Warn("configured default mode is not registered, using built-in default",
			"mode", c.fallback)
	}
	return DefaultID
}

// Restore sets the initial active mode from the persistence store,
// falling back to the fallback mode when the record is missing, the
// read fails, or the stored id is no longer registered. Restore does not run
// activation hooks; the presentation container activates the restored
// mode once it is ready to render.
func (c *Controller) Restore() ID {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, ok, err := c.store.LoadActiveMode(c.workspaceID)
	if err != nil {
		c.logger.Warn("failed to load active mode, using default",
			"workspace", c.workspaceID, "error", err)
		ok = false
	}
	if ok {
		if _, registered := c.registry.Resolve(id); !registered {
			c.logger.Warn("persisted mode is not registered, using default",
				"workspace", c.workspaceID, "mode", id)
			ok = false
		}
	}
	if !ok {
		id = c.fallbackID()
	}

	c.active = id
	return id
}

// Active returns the currently active mode.
func (c *Controller) Active() ID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// SwitchTo transitions the workspace to the target mode.
//
// Switching to the already-active mode is a no-op and runs no hooks.
// An unregistered or unavailable target leaves the state unchanged.
// Otherwise the outgoing view is deactivated, the target view is
// obtained from the cache (constructed on first use), activated, and
// focused, and the new active mode is committed in memory. The
// persistence write runs off the caller's loop; a failed write is
// logged and never fails the switch.
func (c *Controller) SwitchTo(target ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if target == c.active {
		return nil
	}

	d, ok := c.registry.Resolve(target)
	if !ok {
		return fmt.Errorf("switch to %q: %w", target, ErrUnknownMode)
	}
	if d.Available != nil {
		if err := d.Available(); err != nil {
			return fmt.Errorf("switch to %q: %w: %v", target, ErrUnavailable, err)
		}
	}

	t := Transition{From: c.active, To: target}

	// Deactivate the outgoing view if it was ever constructed. A mode
	// that has never rendered has no transient focus to release.
	if outgoing, exists := c.cache.Peek(c.active); exists {
		if err := outgoing.Deactivate(t); err != nil {
			c.logger.Warn("deactivation hook failed",
				"mode", c.active, "error", err)
		}
	}

	incoming, err := c.cache.ViewFor(target)
	if err != nil {
		return fmt.Errorf("switch to %q: %w", target, err)
	}

	// An activation hook failure is not allowed to strand the machine
	// between modes: the switch still commits and the view reports its
	// own degraded state.
	if err := incoming.Activate(t); err != nil {
		c.logger.Warn("activation hook failed",
			"mode", target, "error", err)
	}
	incoming.Focus()

	c.active = target
	c.persistLocked(target)
	return nil
}

// persistLocked writes the committed mode in the background. In-memory
// state is authoritative for the session; the write is eventually
// consistent and its failure is only logged.
func (c *Controller) persistLocked(id ID) {
	c.persisting.Add(1)
	go func() {
		defer c.persisting.Done()
		if err := c.store.SaveActiveMode(c.workspaceID, id); err != nil {
			c.logger.Warn("failed to persist active mode",
				"workspace", c.workspaceID, "mode", id, "error", err)
		}
	}()
}

// Flush waits for outstanding persistence writes. Called on shutdown.
func (c *Controller) Flush() {
	c.persisting.Wait()
}
