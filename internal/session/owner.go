package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ID is the stable identity of a terminal session. Presentations hold
// only IDs and resolve them through the Owner at render time; the
// session itself is never copied into a view.
type ID string

// ErrNoSession is returned when a session id does not resolve.
var ErrNoSession = errors.New("no such session")

// Session is one long-lived terminal session. Its identity and lifetime
// are independent of which presentation currently displays it.
type Session struct {
	ID         ID
	WorkingDir string
	TmuxName   string
	CreatedAt  time.Time
	LastActive time.Time
}

// Backend is the terminal process layer sessions are backed by. The
// tmux client implements it; tests substitute a fake.
type Backend interface {
	NewSession(name, dir string) error
	HasSession(name string) bool
	KillSession(name string) error
	SendKeys(target, keys string) error
}

// Policy selects how terminal-mode entry treats a workspace with no
// sessions: eager entry creates one, lazy entry waits for the user to
// ask for one.
type Policy string

// Supported activation policies.
const (
	PolicyEager Policy = "eager"
	PolicyLazy  Policy = "lazy"
)

// Valid reports whether p is a recognized policy.
func (p Policy) Valid() bool {
	return p == PolicyEager || p == PolicyLazy
}

// Owner is the single owning collection for terminal sessions in a
// workspace. Every presentation context (the editor dock and the
// full-screen terminal mode) renders by looking up the same ids here;
// destruction happens only through Close, never as a side effect of a
// mode transition.
type Owner struct {
	mu       sync.Mutex
	backend  Backend
	prefix   string
	shell    string
	logger   *log.Logger
	sessions map[ID]*Session
	order    []ID
}

// NewOwner creates a session owner. prefix namespaces the backing tmux
// session names for this workspace; shell, when non-empty, is the
// command started in every new session in place of the default shell.
func NewOwner(backend Backend, prefix, shell string, logger *log.Logger) *Owner {
	return &Owner{
		backend:  backend,
		prefix:   prefix,
		shell:    shell,
		logger:   logger,
		sessions: make(map[ID]*Session),
	}
}

// Sessions returns all live session ids in creation order.
func (o *Owner) Sessions() []ID {
	o.mu.Lock()
	defer o.mu.Unlock()

	ids := make([]ID, len(o.order))
	copy(ids, o.order)
	return ids
}

// Get resolves a session id. The returned value is a snapshot; the
// session stays owned by the arena.
func (o *Owner) Get(id ID) (Session, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// Count returns the number of live sessions.
func (o *Owner) Count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.order)
}

// Create spawns a new session rooted at workingDir and registers it.
func (o *Owner) Create(workingDir string) (ID, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.createLocked(workingDir)
}

func (o *Owner) createLocked(workingDir string) (ID, error) {
	id := ID(uuid.NewString())
	name := fmt.Sprintf("%s-%s", o.prefix, string(id)[:8])

	if err := o.backend.NewSession(name, workingDir); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	// A failed shell launch leaves a usable default shell behind, so it
	// does not fail the creation.
	if o.shell != "" {
		if err := o.backend.SendKeys(name, o.shell); err != nil {
			o.logger.Warn("failed to start configured shell",
				"session", name, "shell", o.shell, "error", err)
		}
	}

	now := time.Now()
	o.sessions[id] = &Session{
		ID:         id,
		WorkingDir: workingDir,
		TmuxName:   name,
		CreatedAt:  now,
		LastActive: now,
	}
	o.order = append(o.order, id)
	return id, nil
}

// GetOrCreate returns the most recently active session, creating one
// rooted at workingDir when none exist.
func (o *Owner) GetOrCreate(workingDir string) (ID, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if id, ok := o.mostRecentLocked(o.order); ok {
		return id, nil
	}
	return o.createLocked(workingDir)
}

// MostRecentlyActive returns the id with the newest LastActive among
// the given ids. ok is false when none of them resolve.
func (o *Owner) MostRecentlyActive(ids []ID) (ID, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mostRecentLocked(ids)
}

func (o *Owner) mostRecentLocked(ids []ID) (ID, bool) {
	var best ID
	var bestTime time.Time
	found := false
	for _, id := range ids {
		s, ok := o.sessions[id]
		if !ok {
			continue
		}
		if !found || s.LastActive.After(bestTime) {
			best = id
			bestTime = s.LastActive
			found = true
		}
	}
	return best, found
}

// Touch marks a session as just used. Focus transfers call this so the
// most-recently-active selection stays meaningful.
func (o *Owner) Touch(id ID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if s, ok := o.sessions[id]; ok {
		s.LastActive = time.Now()
	}
}

// Close destroys a session and its backing process. This is the only
// destruction point; presentations never close what they display.
func (o *Owner) Close(id ID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.sessions[id]
	if !ok {
		return fmt.Errorf("close %q: %w", id, ErrNoSession)
	}

	if o.backend.HasSession(s.TmuxName) {
		if err := o.backend.KillSession(s.TmuxName); err != nil {
			o.logger.Warn("failed to kill backing session",
				"session", id, "tmux", s.TmuxName, "error", err)
		}
	}

	delete(o.sessions, id)
	filtered := o.order[:0]
	for _, oid := range o.order {
		if oid != id {
			filtered = append(filtered, oid)
		}
	}
	o.order = filtered
	return nil
}

// EnsureOnEntry implements the terminal-mode activation policy. It runs
// only at the moment of entering the mode: under the eager policy a
// workspace with no sessions gets exactly one, rooted at workingDir;
// under the lazy policy nothing is created. Either way the most
// recently active existing session is selected when there is one.
// created reports whether a session was spawned.
func (o *Owner) EnsureOnEntry(policy Policy, workingDir string) (id ID, created bool, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if existing, ok := o.mostRecentLocked(o.order); ok {
		return existing, false, nil
	}

	if policy == PolicyLazy {
		return "", false, nil
	}

	id, err = o.createLocked(workingDir)
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}
