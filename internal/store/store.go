package store

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/glasshq/glass/internal/mode"
)

// WorkspaceRecord is the persisted row for one workspace. ActiveMode is
// stored as a plain string so that records written by newer versions
// with modes this build does not know remain readable.
type WorkspaceRecord struct {
	ActiveMode string    `json:"active_mode"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// State is the complete on-disk workspace table.
type State struct {
	Workspaces map[string]WorkspaceRecord `json:"workspaces"`
}

// Store manages workspace-mode persistence with file locking. One file
// holds the records for every workspace keyed by workspace id.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the given directory. State lives
// in <dir>/.glass/workspaces.json.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) statePath() string {
	return filepath.Join(s.dir, ".glass", "workspaces.json")
}

func (s *Store) lockPath() string {
	return filepath.Join(s.dir, ".glass", "workspaces.json.lock")
}

// Load reads the workspace table with a read lock. A missing file
// yields an empty table rather than an error.
func (s *Store) Load() (*State, error) {
	statePath := s.statePath()

	glassDir := filepath.Join(s.dir, ".glass")
	if err := os.MkdirAll(glassDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .glass directory: %w", err)
	}

	lock := flock.New(s.lockPath())
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to acquire read lock: %w", err)
	}
	defer lock.Unlock()

	if _, err := os.Stat(statePath); os.IsNotExist(err) {
		return &State{Workspaces: map[string]WorkspaceRecord{}}, nil
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	if state.Workspaces == nil {
		state.Workspaces = map[string]WorkspaceRecord{}
	}

	return &state, nil
}

// Save writes the workspace table with a write lock and an atomic
// tmp+rename write.
func (s *Store) Save(state *State) error {
	statePath := s.statePath()

	glassDir := filepath.Join(s.dir, ".glass")
	if err := os.MkdirAll(glassDir, 0755); err != nil {
		return fmt.Errorf("failed to create .glass directory: %w", err)
	}

	lock := flock.New(s.lockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmpPath := statePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, statePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// SaveActiveMode records the active mode for a workspace.
func (s *Store) SaveActiveMode(workspaceID string, id mode.ID) error {
	state, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	state.Workspaces[workspaceID] = WorkspaceRecord{
		ActiveMode: string(id),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := s.Save(state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// LoadActiveMode returns the recorded active mode for a workspace. ok
// is false for a missing row or a blank stored value; the caller is
// responsible for recognizing the id and falling back to its default,
// so that schema drift after a downgrade never fails a workspace load.
func (s *Store) LoadActiveMode(workspaceID string) (mode.ID, bool, error) {
	state, err := s.Load()
	if err != nil {
		return "", false, err
	}

	rec, ok := state.Workspaces[workspaceID]
	if !ok || rec.ActiveMode == "" {
		return "", false, nil
	}

	return mode.ID(rec.ActiveMode), true, nil
}

// GenerateID generates a unique 6-character hex ID for workspace
// records that have no natural path key.
func GenerateID() (string, error) {
	bytes := make([]byte, 3)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
