package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glasshq/glass/internal/mode"
	"github.com/glasshq/glass/internal/session"
)

// sessionItem wraps a session snapshot for list rendering
type sessionItem struct {
	s session.Session
}

func (i sessionItem) FilterValue() string {
	return string(i.s.ID)
}

func (i sessionItem) Title() string {
	return fmt.Sprintf("%s  %s", shortID(i.s.ID), i.s.TmuxName)
}

func (i sessionItem) Description() string {
	return fmt.Sprintf("%s | active %s ago",
		i.s.WorkingDir, time.Since(i.s.LastActive).Round(time.Second))
}

// Terminal is the terminal-mode view: a full-screen presentation of the
// workspace's terminal sessions. It renders the same session set as the
// editor's dock panel by resolving the same ids from the same owner;
// it never holds a private copy of a session.
// terminalKeyMap holds the in-mode session action bindings. These are
// local to the terminal presentation; the global mode-switch chords
// live in the shell's key map.
type terminalKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	New        key.Binding
	Close      key.Binding
	FollowLink key.Binding
	Attach     key.Binding
}

func defaultTerminalKeyMap() terminalKeyMap {
	return terminalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous session"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next session"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new terminal"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close terminal"),
		),
		FollowLink: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "open path in editor"),
		),
		Attach: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "attach"),
		),
	}
}

type Terminal struct {
	sessions   *session.Owner
	policy     session.Policy
	workingDir func() (string, error)
	capture    func(tmuxName string) (string, error)
	keys       terminalKeyMap
	list       list.Model
	status     string
	width      int
	height     int
}

// NewTerminal creates the terminal-mode view. capture fetches a
// session's visible pane content and may be nil when previews are
// unavailable.
func NewTerminal(sessions *session.Owner, policy session.Policy, workingDir func() (string, error), capture func(string) (string, error)) *Terminal {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 80, 20)
	l.Title = "Terminal Sessions"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)

	return &Terminal{
		sessions:   sessions,
		policy:     policy,
		workingDir: workingDir,
		capture:    capture,
		keys:       defaultTerminalKeyMap(),
		list:       l,
		width:      80,
		height:     24,
	}
}

// ModeID identifies this view's mode.
func (v *Terminal) ModeID() mode.ID {
	return mode.Terminal
}

// Activate ensures the mode is ready to present: under the eager policy
// a workspace with no sessions gets exactly one, rooted at the project
// directory or the user's home when no project is open. This runs only
// on entry; closing the last session while remaining in the mode never
// respawns one.
func (v *Terminal) Activate(t mode.Transition) error {
	wd, err := v.workingDir()
	if err != nil {
		v.refresh()
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	id, _, err := v.sessions.EnsureOnEntry(v.policy, wd)
	if err != nil {
		v.refresh()
		return fmt.Errorf("failed to ensure terminal session: %w", err)
	}

	v.refresh()
	if id != "" {
		v.selectSession(id)
	}
	return nil
}

// Deactivate releases transient focus only. Sessions are owned by the
// workspace and are untouched by leaving the mode.
func (v *Terminal) Deactivate(t mode.Transition) error {
	return nil
}

// Focus moves input focus to the most recently active terminal, the
// mode's canonical focus target.
func (v *Terminal) Focus() {
	if id, ok := v.sessions.MostRecentlyActive(v.sessions.Sessions()); ok {
		v.selectSession(id)
		v.sessions.Touch(id)
	}
}

// Selected returns the id of the currently selected session.
func (v *Terminal) Selected() (session.ID, bool) {
	item, ok := v.list.SelectedItem().(sessionItem)
	if !ok {
		return "", false
	}
	return item.s.ID, true
}

// refresh rebuilds the list from the owner.
func (v *Terminal) refresh() {
	ids := v.sessions.Sessions()
	items := make([]list.Item, 0, len(ids))
	for _, id := range ids {
		if s, ok := v.sessions.Get(id); ok {
			items = append(items, sessionItem{s: s})
		}
	}
	v.list.SetItems(items)
}

// selectSession moves the list cursor to the given session.
func (v *Terminal) selectSession(id session.ID) {
	for i, item := range v.list.Items() {
		if si, ok := item.(sessionItem); ok && si.s.ID == id {
			v.list.Select(i)
			return
		}
	}
}

// Update handles messages
func (v *Terminal) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SessionsChangedMsg:
		v.refresh()
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			v.list.CursorUp()
			return nil
		case key.Matches(msg, v.keys.Down):
			v.list.CursorDown()
			return nil
		case key.Matches(msg, v.keys.New):
			return v.newSessionCmd()
		case key.Matches(msg, v.keys.Close):
			return v.closeSelectedCmd()
		case key.Matches(msg, v.keys.FollowLink):
			return v.followLinkCmd()
		case key.Matches(msg, v.keys.Attach):
			if id, ok := v.Selected(); ok {
				v.sessions.Touch(id)
				if s, found := v.sessions.Get(id); found {
					return func() tea.Msg { return AttachMsg{TmuxName: s.TmuxName} }
				}
			}
			return nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

// newSessionCmd creates a session on user request. This is the lazy
// policy's creation path; it works identically under the eager policy.
func (v *Terminal) newSessionCmd() tea.Cmd {
	wd, err := v.workingDir()
	if err != nil {
		v.status = fmt.Sprintf("cannot create session: %v", err)
		return nil
	}

	id, err := v.sessions.Create(wd)
	if err != nil {
		v.status = fmt.Sprintf("cannot create session: %v", err)
		return nil
	}

	v.refresh()
	v.selectSession(id)
	v.status = ""
	return func() tea.Msg { return SessionsChangedMsg{} }
}

// closeSelectedCmd closes the selected session through the owner, the
// sole destruction point. No replacement is spawned.
func (v *Terminal) closeSelectedCmd() tea.Cmd {
	id, ok := v.Selected()
	if !ok {
		return nil
	}

	if err := v.sessions.Close(id); err != nil {
		v.status = fmt.Sprintf("cannot close session: %v", err)
		return nil
	}

	v.refresh()
	if next, found := v.sessions.MostRecentlyActive(v.sessions.Sessions()); found {
		v.selectSession(next)
	}
	v.status = ""
	return func() tea.Msg { return SessionsChangedMsg{} }
}

// followLinkCmd scans the selected session's pane output for a
// path-like target and dispatches it to the editor. The switch request
// and the open request are two independent messages; each is idempotent
// and they are safe to arrive in either order.
func (v *Terminal) followLinkCmd() tea.Cmd {
	id, ok := v.Selected()
	if !ok || v.capture == nil {
		return nil
	}

	s, found := v.sessions.Get(id)
	if !found {
		return nil
	}

	content, err := v.capture(s.TmuxName)
	if err != nil {
		v.status = fmt.Sprintf("cannot read session output: %v", err)
		return nil
	}

	path, ok := lastPathToken(content)
	if !ok {
		v.status = "no file path in session output"
		return nil
	}

	v.status = ""
	return tea.Batch(
		func() tea.Msg { return SwitchModeMsg{Target: mode.Editor} },
		func() tea.Msg { return OpenPathMsg{Path: path} },
	)
}

// lastPathToken finds the last path-like token in terminal output.
// Trailing :line[:col] suffixes from compiler output are stripped.
func lastPathToken(content string) (string, bool) {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		for _, tok := range strings.Fields(lines[i]) {
			if looksLikePath(tok) {
				return stripLineSuffix(tok), true
			}
		}
	}
	return "", false
}

func looksLikePath(tok string) bool {
	if !strings.Contains(tok, "/") {
		return false
	}
	// URLs and flags are not file paths.
	if strings.Contains(tok, "://") || strings.HasPrefix(tok, "-") {
		return false
	}
	return true
}

func stripLineSuffix(tok string) string {
	parts := strings.Split(tok, ":")
	if len(parts) == 1 {
		return tok
	}
	// Keep the leading component; drop numeric :line and :col parts.
	out := parts[:1]
	for _, p := range parts[1:] {
		if isDigits(p) {
			break
		}
		out = append(out, p)
	}
	return strings.Join(out, ":")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SetSize sets the size of the view
func (v *Terminal) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.list.SetWidth(width - 2)
	v.list.SetHeight(height - 4)
}

// View renders the terminal mode
func (v *Terminal) View() string {
	parts := []string{v.list.View()}
	if v.status != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).Render(v.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
