package views

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glasshq/glass/internal/mode"
	"github.com/glasshq/glass/internal/session"
)

// Editor is the editor-mode view: a full-screen buffer pane with an
// optional dock panel along the bottom showing the workspace's terminal
// sessions. The dock and the full-screen terminal mode present the same
// session set; the dock holds only session ids.
type Editor struct {
	sessions    *session.Owner
	workingDir  func() (string, error)
	buffer      textarea.Model
	dockVisible bool
	showElapsed bool
	filePath    string
	status      string
	width       int
	height      int
}

// NewEditor creates the editor-mode view. showElapsed controls whether
// dock entries include each session's age.
func NewEditor(sessions *session.Owner, workingDir func() (string, error), showDock, showElapsed bool) *Editor {
	ta := textarea.New()
	ta.Placeholder = "Open a file with 'f' from a terminal, or start typing"
	ta.ShowLineNumbers = true

	return &Editor{
		sessions:    sessions,
		workingDir:  workingDir,
		buffer:      ta,
		dockVisible: showDock,
		showElapsed: showElapsed,
		width:       80,
		height:      24,
	}
}

// ModeID identifies this view's mode.
func (e *Editor) ModeID() mode.ID {
	return mode.Editor
}

// Activate prepares the editor for display. The editor borrows nothing,
// so readiness is only moving focus to the buffer pane.
func (e *Editor) Activate(t mode.Transition) error {
	e.buffer.Focus()
	return nil
}

// Deactivate releases transient focus. Buffer contents and the session
// dock are untouched; deactivation never tears anything down.
func (e *Editor) Deactivate(t mode.Transition) error {
	e.buffer.Blur()
	return nil
}

// Focus moves input focus to the active editor pane, the mode's
// canonical focus target.
func (e *Editor) Focus() {
	e.buffer.Focus()
}

// ToggleDock shows or hides the dock panel.
func (e *Editor) ToggleDock() {
	e.dockVisible = !e.dockVisible
}

// DockVisible reports whether the dock panel is showing.
func (e *Editor) DockVisible() bool {
	return e.dockVisible
}

// FilePath returns the path of the currently open file, if any.
func (e *Editor) FilePath() string {
	return e.filePath
}

// OpenPath loads a file into the buffer. Re-opening the already-open
// path reloads it; a failed read leaves the buffer unchanged and
// reports through the status line. Safe to call regardless of whether
// the editor is the active mode.
func (e *Editor) OpenPath(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		e.status = fmt.Sprintf("cannot open %s: %v", path, err)
		return
	}

	e.buffer.SetValue(string(data))
	e.filePath = path
	e.status = ""
}

// Update handles messages
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case OpenPathMsg:
		e.OpenPath(msg.Path)
		return nil

	case SessionsChangedMsg:
		// The dock renders straight from the owner; nothing cached.
		return nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+n" && e.dockVisible {
			return e.newDockSessionCmd()
		}
		var cmd tea.Cmd
		e.buffer, cmd = e.buffer.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	e.buffer, cmd = e.buffer.Update(msg)
	return cmd
}

// newDockSessionCmd creates a terminal session from the dock panel. The
// session belongs to the workspace owner, exactly as one created in
// terminal mode.
func (e *Editor) newDockSessionCmd() tea.Cmd {
	return func() tea.Msg {
		wd, err := e.workingDir()
		if err != nil {
			return SessionsChangedMsg{}
		}
		if _, err := e.sessions.Create(wd); err != nil {
			return SessionsChangedMsg{}
		}
		return SessionsChangedMsg{}
	}
}

// SetSize sets the size of the view
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height

	bufferHeight := height - 2
	if e.dockVisible {
		bufferHeight -= e.dockHeight()
	}
	if bufferHeight < 3 {
		bufferHeight = 3
	}
	e.buffer.SetWidth(width)
	e.buffer.SetHeight(bufferHeight)
}

func (e *Editor) dockHeight() int {
	// Header line plus one line per session, capped.
	n := e.sessions.Count()
	if n > 4 {
		n = 4
	}
	return n + 2
}

// View renders the editor mode
func (e *Editor) View() string {
	title := e.filePath
	if title == "" {
		title = "[no file]"
	} else {
		title = filepath.Base(title)
	}

	header := lipgloss.NewStyle().Bold(true).Render(title)

	parts := []string{header, e.buffer.View()}
	if e.status != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).Render(e.status))
	}
	if e.dockVisible {
		parts = append(parts, e.renderDock())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderDock renders the dock panel: the same sessions terminal mode
// shows, in the same order, resolved from the same owner.
func (e *Editor) renderDock() string {
	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color("240")).
		Width(e.width)

	ids := e.sessions.Sessions()
	if len(ids) == 0 {
		return border.Render("Terminal | no sessions (ctrl+n to create)")
	}

	lines := fmt.Sprintf("Terminal | %d session(s)", len(ids))
	for _, id := range ids {
		s, ok := e.sessions.Get(id)
		if !ok {
			continue
		}
		lines += fmt.Sprintf("\n  %s  %s", shortID(s.ID), s.WorkingDir)
		if e.showElapsed {
			lines += fmt.Sprintf("  (%s ago)", elapsed(s.CreatedAt))
		}
	}

	return border.Render(lines)
}

func shortID(id session.ID) string {
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func elapsed(since time.Time) string {
	return time.Since(since).Round(time.Second).String()
}
