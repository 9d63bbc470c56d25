package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glasshq/glass/internal/config"
	"github.com/glasshq/glass/internal/mode"
	"github.com/glasshq/glass/internal/tui/views"
	"github.com/glasshq/glass/internal/workspace"
)

// ModeView is what the presentation container requires of a mode view
// beyond the mode contract: it renders, receives messages, and resizes.
type ModeView interface {
	mode.View
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
}

// App is the root Bubbletea model: the presentation container. Each
// frame it renders only the active mode's view, full-screen; the mode
// controller is the single place the active mode changes.
type App struct {
	ctx        *Context
	keyMap     KeyMap
	styles     Styles
	registry   *mode.Registry
	cache      *mode.Cache
	controller *mode.Controller
	program    *tea.Program
	status     string
	width      int
	height     int
	err        error
}

// NewApp creates the application model, registers the built-in modes,
// and restores the workspace's persisted active mode.
func NewApp(ctx *Context) *App {
	app := &App{
		ctx:    ctx,
		keyMap: DefaultKeyMap(),
		styles: DefaultStyles(),
		width:  80,
		height: 24,
	}

	app.registry = mode.NewRegistry()
	app.cache = mode.NewCache(app.registry)

	if err := RegisterModes(app.registry, ctx.Manager, ctx.Config); err != nil {
		app.err = err
		return app
	}

	mgr := ctx.Manager
	app.controller = mode.NewController(
		app.registry, app.cache, mgr.Store(), mgr.WorkspaceID(),
		ctx.Config.DefaultMode(), mgr.Logger())

	app.activateInitial(app.controller.Restore())
	return app
}

// RegisterModes populates a registry with the built-in modes for one
// workspace. Registration happens once at startup; the registry is
// never mutated afterwards. The CLI builds the same table to validate
// mode ids, so a new mode needs exactly one registration here.
func RegisterModes(r *mode.Registry, mgr *workspace.Manager, cfg *config.Config) error {
	err := r.Register(mode.Descriptor{
		ID:          mode.Editor,
		DisplayName: "Editor",
		New: func() (mode.View, error) {
			return views.NewEditor(mgr.Sessions(), mgr.WorkingDir,
				cfg.UI.ShowDockPanel, cfg.UI.ShowElapsedTime), nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to register editor mode: %w", err)
	}

	err = r.Register(mode.Descriptor{
		ID:          mode.Terminal,
		DisplayName: "Terminal",
		New: func() (mode.View, error) {
			return views.NewTerminal(mgr.Sessions(), cfg.ActivationPolicy(),
				mgr.WorkingDir, mgr.Tmux().CapturePaneContent), nil
		},
		Available: func() error {
			if !mgr.Tmux().IsInstalled() {
				return fmt.Errorf("tmux is not installed")
			}
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to register terminal mode: %w", err)
	}

	return nil
}

// activateInitial runs the activation hook for the restored mode.
// Restore itself runs no hooks; the container activates once it owns
// the render surface. A mode that cannot come up, including one whose
// availability gate rejects it, falls back to the default so the
// workspace always loads into a valid mode.
func (a *App) activateInitial(id mode.ID) {
	if d, ok := a.registry.Resolve(id); ok && d.Available != nil && id != mode.DefaultID {
		if aerr := d.Available(); aerr != nil {
			a.ctx.Manager.Logger().Warn("restored mode unavailable, using default",
				"mode", id, "error", aerr)
			if serr := a.controller.SwitchTo(mode.DefaultID); serr != nil {
				a.err = serr
			}
			return
		}
	}

	view, err := a.cache.ViewFor(id)
	if err == nil {
		if aerr := view.Activate(mode.Transition{To: id}); aerr != nil {
			a.ctx.Manager.Logger().Warn("initial activation failed",
				"mode", id, "error", aerr)
		}
		view.Focus()
		return
	}

	if id != mode.DefaultID {
		a.ctx.Manager.Logger().Warn("restored mode unavailable, using default",
			"mode", id, "error", err)
		if serr := a.controller.SwitchTo(mode.DefaultID); serr != nil {
			a.err = serr
		}
		return
	}

	a.err = err
}

// SetProgram attaches the running Bubbletea program.
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
}

// Controller exposes the mode controller for shutdown flushing.
func (a *App) Controller() *mode.Controller {
	return a.controller
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ctx.Width = msg.Width
		a.ctx.Height = msg.Height
		a.resizeViews()
		return a, nil

	case views.SwitchModeMsg:
		a.switchTo(msg.Target)
		return a, nil

	case views.OpenPathMsg:
		// Routed to the editor view whether or not the companion
		// switch request has landed yet; the two are independent.
		view, err := a.cache.ViewFor(mode.Editor)
		if err != nil {
			return a, nil
		}
		if mv, ok := view.(ModeView); ok {
			return a, mv.Update(msg)
		}
		return a, nil

	case views.AttachMsg:
		cmd := a.ctx.Manager.Tmux().AttachCommand(msg.TmuxName)
		return a, tea.ExecProcess(cmd, func(error) tea.Msg {
			return views.SessionsChangedMsg{}
		})

	case views.SessionsChangedMsg:
		return a, a.broadcast(msg)
	}

	return a, a.updateActiveView(msg)
}

// handleKeyMsg handles key messages
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keyMap.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keyMap.EditorMode):
		a.switchTo(mode.Editor)
		return a, nil

	case key.Matches(msg, a.keyMap.TerminalMode):
		a.switchTo(mode.Terminal)
		return a, nil

	case key.Matches(msg, a.keyMap.ToggleDock):
		// Dock toggling is an editor-context action only.
		if a.controller.Active() == mode.Editor {
			if view, ok := a.cache.Peek(mode.Editor); ok {
				if editor, isEditor := view.(*views.Editor); isEditor {
					editor.ToggleDock()
					a.resizeViews()
				}
			}
		}
		return a, nil
	}

	return a, a.updateActiveView(msg)
}

// switchTo routes a switch request through the controller. A rejected
// target is surfaced as a status flash, never a crash: the workspace
// simply stays in the mode it is in.
func (a *App) switchTo(target mode.ID) {
	err := a.controller.SwitchTo(target)
	switch {
	case err == nil:
		a.status = ""
	case errors.Is(err, mode.ErrUnknownMode):
		a.status = fmt.Sprintf("unknown mode %q", target)
	case errors.Is(err, mode.ErrUnavailable):
		a.status = fmt.Sprintf("mode %q is not available: %v", target, err)
	default:
		a.status = fmt.Sprintf("cannot switch to %q: %v", target, err)
	}
}

// updateActiveView delegates a message to the active mode's view.
func (a *App) updateActiveView(msg tea.Msg) tea.Cmd {
	view, ok := a.cache.Peek(a.controller.Active())
	if !ok {
		return nil
	}
	if mv, isModeView := view.(ModeView); isModeView {
		return mv.Update(msg)
	}
	return nil
}

// broadcast delivers a message to every constructed view, so the dock
// and the full-screen presentation stay in step about the session set.
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range a.registry.OrderedIDs() {
		if view, ok := a.cache.Peek(id); ok {
			if mv, isModeView := view.(ModeView); isModeView {
				if cmd := mv.Update(msg); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		}
	}
	return tea.Batch(cmds...)
}

// resizeViews pushes the current size to every constructed view.
func (a *App) resizeViews() {
	for _, id := range a.registry.OrderedIDs() {
		if view, ok := a.cache.Peek(id); ok {
			if mv, isModeView := view.(ModeView); isModeView {
				mv.SetSize(a.width, a.height-2)
			}
		}
	}
}

// View renders the app
func (a *App) View() string {
	if a.err != nil {
		return a.styles.ErrorText.Render(fmt.Sprintf("Error: %v", a.err))
	}

	header := a.renderSwitcher()

	body := ""
	if view, ok := a.cache.Peek(a.controller.Active()); ok {
		if mv, isModeView := view.(ModeView); isModeView {
			body = mv.View()
		}
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderSwitcher renders the mode switcher line from the registry's
// display order, highlighting the active mode.
func (a *App) renderSwitcher() string {
	active := a.controller.Active()

	var entries []string
	for _, id := range a.registry.OrderedIDs() {
		d, ok := a.registry.Resolve(id)
		if !ok {
			continue
		}
		if id == active {
			entries = append(entries, a.styles.ActiveMode.Render(d.DisplayName))
		} else {
			entries = append(entries, a.styles.InactiveMode.Render(d.DisplayName))
		}
	}

	return a.styles.SwitcherBar.Render(strings.Join(entries, " "))
}

// renderFooter renders key hints and the status flash.
func (a *App) renderFooter() string {
	hints := fmt.Sprintf("%s | %s | %s | %s",
		a.keyMap.EditorMode.Help().Key+" editor",
		a.keyMap.TerminalMode.Help().Key+" terminal",
		a.keyMap.ToggleDock.Help().Key+" dock",
		a.keyMap.Quit.Help().Key+" quit")

	footer := a.styles.Footer.Render(hints)
	if a.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left,
			a.styles.StatusBar.Render(a.status), footer)
	}
	return footer
}
