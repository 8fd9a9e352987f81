package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/registry"
	"github.com/vovakirdan/tui-roids/internal/storage"
)

// MenuChoice is an entry on the title screen.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuScores
	MenuQuit
)

var menuChoices = []struct {
	choice MenuChoice
	label  string
}{
	{MenuPlay, "Play"},
	{MenuScores, "High scores"},
	{MenuQuit, "Quit"},
}

// controlsHelp lists the in-game keys shown under the menu.
var controlsHelp = []string{
	"Left/Right  rotate",
	"Up          thrust",
	"Space       fire",
	"P           pause",
	"Esc         back to menu",
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("209"))
)

// MenuModel is the Bubble Tea model for the title screen of one game.
type MenuModel struct {
	gameID    string
	title     string
	best      int
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	chosen    bool
}

// NewMenuModel creates the title screen for gameID.
func NewMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig) MenuModel {
	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	return MenuModel{
		gameID:    gameID,
		title:     title,
		best:      bestScore(store, gameID),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if menuChoices[m.cursor].choice == MenuQuit {
			m.quitting = true
		}
		m.chosen = true
		return m, tea.Quit

	case MenuActionScoreboard:
		m.cursor = int(MenuScores)
		m.chosen = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the title screen.
func (m MenuModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("R O I D S"), m.width, 9))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.title, m.width, len(m.title)))
	b.WriteString("\n")
	if m.best > 0 {
		best := fmt.Sprintf("Best %d", m.best)
		b.WriteString(centerText(menuDimStyle.Render(best), m.width, len(best)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, c := range menuChoices {
		line := "  " + c.label
		if i == m.cursor {
			line = menuPickStyle.Render("> " + c.label)
		}
		b.WriteString(centerText(line, m.width, len(c.label)+2))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, h := range controlsHelp {
		b.WriteString(centerText(menuDimStyle.Render(h), m.width, len(h)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(footer, m.width, len(footer)))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the picked entry and whether one was picked.
func (m MenuModel) Choice() (MenuChoice, bool) {
	return menuChoices[m.cursor].choice, m.chosen && !m.quitting
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// bestScore reads a game's kept best score for display.
func bestScore(store *storage.Store, gameID string) int {
	if store == nil {
		return 0
	}
	best, _ := store.HighScores(gameID).Read()
	return best
}

// centerText left-pads text so its visible width w sits centered in width.
// Styled text carries escape codes, so the caller passes the visible width.
func centerText(text string, width, w int) string {
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Config          core.RuntimeConfig
	Play            bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the title screen for gameID and returns the choice.
func RunMenu(store *storage.Store, gameID string, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, gameID, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}

// result converts the final menu state into a MenuResult.
func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.Config()}

	choice, ok := m.Choice()
	switch {
	case !ok:
		res.Quit = true
	case choice == MenuPlay:
		res.Play = true
	case choice == MenuScores:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res
}
