package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/isocoins"
)

// MapSelectModel lets users pick the Iso Coins map before playing.
type MapSelectModel struct {
	maps      []isocoins.MapInfo
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *isocoins.MapInfo
	quitting  bool
	back      bool
}

// NewMapSelectModel creates a map selector over the given catalog.
func NewMapSelectModel(maps []isocoins.MapInfo, width, height int) MapSelectModel {
	return MapSelectModel{
		maps:      maps,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m MapSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MapSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MapSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.maps)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.maps) > 0 {
			info := m.maps[m.cursor]
			m.selected = &info
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the map list.
func (m MapSelectModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("I S O   C O I N S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a map:", m.width))
	b.WriteString("\n\n")

	for i, info := range m.maps {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		source := "built-in"
		if !info.Builtin {
			source = info.Path
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-14s %s", cursor, info.Name, source), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen map reference, or "" while choosing.
// File maps are referenced by path, built-ins by name.
func (m MapSelectModel) Selected() string {
	if m.selected == nil {
		return ""
	}
	if m.selected.Builtin {
		return m.selected.Name
	}
	return m.selected.Path
}

// IsQuitting returns true if user wants to quit.
func (m MapSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MapSelectModel) WantsBack() bool {
	return m.back
}

// RunMapSelector runs the map selection and returns the chosen map
// reference, or "" if the user backed out or quit.
func RunMapSelector(cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(
		NewMapSelectModel(isocoins.AvailableMaps(), cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(MapSelectModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return "", nil
	}
	return m.Selected(), nil
}
