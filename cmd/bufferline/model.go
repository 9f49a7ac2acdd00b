// ABOUTME: Bubbletea model: key dispatch, mouse-to-zone routing, fuzzy picker
// ABOUTME: The strip re-renders from scratch on every frame

package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sahilm/fuzzy"

	"github.com/jessarcher/bufferline/internal/bufferline"
	"github.com/jessarcher/bufferline/internal/config"
	"github.com/jessarcher/bufferline/internal/log"
	"github.com/jessarcher/bufferline/pkg/tui/theme"
)

// zoneMarker adapts the global bubblezone manager to the core's Marker.
type zoneMarker struct{}

func (zoneMarker) Mark(id, text string) string { return zone.Mark(id, text) }

var (
	bodyStyle   = lipgloss.NewStyle().Padding(1, 2)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	pickerStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	matchStyle  = lipgloss.NewStyle().Bold(true)
)

type model struct {
	host     *scratchHost
	renderer *bufferline.Renderer
	opts     *config.Options
	kb       *config.Keybindings

	width  int
	height int

	picking   bool
	query     string
	pickNames []string
	pickIDs   []int
	matches   []fuzzy.Match
	pickIndex int
}

func newModel(opts *config.Options, kb *config.Keybindings) *model {
	host := newScratchHost()
	return &model{
		host:     host,
		renderer: bufferline.New(host, opts, theme.Current().Palette, zoneMarker{}),
		opts:     opts,
		kb:       kb,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.dispatchKey(msg)
	case tea.MouseMsg:
		m.routeClick(msg)
	}
	return m, nil
}

func (m *model) dispatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := m.kb.Lookup(msg.String())
	if !ok {
		return m, nil
	}

	switch action {
	case config.ActionQuit:
		return m, tea.Quit
	case config.ActionNextBuffer:
		m.host.step(1)
	case config.ActionPrevBuffer:
		m.host.step(-1)
	case config.ActionCloseBuffer:
		m.host.closeBuffer(m.host.currentID)
	case config.ActionNewBuffer:
		m.host.newBuffer()
	case config.ActionNextGroup:
		m.host.nextGroup()
	case config.ActionToggleModified:
		if b := m.host.find(m.host.currentID); b != nil {
			b.modified = !b.modified
		}
	case config.ActionCycleNumbering:
		m.cycleNumbering()
	case config.ActionPickBuffer:
		m.openPicker()
	}
	return m, nil
}

// cycleNumbering swaps in a fresh options object; the renderer always gets
// configuration whole, never mutated in place.
func (m *model) cycleNumbering() {
	next := *m.opts
	switch m.opts.Numbering {
	case config.NumberingNone:
		next.Numbering = config.NumberingOrdinal
	case config.NumberingOrdinal:
		next.Numbering = config.NumberingID
	default:
		next.Numbering = config.NumberingNone
	}
	m.opts = &next
	m.renderer = bufferline.New(m.host, m.opts, theme.Current().Palette, zoneMarker{})
}

// routeClick resolves a released left click against the marked zones and
// hands the id to the matching core handler.
func (m *model) routeClick(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}

	for _, it := range m.host.Items() {
		if zone.Get(fmt.Sprintf("buf:%d", it.ID)).InBounds(msg) {
			m.renderer.HandleSelect(it.ID)
			return
		}
		if zone.Get(fmt.Sprintf("win:%d", it.ID)).InBounds(msg) {
			m.renderer.HandleFocusWindow(it.ID)
			return
		}
	}
	for _, g := range m.host.Groups() {
		if zone.Get(fmt.Sprintf("tab:%d", g.ID)).InBounds(msg) {
			m.renderer.HandleSwitchGroup(g.ID)
			return
		}
	}
	if zone.Get("close").InBounds(msg) {
		m.host.closeBuffer(m.host.currentID)
	}
}

func (m *model) openPicker() {
	m.picking = true
	m.query = ""
	m.pickIndex = 0
	m.pickNames = m.pickNames[:0]
	m.pickIDs = m.pickIDs[:0]
	for _, it := range m.host.Items() {
		m.pickNames = append(m.pickNames, it.Name)
		m.pickIDs = append(m.pickIDs, it.ID)
	}
	m.refreshMatches()
}

func (m *model) refreshMatches() {
	if m.query == "" {
		m.matches = m.matches[:0]
		for i, name := range m.pickNames {
			m.matches = append(m.matches, fuzzy.Match{Str: name, Index: i})
		}
		return
	}
	m.matches = fuzzy.Find(m.query, m.pickNames)
	if m.pickIndex >= len(m.matches) {
		m.pickIndex = 0
	}
}

func (m *model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.picking = false
	case "enter":
		if m.pickIndex < len(m.matches) {
			m.renderer.HandleSelect(m.pickIDs[m.matches[m.pickIndex].Index])
		}
		m.picking = false
	case "up":
		if m.pickIndex > 0 {
			m.pickIndex--
		}
	case "down":
		if m.pickIndex < len(m.matches)-1 {
			m.pickIndex++
		}
	case "backspace":
		if m.query != "" {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.refreshMatches()
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.query += string(msg.Runes)
			m.refreshMatches()
		}
	}
	return m, nil
}

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}

	strip := m.renderer.Render(m.width)
	log.Debug("rendered strip for width %d", m.width)

	var body string
	if m.picking {
		body = m.viewPicker()
	} else {
		body = m.viewBuffer()
	}

	return zone.Scan(strip + "\n" + body)
}

func (m *model) viewBuffer() string {
	b := m.host.find(m.host.currentID)
	if b == nil {
		return bodyStyle.Render(dimStyle.Render("no buffer selected"))
	}

	state := "clean"
	if b.modified {
		state = "modified"
	}
	content := fmt.Sprintf("%s\n\n%s", b.name,
		dimStyle.Render(fmt.Sprintf("buffer %d, group %d, %s", b.id, b.group, state)))
	return bodyStyle.Render(content)
}

func (m *model) viewPicker() string {
	var b strings.Builder
	b.WriteString("pick: " + m.query + "▏\n")
	for i, match := range m.matches {
		line := match.Str
		if i == m.pickIndex {
			line = matchStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(dimStyle.Render("  no matches\n"))
	}
	return pickerStyle.Render(strings.TrimRight(b.String(), "\n"))
}
