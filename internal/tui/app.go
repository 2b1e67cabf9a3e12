// Package tui implements the palette browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/palettes/internal/catalog"
	"github.com/opencode-ai/palettes/internal/tui/components"
	"github.com/opencode-ai/palettes/internal/tui/styles"
	"github.com/opencode-ai/palettes/pkg/palette"
)

// Config configures the browser.
type Config struct {
	Catalog *catalog.Catalog
	Theme   string
}

// Run launches the browser program.
func Run(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type viewID int

const (
	viewPalettes viewID = iota
	viewColors
)

const (
	minWidth  = 60
	minHeight = 12
)

type model struct {
	width     int
	height    int
	styles    styles.Styles
	catalog   *catalog.Catalog
	picker    *components.Picker
	list      *components.SwatchList
	view      viewID
	filtering bool
	status    string
}

func newModel(cfg Config) model {
	theme, _ := styles.ThemeByName(cfg.Theme)

	var items []components.PickerItem
	if cfg.Catalog != nil {
		for _, p := range cfg.Catalog.Palettes() {
			src, _ := cfg.Catalog.Source(p.Name())
			items = append(items, components.PickerItem{
				Name:        p.Name(),
				Description: src.Description,
				Source:      p.Source(),
				Colors:      p.All(),
			})
		}
	}

	return model{
		styles:  styles.BuildStyles(theme),
		catalog: cfg.Catalog,
		picker:  components.NewPicker(items),
		view:    viewPalettes,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg), nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			if m.view == viewPalettes {
				m.filtering = true
			}
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "enter", "right", "l":
			m.open()
		case "esc", "left", "h":
			if m.view == viewColors {
				m.view = viewPalettes
				m.status = ""
			}
		case "t":
			m.cycleTheme()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) model {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.filtering = false
	case tea.KeyBackspace:
		runes := []rune(m.picker.Query)
		if len(runes) > 0 {
			m.picker.SetQuery(string(runes[:len(runes)-1]))
		}
	case tea.KeyRunes, tea.KeySpace:
		m.picker.SetQuery(m.picker.Query + string(msg.Runes))
	case tea.KeyCtrlC:
		m.filtering = false
		m.picker.Reset()
	}
	return m
}

func (m *model) move(delta int) {
	switch m.view {
	case viewColors:
		m.list.Move(delta)
		m.status = m.bindingStatus()
	default:
		m.picker.Move(delta)
	}
}

func (m *model) open() {
	if m.view != viewPalettes || m.catalog == nil {
		return
	}
	item := m.picker.SelectedItem()
	if item == nil {
		return
	}
	p, ok := m.catalog.Get(item.Name)
	if !ok {
		return
	}
	m.list = &components.SwatchList{Palette: p}
	m.view = viewColors
	m.status = m.bindingStatus()
}

func (m *model) cycleTheme() {
	names := styles.ThemeNames()
	next := names[0]
	for i, name := range names {
		if name == m.styles.Theme.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	theme, _ := styles.ThemeByName(next)
	m.styles = styles.BuildStyles(theme)
}

// bindingStatus describes the generated Go bindings for the selected color.
func (m model) bindingStatus() string {
	if m.list == nil || m.list.Palette.Len() == 0 {
		return ""
	}
	p := m.list.Palette
	entry := p.Entry(m.list.Index)
	pkg := strings.ToLower(p.Name())
	return fmt.Sprintf("%s.%s  %s{}.%s()  %s",
		pkg, palette.UpperSnake(entry.Name),
		pkg+"."+p.Name(), palette.GoName(palette.LowerSnake(entry.Name)),
		entry.Value.Hex())
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return joinLines(m.smallViewLines()) + "\n"
	}

	var lines []string
	switch m.view {
	case viewColors:
		lines = m.list.Render(m.styles, m.bodyHeight())
		if m.status != "" {
			lines = append(lines, "", m.styles.Accent.Render(m.status))
		}
		lines = append(lines, "", m.styles.Muted.Render("j/k move | esc back | t theme | q quit"))
	default:
		lines = m.picker.Render(m.styles, m.width)
		hint := "j/k move | enter open | / filter | t theme | q quit"
		if m.filtering {
			hint = "type to filter | enter/esc done"
		}
		lines = append(lines, "", m.styles.Muted.Render(hint))
	}
	return joinLines(lines) + "\n"
}

func (m model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	return m.height - 6
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
