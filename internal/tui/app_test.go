package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/palettes/internal/catalog"
)

func testModel(t *testing.T) model {
	t.Helper()
	sources, err := catalog.LoadBuiltins()
	require.NoError(t, err)
	return newModel(Config{Catalog: catalog.New(sources, zerolog.Nop())})
}

func press(m model, keys ...string) model {
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestBrowseOpensPalette(t *testing.T) {
	m := testModel(t)
	assert.Contains(t, m.View(), "> Common (10)")

	m = press(m, "enter")
	require.Equal(t, viewColors, m.view)
	assert.Contains(t, m.View(), "Common (10 colors)")
	assert.Equal(t, "common.BLACK  common.Common{}.Black()  #000000ff", m.status)

	m = press(m, "j")
	assert.Equal(t, "common.BLUE  common.Common{}.Blue()  #0000ffff", m.status)

	m = press(m, "esc")
	assert.Equal(t, viewPalettes, m.view)
}

func TestBrowseFilter(t *testing.T) {
	m := testModel(t)
	m = press(m, "/", "d", "b", "3", "x", "backspace", "enter")

	assert.False(t, m.filtering)
	assert.Equal(t, "db3", m.picker.Query)
	require.Len(t, m.picker.Visible(), 0, "names do not contain db3")

	m = press(m, "/")
	for range 3 {
		m = press(m, "backspace")
	}
	m = press(m, "3", "2", "enter", "enter")
	require.Equal(t, viewColors, m.view)
	assert.Equal(t, "Dawnbringer32", m.list.Palette.Name())
}

func TestThemeCycleAndQuit(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, "default", m.styles.Theme.Name)
	m = press(m, "t")
	assert.Equal(t, "high-contrast", m.styles.Theme.Name)
	m = press(m, "t")
	assert.Equal(t, "default", m.styles.Theme.Name)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestSmallTerminal(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	view := next.(model).View()
	assert.True(t, strings.Contains(view, "Terminal too small (20x5)."), view)
}

func TestEmptyCatalog(t *testing.T) {
	m := newModel(Config{})
	assert.Contains(t, m.View(), "No palettes found")
	m = press(m, "enter")
	assert.Equal(t, viewPalettes, m.view)
}
