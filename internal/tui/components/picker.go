package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/palettes/internal/tui/styles"
	"github.com/opencode-ai/palettes/pkg/color"
)

// PickerItem is one palette in the picker.
type PickerItem struct {
	Name        string
	Description string
	Source      string
	Colors      []color.Color
}

// Picker stores state for the filterable palette list.
type Picker struct {
	Query string
	Index int
	Items []PickerItem
}

// NewPicker creates a picker over items, kept in the given order.
func NewPicker(items []PickerItem) *Picker {
	p := &Picker{}
	p.SetItems(items)
	return p
}

// SetItems replaces the item list.
func (p *Picker) SetItems(items []PickerItem) {
	p.Items = clonePickerItems(items)
	p.ClampIndex()
}

// SetQuery updates the filter and keeps the selection in range.
func (p *Picker) SetQuery(query string) {
	p.Query = query
	p.ClampIndex()
}

// Reset clears the filter and selection.
func (p *Picker) Reset() {
	p.Query = ""
	p.Index = 0
}

// Move shifts the selection, wrapping at either end.
func (p *Picker) Move(delta int) {
	items := p.Visible()
	if len(items) == 0 {
		p.Index = 0
		return
	}
	if delta == 0 {
		return
	}
	idx := p.Index
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	idx += delta
	if idx < 0 {
		idx = len(items) - 1
	} else if idx >= len(items) {
		idx = 0
	}
	p.Index = idx
}

// ClampIndex ensures the selection index stays in bounds.
func (p *Picker) ClampIndex() {
	items := p.Visible()
	if len(items) == 0 {
		p.Index = 0
		return
	}
	if p.Index < 0 {
		p.Index = 0
	}
	if p.Index >= len(items) {
		p.Index = len(items) - 1
	}
}

// SelectedItem returns the currently selected entry.
func (p *Picker) SelectedItem() *PickerItem {
	items := p.Visible()
	if p.Index < 0 || p.Index >= len(items) {
		return nil
	}
	selected := items[p.Index]
	return &selected
}

// Visible returns the items matching the query.
func (p *Picker) Visible() []PickerItem {
	query := strings.TrimSpace(strings.ToLower(p.Query))
	if query == "" {
		return p.Items
	}
	tokens := strings.Fields(query)
	filtered := make([]PickerItem, 0, len(p.Items))
	for _, item := range p.Items {
		haystack := strings.ToLower(item.Name + " " + item.Description)
		if matchesTokens(haystack, tokens) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Render renders the picker lines. Each line shows the palette name, its
// color count and a strip of its first colors.
func (p *Picker) Render(styleSet styles.Styles, width int) []string {
	lines := []string{
		styleSet.Accent.Render("Palettes"),
		styleSet.Text.Render(fmt.Sprintf("/ %s", p.Query)),
	}

	items := p.Visible()
	if len(items) == 0 {
		if strings.TrimSpace(p.Query) != "" {
			return append(lines, EmptyPalettesFiltered(p.Query).RenderCompact(styleSet))
		}
		return append(lines, EmptyCatalog().RenderCompact(styleSet))
	}

	stripWidth := 16
	if width > 0 && width < 48 {
		stripWidth = 8
	}
	for idx, item := range items {
		label := truncate(fmt.Sprintf("%s (%d)", item.Name, len(item.Colors)), 28)
		label = fmt.Sprintf("%-28s", label)
		strip := styles.Strip(item.Colors, stripWidth)
		if idx == p.Index {
			lines = append(lines, styleSet.Focus.Render("> "+label)+" "+strip)
			continue
		}
		lines = append(lines, styleSet.Muted.Render("  "+label)+" "+strip)
	}
	return lines
}

func matchesTokens(haystack string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

func clonePickerItems(items []PickerItem) []PickerItem {
	if len(items) == 0 {
		return nil
	}
	clone := make([]PickerItem, len(items))
	copy(clone, items)
	return clone
}
