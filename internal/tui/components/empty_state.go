// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/palettes/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "📭", "🔍", "🎨").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the CLI command to run (e.g., "palettes show Common").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	// Icon + Title
	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	// Subtitle
	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	// Suggestions
	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Get started:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// Common empty states for reuse across views.

// EmptyCatalog returns an empty state for when no palettes were found.
func EmptyCatalog() EmptyState {
	return EmptyState{
		Icon:     "🎨",
		Title:    "No palettes found",
		Subtitle: "Palettes are loaded from .palettes/, ~/.config/palettes and the builtin set.",
		Suggestions: []Suggestion{
			{Command: "palettes init", Description: "write a starter config"},
			{Command: "palettes import-gpl <file.gpl>", Description: "convert a GIMP palette"},
		},
	}
}

// EmptyPalette returns an empty state for a palette without colors.
func EmptyPalette(name string) EmptyState {
	return EmptyState{
		Icon:     "📭",
		Title:    fmt.Sprintf("%s has no colors", name),
		Subtitle: "Empty palettes are valid; they generate an empty collection.",
	}
}

// EmptyPalettesFiltered returns an empty state for when filter matches nothing.
func EmptyPalettesFiltered(filter string) EmptyState {
	return EmptyState{
		Icon:     "🔍",
		Title:    fmt.Sprintf("No palettes match '%s'", filter),
		Subtitle: "Press / to edit or clear the filter.",
	}
}
