package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// Ensure KeyMap works with the help component.
var _ help.KeyMap = (*KeyMap)(nil)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
		{"h moves left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, km.Left},
		{"right arrow moves right", tea.KeyMsg{Type: tea.KeyRight}, km.Right},
		{"k moves up", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, km.Up},
		{"down arrow moves down", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"[ is previous month", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")}, km.PrevMonth},
		{"page down is next month", tea.KeyMsg{Type: tea.KeyPgDown}, km.NextMonth},
		{"enter jumps to next business day", tea.KeyMsg{Type: tea.KeyEnter}, km.NextWorkday},
		{"t is today", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}, km.Today},
		{"y toggles next year", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, km.NextYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 5)
	assert.Len(t, km.FullHelp(), 4)
	for _, b := range km.ShortHelp() {
		assert.NotEmpty(t, b.Help().Desc)
	}
}
