package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func TestButtonBarLayoutUsesWidestLabel(t *testing.T) {
	bar := &ButtonBar{
		Gap: 2,
		Buttons: []Button{
			{Label: "Play", Command: core.CommandTogglePause},
			{Label: "Instant Generate", Command: core.CommandInstant},
		},
	}
	bar.Layout(5, 3)

	want := 16 + 2*buttonPadding
	for _, b := range bar.Buttons {
		if b.Rect.W != want || b.Rect.H != 1 || b.Rect.Y != 3 {
			t.Errorf("%s rect = %+v, want width %d at row 3", b.Label, b.Rect, want)
		}
	}
	if bar.Buttons[0].Rect.X != 5 {
		t.Errorf("first button at x=%d, want 5", bar.Buttons[0].Rect.X)
	}
	if got := bar.Buttons[1].Rect.X; got != 5+want+2 {
		t.Errorf("second button at x=%d, want %d", got, 5+want+2)
	}
	if got := bar.Width(); got != 2*want+2 {
		t.Errorf("Width() = %d, want %d", got, 2*want+2)
	}
}

func TestButtonBarHitTest(t *testing.T) {
	bar := &ButtonBar{
		Gap: 1,
		Buttons: []Button{
			{Label: "Reset", Command: core.CommandReset},
			{Label: "Step", Command: core.CommandStep, Disabled: true},
		},
	}
	bar.Layout(0, 0)

	tests := []struct {
		name string
		x, y int
		want core.Command
	}{
		{"inside first", 0, 0, core.CommandReset},
		{"right edge of first", bar.Buttons[0].Rect.Right() - 1, 0, core.CommandReset},
		{"gap", bar.Buttons[0].Rect.Right(), 0, core.CommandNone},
		{"disabled", bar.Buttons[1].Rect.X, 0, core.CommandNone},
		{"other row", 0, 1, core.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bar.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestButtonBarFind(t *testing.T) {
	bar := &ButtonBar{Buttons: []Button{{Label: "Play", Command: core.CommandTogglePause}}}

	b := bar.Find(core.CommandTogglePause)
	if b == nil {
		t.Fatal("Find returned nil")
	}
	b.Label = "Pause"
	if bar.Buttons[0].Label != "Pause" {
		t.Error("Find should return the button in place")
	}
	if bar.Find(core.CommandReset) != nil {
		t.Error("Find should return nil for a missing command")
	}
}

func TestButtonDraw(t *testing.T) {
	s := core.NewScreen(12, 1)
	enabled := Button{Label: "Go", Rect: core.NewRect(0, 0, 6, 1)}
	disabled := Button{Label: "No", Disabled: true, Rect: core.NewRect(6, 0, 6, 1)}
	enabled.Draw(s)
	disabled.Draw(s)

	if got := s.Row(0); got != "  Go    No  " {
		t.Errorf("row = %q", got)
	}
	if c := s.GetCell(0, 0); c.Bg != core.ColorWhite {
		t.Errorf("enabled background = %v, want white", c.Bg)
	}
	if c := s.GetCell(8, 0); c.Fg != core.ColorGray || c.Bg != core.ColorDefault {
		t.Errorf("disabled colors = %v on %v", c.Fg, c.Bg)
	}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.CommandTogglePause},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.CommandTogglePause},
		{"i", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")}, core.CommandInstant},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CommandInstant},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.CommandReset},
		{"n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, core.CommandStep},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.CommandStep},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.CommandScreenshot},
		{"plus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}, core.CommandFaster},
		{"equals", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("=")}, core.CommandFaster},
		{"minus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")}, core.CommandSlower},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CommandQuit},
		{"esc disabled by default", tea.KeyMsg{Type: tea.KeyEsc}, core.CommandNone},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Command(tt.msg); got != tt.want {
				t.Errorf("Command(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapDisabledBindingNeverMatches(t *testing.T) {
	keys := DefaultKeyMap()
	keys.Step.SetEnabled(false)
	if got := keys.Command(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}); got != core.CommandNone {
		t.Errorf("disabled step = %v", got)
	}

	keys.Back.SetEnabled(true)
	if got := keys.Command(tea.KeyMsg{Type: tea.KeyEsc}); got != core.CommandBack {
		t.Errorf("esc = %v, want Back", got)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "maze")
	s.DrawText(1, 1, "ok")

	if got, want := RenderScreen(s), "maze \n ok  "; got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}
