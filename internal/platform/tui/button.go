package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Button is a clickable label bound to a command.
type Button struct {
	Label    string
	Command  core.Command
	Disabled bool
	Rect     core.Rect
}

// Hit reports whether a click at (x, y) activates the button.
func (b Button) Hit(x, y int) bool {
	return !b.Disabled && b.Rect.Contains(x, y)
}

// Draw paints the button with its label centered.
func (b Button) Draw(dst *core.Screen) {
	fg, bg := core.ColorBlack, core.ColorWhite
	if b.Disabled {
		fg, bg = core.ColorGray, core.ColorDefault
	}
	dst.FillRect(b.Rect, core.Cell{Rune: ' ', Fg: fg, Bg: bg})

	n := utf8.RuneCountInString(b.Label)
	x := b.Rect.X + (b.Rect.W-n)/2
	y := b.Rect.Y + b.Rect.H/2
	dst.DrawTextStyled(x, y, b.Label, fg, bg)
}

// ButtonBar is a row of buttons laid out left to right.
type ButtonBar struct {
	Buttons []Button
	Gap     int
}

// buttonPadding is the blank space on each side of a label.
const buttonPadding = 1

// Layout places the buttons in a row starting at (x, y). Every button is
// as wide as the widest label so the row does not jump when labels change.
func (bar *ButtonBar) Layout(x, y int) {
	w := 0
	for _, b := range bar.Buttons {
		w = max(w, utf8.RuneCountInString(b.Label))
	}
	w += 2 * buttonPadding
	for i := range bar.Buttons {
		bar.Buttons[i].Rect = core.NewRect(x, y, w, 1)
		x += w + bar.Gap
	}
}

// Width returns the total width of the laid out row.
func (bar *ButtonBar) Width() int {
	if len(bar.Buttons) == 0 {
		return 0
	}
	last := bar.Buttons[len(bar.Buttons)-1].Rect
	return last.Right() - bar.Buttons[0].Rect.X
}

// HitTest returns the command of the enabled button under (x, y).
func (bar *ButtonBar) HitTest(x, y int) core.Command {
	for _, b := range bar.Buttons {
		if b.Hit(x, y) {
			return b.Command
		}
	}
	return core.CommandNone
}

// Find returns the button bound to cmd, or nil.
func (bar *ButtonBar) Find(cmd core.Command) *Button {
	for i := range bar.Buttons {
		if bar.Buttons[i].Command == cmd {
			return &bar.Buttons[i]
		}
	}
	return nil
}

// Draw paints every button.
func (bar *ButtonBar) Draw(dst *core.Screen) {
	for _, b := range bar.Buttons {
		b.Draw(dst)
	}
}
