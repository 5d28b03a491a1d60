package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 10, 'X')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 100) != blank {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenSetKeepsColors(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetCell(1, 0, Cell{Rune: ' ', Fg: ColorBlack, Bg: ColorWhite})
	s.Set(1, 0, '7')

	got := s.GetCell(1, 0)
	want := Cell{Rune: '7', Fg: ColorBlack, Bg: ColorWhite}
	if got != want {
		t.Errorf("GetCell(1, 0) = %+v, expected %+v", got, want)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), Cell{Rune: '#', Bg: ColorRed})
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "a·b")

	if s.Row(0) != "a·b   " {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "a·b   ")
	}
}

func TestScreenDrawTextStyled(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextStyled(1, 0, "ok", ColorGreen, ColorBlack)

	for i, ch := range "ok" {
		c := s.GetCell(1+i, 0)
		if c.Rune != ch || c.Fg != ColorGreen || c.Bg != ColorBlack {
			t.Errorf("DrawTextStyled: cell %d = %+v", 1+i, c)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(21, 3)
	s.DrawTextCentered(1, "Idle · 3x3")

	if got, want := s.Row(1), "     Idle · 3x3      "; got != want {
		t.Errorf("Row(1) = %q, expected %q", got, want)
	}

	narrow := NewScreen(4, 1)
	narrow.DrawTextCentered(0, "Terminal too small")
	if got := narrow.Row(0); got != "Term" {
		t.Errorf("wide text should start at column 0, got %q", got)
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(6, 4)
	wall := Cell{Rune: ' ', Bg: ColorBlack}

	// A maze drawn partly off screen must not panic and fills only the
	// visible part.
	s.FillRect(NewRect(4, 2, 5, 5), wall)
	s.FillRect(NewRect(-3, -3, 4, 4), wall)

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			inside := (x >= 4 && y >= 2) || (x == 0 && y == 0)
			if got := s.GetCell(x, y) == wall; got != inside {
				t.Errorf("cell (%d, %d) filled = %v, expected %v", x, y, got, inside)
			}
		}
	}

	if b := s.Bounds(); b != NewRect(0, 0, 6, 4) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
	if s.Row(5) != strings.Repeat(" ", 15) {
		t.Errorf("Row lost by shrinking should be blank, got %q", s.Row(5))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
