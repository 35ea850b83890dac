package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColorGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, '@', ColorBrightYellow)
	c := s.GetCell(5, 5)
	if c.Rune != '@' || c.Color != ColorBrightYellow {
		t.Errorf("GetCell(5, 5) = %+v, expected '@' bright yellow", c)
	}

	// Plain Set resets the color
	s.Set(5, 5, 'X')
	if c := s.GetCell(5, 5); c.Color != ColorDefault || c.Rune != 'X' {
		t.Errorf("Set should use default color, got %+v", c)
	}

	// Out of bounds is silent
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextClipsUnicode(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColor(3, 0, "♥♥♥♥", ColorRed)

	if got := s.Row(0); got != "   ♥♥♥" {
		t.Errorf("Row(0) = %q, expected %q", got, "   ♥♥♥")
	}
	if s.GetCell(4, 0).Color != ColorRed {
		t.Error("text color not applied")
	}
}

func TestScreenDrawRectColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectColor(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorGreen {
				t.Errorf("(%d, %d) = %+v, expected green '#'", x, y, c)
			}
		}
	}
	if s.Get(5, 5) != ' ' {
		t.Error("DrawRectColor should not affect outside area")
	}
}

func TestScreenDrawBoxCorners(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
}

func TestScreenDrawMessage(t *testing.T) {
	s := NewScreen(40, 12)
	s.DrawMessage("PAUSED", "Press P to resume")

	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("message title missing")
	}
	if !strings.Contains(s.String(), "Press P to resume") {
		t.Error("message subtitle missing")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorCyan)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("row 0 = %q, expected Hello prefix", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorCyan {
		t.Errorf("content lost after enlarging: %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be spaces")
	}
}

func TestScreenNegativeSizeClampsToEmpty(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Fatalf("size = %dx%d, expected 0x0", s.Width(), s.Height())
	}

	s.Resize(4, 2)
	s.DrawTextColor(0, 0, "ok", ColorDefault)
	s.Resize(-1, 5)
	if s.Width() != 0 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, expected 0x5", s.Width(), s.Height())
	}
}
