package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/vmath"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

// rowText reads one screen row back as a string
func rowText(s tcell.Screen, y, cols int) string {
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestViewportMapping(t *testing.T) {
	v := newViewport(80, 24, 800, 600)

	if v.fieldRows() != 22 {
		t.Fatalf("Expected 22 field rows, got %d", v.fieldRows())
	}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"center col", v.col(400), 40},
		{"center row", v.row(300), 12},
		{"left edge", v.col(0), 0},
		{"clamped left", v.col(-15), 0},
		{"clamped right", v.col(900), 79},
		{"top row", v.row(0), 1},
		{"bottom row", v.row(600), 22},
		{"clamped bottom", v.row(10000), 22},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}
}

func TestViewportCells(t *testing.T) {
	v := newViewport(80, 24, 800, 600)

	c0, r0, c1, r1 := v.cells(vmath.Rect{X: 10, Y: 250, Width: 10, Height: 100})
	if c0 != 1 || c1 != 1 || r0 != 10 || r1 != 13 {
		t.Errorf("Expected player paddle cells (1,10)-(1,13), got (%d,%d)-(%d,%d)", c0, r0, c1, r1)
	}

	// Anything smaller than a cell still covers one
	c0, r0, c1, r1 = v.cells(vmath.Rect{X: 401, Y: 301, Width: 1, Height: 1})
	if c0 != c1 || r0 != r1 {
		t.Errorf("Expected a single cell, got (%d,%d)-(%d,%d)", c0, r0, c1, r1)
	}
}

func TestViewportTinyTerminal(t *testing.T) {
	v := newViewport(10, 2, 800, 600)
	if v.fieldRows() != 1 {
		t.Errorf("Expected field to keep one row, got %d", v.fieldRows())
	}
	if r := v.row(599); r != parameter.TopMargin {
		t.Errorf("Expected every y on row %d, got %d", parameter.TopMargin, r)
	}
}

func TestDrawFrame(t *testing.T) {
	screen := newTestScreen(t)
	eng, err := engine.New(engine.DefaultConfig(), engine.WithRand(vmath.NewFastRand(1)))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	v := newViewport(80, 24, eng.Width(), eng.Height())

	drawFrame(screen, v, eng.Snapshot(), hud{speed: 5, rally: 2, matches: 1, message: "AI scores"})

	if r, _, _, _ := screen.GetContent(40, 12); r != parameter.BallGlyph {
		t.Errorf("Expected ball glyph at (40,12), got %q", r)
	}
	for y := 10; y <= 13; y++ {
		if r, _, _, _ := screen.GetContent(1, y); r != parameter.PaddleGlyph {
			t.Errorf("Expected player paddle at (1,%d), got %q", y, r)
		}
		if r, _, _, _ := screen.GetContent(78, y); r != parameter.PaddleGlyph {
			t.Errorf("Expected opponent paddle at (78,%d), got %q", y, r)
		}
	}
	if r, _, _, _ := screen.GetContent(1, 14); r == parameter.PaddleGlyph {
		t.Error("Player paddle drawn past its bottom edge")
	}
	if r, _, _, _ := screen.GetContent(40, 5); r != parameter.CenterLineGlyph {
		t.Errorf("Expected net at (40,5), got %q", r)
	}

	top := rowText(screen, 0, 80)
	if top[20] != '0' || top[60] != '0' {
		t.Errorf("Expected both scores at 0, got row %q", top)
	}
	if !strings.Contains(top, "first to 5") {
		t.Errorf("Expected target in score row, got %q", top)
	}

	bar := rowText(screen, 23, 80)
	if !strings.Contains(bar, "speed 5.00") || !strings.Contains(bar, "rally 2") || !strings.Contains(bar, "AI scores") {
		t.Errorf("Unexpected status bar %q", bar)
	}
}

func TestDrawMenu(t *testing.T) {
	screen := newTestScreen(t)
	v := newViewport(80, 24, 800, 600)
	snap := engine.Snapshot{PlayerScore: 5, OpponentScore: 3, TargetScore: 5, GameOver: true, Winner: physics.SidePlayer}

	drawMenu(screen, v, snap, hud{selected: 1})

	var all strings.Builder
	for y := 0; y < 24; y++ {
		all.WriteString(rowText(screen, y, 80))
		all.WriteByte('\n')
	}
	text := all.String()
	for _, want := range []string{"You win 5-3", "best of", " 3 ", " 5 ", " 7 ", "Esc to quit"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in menu, got:\n%s", want, text)
		}
	}
}

func TestResultLine(t *testing.T) {
	tests := []struct {
		snap engine.Snapshot
		want string
	}{
		{engine.Snapshot{PlayerScore: 5, OpponentScore: 2, Winner: physics.SidePlayer}, "You win 5-2"},
		{engine.Snapshot{PlayerScore: 1, OpponentScore: 5, Winner: physics.SideOpponent}, "AI wins 5-1"},
		{engine.Snapshot{PlayerScore: 5, OpponentScore: 5}, "Draw 5-5"},
	}
	for _, tt := range tests {
		if got := resultLine(tt.snap); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
