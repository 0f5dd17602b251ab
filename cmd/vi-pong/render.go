package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/vmath"
)

var (
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	styleAI     = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleBall   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleNet    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleScore  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleMenu   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleChoice = styleMenu.Reverse(true)
)

// viewport maps playfield units onto terminal cells between the score row and the status bar
type viewport struct {
	cols, rows     int
	fieldW, fieldH int
}

func newViewport(cols, rows, fieldW, fieldH int) viewport {
	return viewport{cols: cols, rows: rows, fieldW: fieldW, fieldH: fieldH}
}

// fieldRows is the number of terminal rows the playfield spans, at least one
func (v viewport) fieldRows() int {
	return max(v.rows-parameter.TopMargin-parameter.BottomMargin, 1)
}

func (v viewport) col(x float64) int {
	c := int(x * float64(v.cols) / float64(v.fieldW))
	return vmath.ClampInt(c, 0, v.cols-1)
}

func (v viewport) row(y float64) int {
	r := int(y * float64(v.fieldRows()) / float64(v.fieldH))
	return parameter.TopMargin + vmath.ClampInt(r, 0, v.fieldRows()-1)
}

// cells returns the inclusive cell range covered by a playfield rectangle
func (v viewport) cells(r vmath.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = v.col(float64(r.Left())), v.row(float64(r.Top()))
	c1 = max(v.col(float64(r.Right()-1)), c0)
	r1 = max(v.row(float64(r.Bottom()-1)), r0)
	return c0, r0, c1, r1
}

// hud carries driver state shown around the playfield
type hud struct {
	speed    float64
	rally    int64
	longest  int64
	matches  int64
	message  string
	muted    bool
	audioOn  bool
	paused   bool
	selected int
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func fillRow(s tcell.Screen, y, cols int, style tcell.Style) {
	for x := 0; x < cols; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func fillRect(s tcell.Screen, c0, r0, c1, r1 int, glyph rune, style tcell.Style) {
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			s.SetContent(x, y, glyph, nil, style)
		}
	}
}

// drawFrame paints the whole playfield, the score row and the status bar
func drawFrame(s tcell.Screen, v viewport, snap engine.Snapshot, h hud) {
	s.Clear()

	// Net
	netCol := v.col(float64(snap.Width) / 2)
	for y := parameter.TopMargin; y < parameter.TopMargin+v.fieldRows(); y++ {
		s.SetContent(netCol, y, parameter.CenterLineGlyph, nil, styleNet)
	}

	// Scores
	drawText(s, v.cols/4, 0, styleScore, fmt.Sprintf("%d", snap.PlayerScore))
	drawText(s, 3*v.cols/4, 0, styleScore, fmt.Sprintf("%d", snap.OpponentScore))
	target := fmt.Sprintf("first to %d", snap.TargetScore)
	drawText(s, max(netCol-len(target)/2, 0), 0, styleNet, target)

	c0, r0, c1, r1 := v.cells(snap.Player)
	fillRect(s, c0, r0, c1, r1, parameter.PaddleGlyph, stylePlayer)
	c0, r0, c1, r1 = v.cells(snap.Opponent)
	fillRect(s, c0, r0, c1, r1, parameter.PaddleGlyph, styleAI)

	b := snap.Ball
	s.SetContent(v.col(b.X), v.row(b.Y), parameter.BallGlyph, nil, styleBall)

	drawStatus(s, v, snap, h)
}

func drawStatus(s tcell.Screen, v viewport, snap engine.Snapshot, h hud) {
	y := v.rows - 1
	fillRow(s, y, v.cols, styleStatus)

	text := fmt.Sprintf(" speed %.2f  rally %d  best %d  match %d ", h.speed, h.rally, h.longest, h.matches)
	if h.paused {
		text += " PAUSED "
	}
	if h.message != "" {
		text += " " + h.message
	}
	drawText(s, 0, y, styleStatus, text)

	if h.audioOn && !h.muted {
		drawText(s, v.cols-len([]rune(parameter.AudioStr)), y, styleStatus, parameter.AudioStr)
	}
}

// drawMenu overlays the game-over box with the best-of choices
func drawMenu(s tcell.Screen, v viewport, snap engine.Snapshot, h hud) {
	lines := []string{
		resultLine(snap),
		"",
		"Play again, best of:",
		"",
		"Enter to start, Esc to quit",
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4
	height := len(lines) + 2
	x0 := max((v.cols-width)/2, 0)
	y0 := max((v.rows-height)/2, 0)

	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			s.SetContent(x, y, ' ', nil, styleMenu)
		}
	}
	for i, l := range lines {
		drawText(s, x0+2, y0+1+i, styleMenu, l)
	}

	// Choices on the blank line under the prompt
	x := x0 + 2
	for i, n := range parameter.BestOfChoices {
		label := fmt.Sprintf(" %d ", n)
		style := styleMenu
		if i == h.selected {
			style = styleChoice
		}
		drawText(s, x, y0+4, style, label)
		x += len(label) + 1
	}
}

func resultLine(snap engine.Snapshot) string {
	switch snap.Winner {
	case physics.SidePlayer:
		return fmt.Sprintf("You win %d-%d", snap.PlayerScore, snap.OpponentScore)
	case physics.SideOpponent:
		return fmt.Sprintf("AI wins %d-%d", snap.OpponentScore, snap.PlayerScore)
	default:
		return fmt.Sprintf("Draw %d-%d", snap.PlayerScore, snap.OpponentScore)
	}
}
