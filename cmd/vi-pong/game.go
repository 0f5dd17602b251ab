package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/status"
)

// messageDuration is how long a score or replay notice stays in the status bar
const messageDuration = 2 * time.Second

// game is the terminal driver around one engine
type game struct {
	screen  tcell.Screen
	view    viewport
	eng     *engine.Engine
	router  *event.Router
	metrics *status.Registry
	sounds  *audio.SoundManager

	// Terminals report key presses only, so a direction stays active until intentUntil
	intent      engine.Intent
	intentUntil time.Time

	menu     bool
	paused   bool
	selected int

	message      string
	messageUntil time.Time
	audioOn      bool
}

func newGame(screen tcell.Screen, eng *engine.Engine, router *event.Router, metrics *status.Registry, sounds *audio.SoundManager, audioOn bool) *game {
	cols, rows := screen.Size()
	g := &game{
		screen:   screen,
		view:     newViewport(cols, rows, eng.Width(), eng.Height()),
		eng:      eng,
		router:   router,
		metrics:  metrics,
		sounds:   sounds,
		audioOn:  audioOn,
		selected: defaultChoice(),
	}

	router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventScore, event.EventMatchOver, event.EventReplay},
		Fn:    g.notify,
	})
	return g
}

// defaultChoice returns the menu index of DefaultBestOf, the last choice when it is not offered
func defaultChoice() int {
	for i, n := range parameter.BestOfChoices {
		if n == parameter.DefaultBestOf {
			return i
		}
	}
	return len(parameter.BestOfChoices) - 1
}

// notify turns match events into status bar messages
func (g *game) notify(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.ScorePayload:
		g.flash(fmt.Sprintf("%s scores (%d-%d)", p.Scorer, p.PlayerScore, p.OpponentScore))
	case *event.MatchOverPayload:
		log.Printf("Match over: winner=%s score=%d-%d", p.Winner, p.PlayerScore, p.OpponentScore)
		g.flash(fmt.Sprintf("%s won the match", winnerLabel(p.Winner)))
	case *event.ReplayPayload:
		g.flash(fmt.Sprintf("Best of %d, first to %d", p.BestOf, p.TargetScore))
	}
}

func (g *game) flash(msg string) {
	g.message = msg
	g.messageUntil = time.Now().Add(messageDuration)
}

// handleKey applies one key press, returns false to quit
// r is only meaningful for tcell.KeyRune
func (g *game) handleKey(key tcell.Key, r rune, now time.Time) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	}

	if g.menu {
		return g.handleMenuKey(key, r)
	}

	switch key {
	case tcell.KeyUp:
		g.hold(engine.IntentUp, now)
	case tcell.KeyDown:
		g.hold(engine.IntentDown, now)
	case tcell.KeyRune:
		switch r {
		case 'w', 'k':
			g.hold(engine.IntentUp, now)
		case 's', 'j':
			g.hold(engine.IntentDown, now)
		case 'p', ' ':
			g.paused = !g.paused
		case 'm':
			g.sounds.SetMuted(!g.sounds.Muted())
		case 'q':
			return false
		}
	}
	return true
}

func (g *game) handleMenuKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyLeft:
		g.selected = max(g.selected-1, 0)
	case tcell.KeyRight:
		g.selected = min(g.selected+1, len(parameter.BestOfChoices)-1)
	case tcell.KeyEnter:
		g.replay(parameter.BestOfChoices[g.selected])
	case tcell.KeyRune:
		if r == 'q' {
			return false
		}
		for i, n := range parameter.BestOfChoices {
			if r == rune('0'+n) {
				g.selected = i
				g.replay(n)
			}
		}
	}
	return true
}

func (g *game) hold(intent engine.Intent, now time.Time) {
	g.intent = intent
	g.intentUntil = now.Add(parameter.IntentHoldDuration)
}

// currentIntent returns the held direction, expiring it once the hold lapses
func (g *game) currentIntent(now time.Time) engine.Intent {
	if g.intent != engine.IntentNone && !now.Before(g.intentUntil) {
		g.intent = engine.IntentNone
	}
	return g.intent
}

func (g *game) replay(bestOf int) {
	if err := g.eng.RequestReplay(bestOf); err != nil {
		log.Printf("Replay rejected: %v", err)
		return
	}
	g.menu = false
	g.intent = engine.IntentNone
	g.router.DispatchAll()
}

// tick advances the simulation one frame and routes its events
func (g *game) tick(now time.Time) {
	if g.menu || g.paused {
		return
	}
	g.eng.AdvanceFrame(g.currentIntent(now))
	g.router.DispatchAll()
	if g.eng.IsGameOver() {
		g.menu = true
		g.intent = engine.IntentNone
	}
}

func (g *game) resize() {
	g.screen.Sync()
	cols, rows := g.screen.Size()
	g.view = newViewport(cols, rows, g.eng.Width(), g.eng.Height())
}

func (g *game) hud(now time.Time) hud {
	h := hud{
		speed:    g.metrics.Floats.Get(status.KeyBallSpeed).Get(),
		rally:    g.metrics.Ints.Get(status.KeyRallyHits).Load(),
		longest:  g.metrics.Ints.Get(status.KeyLongestRally).Load(),
		matches:  g.metrics.Ints.Get(status.KeyMatches).Load(),
		muted:    g.sounds.Muted(),
		audioOn:  g.audioOn,
		paused:   g.paused,
		selected: g.selected,
	}
	if now.Before(g.messageUntil) {
		h.message = g.message
	}
	return h
}

func (g *game) draw(now time.Time) {
	snap := g.eng.Snapshot()
	h := g.hud(now)
	drawFrame(g.screen, g.view, snap, h)
	if g.menu {
		drawMenu(g.screen, g.view, snap, h)
	}
	g.screen.Show()
}

// run drives the fixed tick until the player quits
func (g *game) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 256)
	goSafe(func() {
		for {
			ev := g.screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	inMenu := false
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.handleKey(ev.Key(), ev.Rune(), time.Now()) {
					return
				}
			case *tcell.EventResize:
				g.resize()
			}

		case now := <-ticker.C:
			g.tick(now)

			// The menu needs no 60 FPS redraw
			if g.menu != inMenu {
				inMenu = g.menu
				if inMenu {
					ticker.Reset(parameter.MenuPollInterval)
				} else {
					ticker.Reset(parameter.FrameUpdateInterval)
				}
			}
			g.draw(now)
		}
	}
}

// winnerLabel names a side for the terminal
func winnerLabel(s physics.Side) string {
	if s == physics.SidePlayer {
		return "You"
	}
	return s.String()
}
