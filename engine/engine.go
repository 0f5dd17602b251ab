package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Engine is the rally engine: it owns both paddles, the ball and the match state
// and advances them one frame per AdvanceFrame call
//
// Not safe for concurrent use; a single driver goroutine owns it
type Engine struct {
	cfg           Config
	width, height int

	player   *physics.Paddle
	opponent *physics.Paddle
	ball     *physics.Ball
	rng      vmath.RandSource

	playerScore   int
	opponentScore int
	targetScore   int

	// cooldown counts frames left with paddle collisions suppressed after a serve
	cooldown int
	frame    int64

	// Edge detectors: true while the contact persists, event fires on false→true
	lastWallHit   bool
	lastPaddleHit bool
	matchOverSent bool

	rallyHits    int
	longestRally int

	events  *event.Queue
	metrics *status.Registry

	// Cached metric pointers
	mFrame   *atomic.Int64
	mSpeed   *status.AtomicFloat
	mHits    *atomic.Int64
	mLongest *atomic.Int64
	mPoints  *atomic.Int64
	mMatches *atomic.Int64
}

// Option customizes an Engine at construction
type Option func(*Engine)

// WithRand injects the randomness used for launches and serves
func WithRand(rng vmath.RandSource) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithEventQueue makes the engine publish into an existing queue
func WithEventQueue(q *event.Queue) Option {
	return func(e *Engine) { e.events = q }
}

// WithMetrics publishes engine metrics into a shared registry
func WithMetrics(r *status.Registry) Option {
	return func(e *Engine) { e.metrics = r }
}

// New validates cfg and builds an engine with paddles at their sides and the ball centered
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:         cfg,
		width:       cfg.Playfield.Width,
		height:      cfg.Playfield.Height,
		targetScore: cfg.TargetScore,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		e.rng = vmath.NewFastRand(seed)
	}
	if e.events == nil {
		e.events = event.NewQueue()
	}
	if e.metrics == nil {
		e.metrics = status.NewRegistry()
	}

	pc := cfg.Paddle
	paddleY := e.height/2 - pc.Height/2
	e.player = physics.NewPaddle(pc.Margin, paddleY, pc.Width, pc.Height, pc.Speed)
	e.opponent = physics.NewPaddle(e.width-pc.Width-pc.Margin, paddleY, pc.Width, pc.Height, pc.Speed)
	e.player.Deadzone = pc.Deadzone
	e.opponent.Deadzone = pc.Deadzone

	cx, cy := e.center()
	e.ball = physics.NewBall(cx, cy, cfg.Ball.Width, cfg.Ball.Height, e.height, cfg.BallProfile(), e.rng)

	e.mFrame = e.metrics.Ints.Get(status.KeyFrame)
	e.mSpeed = e.metrics.Floats.Get(status.KeyBallSpeed)
	e.mHits = e.metrics.Ints.Get(status.KeyRallyHits)
	e.mLongest = e.metrics.Ints.Get(status.KeyLongestRally)
	e.mPoints = e.metrics.Ints.Get(status.KeyPoints)
	e.mMatches = e.metrics.Ints.Get(status.KeyMatches)
	e.mMatches.Add(1)
	e.publishMetrics()

	return e, nil
}

// center returns the serve point, snapped to whole units like the paddle layout
func (e *Engine) center() (float64, float64) {
	return float64(e.width / 2), float64(e.height / 2)
}

// AdvanceFrame runs one simulation step
//
// Phases:
//  1. player intent, frame counter and periodic speed ramp
//  2. ball movement and wall contact (edge-triggered EventWallHit)
//  3. paddle contact unless in post-serve cooldown (edge-triggered EventPaddleHit)
//  4. scoring, serve and match-over detection
//  5. opponent tracking, every frame
//
// A finished match is frozen until RequestReplay
func (e *Engine) AdvanceFrame(intent Intent) {
	if e.IsGameOver() {
		return
	}

	if dy := intent.delta(e.player.Speed); dy != 0 {
		e.player.Move(dy, e.height)
	}

	e.frame++
	if e.frame%int64(e.cfg.Rally.RampInterval) == 0 {
		e.ball.Accelerate(e.cfg.Rally.RampFactor)
	}

	if e.ball.Move() == physics.ContactWall {
		if !e.lastWallHit {
			e.emit(event.EventWallHit, nil)
			e.lastWallHit = true
		}
	} else {
		e.lastWallHit = false
	}

	if e.cooldown > 0 {
		e.cooldown--
	} else {
		e.resolvePaddles()
	}

	switch {
	case e.ball.Left() <= 0:
		e.scorePoint(physics.SideOpponent)
	case e.ball.Right() >= float64(e.width):
		e.scorePoint(physics.SidePlayer)
	}

	e.opponent.AutoTrack(e.ball, e.height)

	e.publishMetrics()
}

func (e *Engine) resolvePaddles() {
	contact := e.ball.CheckCollision(e.player, e.opponent)
	if contact == physics.ContactNone {
		e.lastPaddleHit = false
		return
	}

	e.rallyHits++
	if !e.lastPaddleHit {
		e.emit(event.EventPaddleHit, &event.PaddleHitPayload{Side: contact.Side()})
		e.lastPaddleHit = true
	}
}

// scorePoint credits scorer, serves toward the side that conceded and checks for match end
func (e *Engine) scorePoint(scorer physics.Side) {
	if scorer == physics.SidePlayer {
		e.playerScore++
	} else {
		e.opponentScore++
	}
	e.mPoints.Add(1)

	e.emit(event.EventScore, &event.ScorePayload{
		Scorer:        scorer,
		PlayerScore:   e.playerScore,
		OpponentScore: e.opponentScore,
	})

	e.longestRally = max(e.longestRally, e.rallyHits)
	e.rallyHits = 0

	e.serve(scorer.Other())

	if e.IsGameOver() && !e.matchOverSent {
		e.matchOverSent = true
		e.emit(event.EventMatchOver, &event.MatchOverPayload{
			Winner:        e.Winner(),
			PlayerScore:   e.playerScore,
			OpponentScore: e.opponentScore,
		})
	}
}

// serve recenters the ball, arms the cooldown and launches it toward receiver
// The direction overrides whatever Ball.Reset sampled
func (e *Engine) serve(receiver physics.Side) {
	cx, cy := e.center()
	e.ball.Reset(cx, cy)
	e.cooldown = e.cfg.Rally.CooldownFrames

	dir := 1.0
	if receiver == physics.SidePlayer {
		dir = -1.0
	}
	angle := vmath.Uniform(e.rng, -e.cfg.Rally.ServeAngle, e.cfg.Rally.ServeAngle)
	e.ball.Launch(dir, angle)

	e.lastWallHit = false
	e.lastPaddleHit = false
}

func (e *Engine) emit(t event.EventType, payload any) {
	e.events.Push(event.GameEvent{Type: t, Payload: payload, Frame: e.frame})
}

func (e *Engine) publishMetrics() {
	e.mFrame.Store(e.frame)
	e.mSpeed.Set(e.ball.Speed)
	e.mHits.Store(int64(e.rallyHits))
	e.mLongest.Store(int64(e.longestRally))
}
