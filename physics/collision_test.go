package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func tablePaddles() (player, opponent *Paddle) {
	return NewPaddle(10, 250, 10, 100, 7), NewPaddle(780, 250, 10, 100, 7)
}

func TestCheckCollisionPlayerOverlap(t *testing.T) {
	player, opponent := tablePaddles()
	b := newTestBall(22, 300) // rect [16,28] overlaps paddle [10,20]
	b.VX, b.VY = -5, 0

	if c := b.CheckCollision(player, opponent); c != ContactPlayer {
		t.Fatalf("Expected player contact, got %v", c)
	}
	if b.X != 26 {
		t.Errorf("Expected ball pushed to right face X=26, got %v", b.X)
	}
	if math.Abs(b.Speed-5.1) > eps {
		t.Errorf("Expected speed 5.1, got %v", b.Speed)
	}
	if math.Abs(b.VX-5.1) > eps {
		t.Errorf("Expected VX=+5.1, got %v", b.VX)
	}
	// Center hit: zero offset lifted to +MinVertical
	if b.VY != DefaultBallProfile.MinVertical {
		t.Errorf("Expected VY=+%v for center hit, got %v", DefaultBallProfile.MinVertical, b.VY)
	}
}

func TestCheckCollisionOpponentOverlap(t *testing.T) {
	player, opponent := tablePaddles()
	b := newTestBall(778, 260) // offset (260-300)/50 = -0.8
	b.VX, b.VY = 5, 1

	if c := b.CheckCollision(player, opponent); c != ContactOpponent {
		t.Fatalf("Expected opponent contact, got %v", c)
	}
	if b.X != 774 {
		t.Errorf("Expected ball pushed to left face X=774, got %v", b.X)
	}
	wantVY := -0.8 * 5.1 * 0.6
	if math.Abs(b.VY-wantVY) > eps {
		t.Errorf("Expected VY=%v, got %v", wantVY, b.VY)
	}
	if b.VX >= 0 {
		t.Errorf("Expected VX to flip negative, got %v", b.VX)
	}
}

func TestCheckCollisionPlayerPriority(t *testing.T) {
	// Degenerate narrow table: both paddles overlap the ball, player wins
	player := NewPaddle(395, 250, 10, 100, 7)
	opponent := NewPaddle(400, 250, 10, 100, 7)
	b := newTestBall(400, 300)
	b.VX = 5

	if c := b.CheckCollision(player, opponent); c != ContactPlayer {
		t.Errorf("Expected player checked first, got %v", c)
	}
}

func TestCheckCollisionOffsetClamped(t *testing.T) {
	player, opponent := tablePaddles()
	b := newTestBall(22, 245) // rect [239,251] clips the top corner, raw offset -1.1
	b.VX = -5

	if c := b.CheckCollision(player, opponent); c != ContactPlayer {
		t.Fatalf("Expected player contact, got %v", c)
	}
	wantVY := -1 * 5.1 * 0.6
	if math.Abs(b.VY-wantVY) > eps {
		t.Errorf("Expected clamped VY=%v, got %v", wantVY, b.VY)
	}
}

func TestCheckCollisionMinVerticalKeepsSign(t *testing.T) {
	player, opponent := tablePaddles()
	b := newTestBall(22, 299) // offset -0.02 gives |VY| ~0.06 < 0.5
	b.VX = -5

	b.CheckCollision(player, opponent)
	if b.VY != -DefaultBallProfile.MinVertical {
		t.Errorf("Expected VY=-%v, got %v", DefaultBallProfile.MinVertical, b.VY)
	}
}

func TestCheckCollisionNone(t *testing.T) {
	player, opponent := tablePaddles()
	b := newTestBall(400, 300)
	b.VX, b.VY = 5, 0
	speed := b.Speed

	if c := b.CheckCollision(player, opponent); c != ContactNone {
		t.Errorf("Expected no contact, got %v", c)
	}
	if b.Speed != speed || b.VX != 5 {
		t.Error("Ball must be untouched without contact")
	}
}

// TestCheckCollisionTunnelingOpponent moves a fast ball clean over a thin paddle in one frame
func TestCheckCollisionTunnelingOpponent(t *testing.T) {
	player := NewPaddle(10, 250, 10, 100, 7)
	opponent := NewPaddle(785, 250, 10, 100, 7) // slab [785, 795]
	b := newTestBall(780, 300)
	b.Speed = 50
	b.VX, b.VY = 50, 0

	b.Move() // X = 830, rect [824, 836] misses the paddle
	if b.Rect().Overlaps(opponent.Rect()) {
		t.Fatal("Setup error: ball should not overlap after the jump")
	}

	if c := b.CheckCollision(player, opponent); c != ContactOpponent {
		t.Fatalf("Expected swept opponent contact, got %v", c)
	}
	if b.X != 779 {
		t.Errorf("Expected ball placed on paddle face X=779, got %v", b.X)
	}
	if math.Abs(b.VX+51) > eps {
		t.Errorf("Expected VX=-51, got %v", b.VX)
	}
}

func TestCheckCollisionTunnelingPlayer(t *testing.T) {
	player, opponent := tablePaddles() // player slab right face at 20
	b := newTestBall(40, 300)
	b.Speed = 40
	b.VX, b.VY = -40, 0

	b.Move() // X = 0
	if c := b.CheckCollision(player, opponent); c != ContactPlayer {
		t.Fatalf("Expected swept player contact, got %v", c)
	}
	if b.X != 26 {
		t.Errorf("Expected ball placed on paddle face X=26, got %v", b.X)
	}
	if b.VX <= 0 {
		t.Errorf("Expected VX positive after bounce, got %v", b.VX)
	}
}

func TestCheckCollisionTunnelingNeedsVerticalOverlap(t *testing.T) {
	player := NewPaddle(10, 250, 10, 100, 7)
	opponent := NewPaddle(785, 250, 10, 100, 7)
	b := newTestBall(780, 100) // far above the paddle
	b.VX, b.VY = 50, 0

	b.Move()
	if c := b.CheckCollision(player, opponent); c != ContactNone {
		t.Errorf("Expected miss without vertical overlap, got %v", c)
	}
}

// TestCheckCollisionTunnelingAsymmetry documents that only the paddle ahead of travel is swept
func TestCheckCollisionTunnelingAsymmetry(t *testing.T) {
	player := NewPaddle(10, 250, 10, 100, 7)
	opponent := NewPaddle(785, 250, 10, 100, 7)
	b := newTestBall(810, 300)
	b.VX, b.VY = -50, 0

	b.Move() // X = 760, passed leftward through the opponent slab
	if c := b.CheckCollision(player, opponent); c != ContactNone {
		t.Errorf("Expected leftward pass through opponent to go undetected, got %v", c)
	}
}

func TestBounceFlipsAndGrows(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		vx, vy float64
		want   Contact
	}{
		{"player center", 22, 300, -5, 0, ContactPlayer},
		{"player edge", 22, 345, -6, 2, ContactPlayer},
		{"opponent center", 778, 300, 5, 0, ContactOpponent},
		{"opponent low", 778, 340, 7, -3, ContactOpponent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, opponent := tablePaddles()
			b := newTestBall(tt.x, tt.y)
			b.VX, b.VY = tt.vx, tt.vy
			before := b.Speed

			if c := b.CheckCollision(player, opponent); c != tt.want {
				t.Fatalf("Expected %v, got %v", tt.want, c)
			}
			if math.Signbit(b.VX) == math.Signbit(tt.vx) {
				t.Errorf("Expected VX sign flip, before %v after %v", tt.vx, b.VX)
			}
			if b.Speed <= before {
				t.Errorf("Expected speed growth, before %v after %v", before, b.Speed)
			}
			if math.Abs(b.Speed-before*DefaultBallProfile.Growth) > eps {
				t.Errorf("Expected speed %v, got %v", before*DefaultBallProfile.Growth, b.Speed)
			}
			if math.Abs(math.Abs(b.VX)-b.Speed) > eps {
				t.Errorf("Expected |VX| == speed, got %v vs %v", b.VX, b.Speed)
			}
			if math.Abs(b.VY) < DefaultBallProfile.MinVertical {
				t.Errorf("Expected |VY| >= %v, got %v", DefaultBallProfile.MinVertical, b.VY)
			}
		})
	}
}

func TestImpactOffset(t *testing.T) {
	_, opponent := tablePaddles()
	b := newTestBall(700, 325)
	if got := b.ImpactOffset(opponent); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
	b.Y = 900
	if got := b.ImpactOffset(opponent); got != 1 {
		t.Errorf("Expected clamp to 1, got %v", got)
	}
}
