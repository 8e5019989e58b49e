package core

import (
	"PongSolo/config"
	"math"
	"testing"
)

func newTestGame(t *testing.T, mutate func(*config.Settings)) *Game {
	t.Helper()
	s := config.Default()
	s.Seed = 123
	if mutate != nil {
		mutate(&s)
	}
	g := NewGame(s)
	t.Cleanup(g.Close)
	return g
}

func setBall(g *Game, x, y, vx, vy float64) {
	*g.positions.Get(g.Ball) = Position{X: x, Y: y}
	*g.velocities.Get(g.Ball) = Velocity{X: vx, Y: vy}
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestKickOffLayout(t *testing.T) {
	g := newTestGame(t, nil)
	snap := g.Snapshot()

	if snap.Player != (Rect{X: 32, Y: 360, Width: 32, Height: 144}) {
		t.Errorf("player = %+v", snap.Player)
	}
	if snap.Opponent != (Rect{X: 1216, Y: 360, Width: 32, Height: 144}) {
		t.Errorf("opponent = %+v", snap.Opponent)
	}
	if snap.Ball != (Rect{X: 626, Y: 346, Width: 28, Height: 28}) {
		t.Errorf("ball = %+v", snap.Ball)
	}
	if v := g.Velocity(g.Ball); v != (Velocity{X: 5, Y: 5}) {
		t.Errorf("ball velocity = %+v", v)
	}
	if snap.Score1 != 0 || snap.Score2 != 0 || snap.Over {
		t.Errorf("fresh match state %+v", snap)
	}
	if snap.MatchID == "" {
		t.Error("match id should be set")
	}
}

func TestBallAdvancesByVelocity(t *testing.T) {
	g := newTestGame(t, nil)
	setBall(g, 300, 200, 5, -5)

	g.Update()

	if r := g.Rect(g.Ball); r.X != 305 || r.Y != 195 {
		t.Errorf("ball at (%v, %v), want (305, 195)", r.X, r.Y)
	}
	if g.Snapshot().Frame != 1 {
		t.Errorf("frame = %d, want 1", g.Snapshot().Frame)
	}
}

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name  string
		y, vy float64
		wantY float64
		wantV float64
	}{
		{"top", 2, -5, 0, 5},
		{"bottom", 720 - 28 - 2, 5, 720 - 28, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			setBall(g, 400, tt.y, 5, tt.vy)

			g.Update()

			r := g.Rect(g.Ball)
			v := g.Velocity(g.Ball)
			if r.Y != tt.wantY || v.Y != tt.wantV || v.X != 5 {
				t.Errorf("ball y=%v v=%+v, want y=%v vy=%v", r.Y, v, tt.wantY, tt.wantV)
			}
			if n := countEvents(g.DrainEvents(), EventWallBounce); n != 1 {
				t.Errorf("got %d wall bounce events, want 1", n)
			}
		})
	}
}

func TestGoalScoresAndServesFromCenter(t *testing.T) {
	tests := []struct {
		name       string
		x, vx      float64
		wantScore1 int
		wantScore2 int
		wantSide   int
	}{
		{"left edge scores for the opponent", 3, -5, 0, 1, SideOpponent},
		{"right edge scores for the player", 1280 - 28 - 3, 5, 1, 0, SidePlayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			setBall(g, tt.x, 100, tt.vx, 5)

			g.Update()

			snap := g.Snapshot()
			if snap.Score1 != tt.wantScore1 || snap.Score2 != tt.wantScore2 {
				t.Errorf("score %d:%d, want %d:%d", snap.Score1, snap.Score2, tt.wantScore1, tt.wantScore2)
			}
			if snap.Ball.X != 626 || snap.Ball.Y != 346 {
				t.Errorf("ball not served from center: %+v", snap.Ball)
			}
			v := g.Velocity(g.Ball)
			if math.Abs(v.X) != 5 || math.Abs(v.Y) != 5 {
				t.Errorf("serve changed the speed: %+v", v)
			}

			events := g.DrainEvents()
			if countEvents(events, EventGoal) != 1 {
				t.Fatalf("events = %+v", events)
			}
			for _, ev := range events {
				if ev.Kind == EventGoal && ev.Side != tt.wantSide {
					t.Errorf("goal side = %d, want %d", ev.Side, tt.wantSide)
				}
			}
		})
	}
}

func TestEventsCarryEngineTick(t *testing.T) {
	g := newTestGame(t, nil)
	setBall(g, 600, 100, 0, 0)
	g.Update()
	g.Update()

	setBall(g, 3, 100, -5, 5)
	g.Update()

	events := g.DrainEvents()
	if len(events) != 1 || events[0].Kind != EventGoal {
		t.Fatalf("events = %+v", events)
	}
	// ticks are counted from zero and advance after each update
	if events[0].Frame != 2 {
		t.Errorf("goal frame = %d, want 2", events[0].Frame)
	}
	if f := g.Snapshot().Frame; f != 3 {
		t.Errorf("snapshot frame = %d, want 3", f)
	}
}

func TestServeDirectionIsRandom(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
	}{
		{"left goal", 3, -5},
		{"right goal", 1280 - 28 - 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := map[[2]float64]int{}
			for seed := int64(1); seed <= 32; seed++ {
				g := newTestGame(t, func(s *config.Settings) { s.Seed = seed })
				setBall(g, tt.x, 100, tt.vx, 5)

				g.Update()

				v := g.Velocity(g.Ball)
				if math.Abs(v.X) != 5 || math.Abs(v.Y) != 5 {
					t.Fatalf("seed %d: serve changed the speed: %+v", seed, v)
				}
				seen[[2]float64{math.Copysign(1, v.X), math.Copysign(1, v.Y)}]++
			}
			for _, dir := range [][2]float64{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
				if seen[dir] == 0 {
					t.Errorf("no serve towards %v in 32 seeds: %v", dir, seen)
				}
			}
		})
	}
}

func TestSameSeedServesTheSameWay(t *testing.T) {
	serveOnce := func() Velocity {
		g := newTestGame(t, nil)
		setBall(g, 3, 100, -5, 5)
		g.Update()
		return g.Velocity(g.Ball)
	}
	if a, b := serveOnce(), serveOnce(); a != b {
		t.Errorf("same seed served %+v and %+v", a, b)
	}
}

func TestPaddleHitFlipsXAndRandomizesY(t *testing.T) {
	tests := []struct {
		name   string
		x, vx  float64
		wantVX float64
	}{
		// Player paddle spans x 32..64, y 360..504.
		{"player paddle", 65, -5, 5},
		// Opponent paddle spans x 1216..1248, y 360..504.
		{"opponent paddle", 1216 - 28 - 1, 5, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ups, downs := 0, 0
			for seed := int64(1); seed <= 32; seed++ {
				g := newTestGame(t, func(s *config.Settings) { s.Seed = seed })
				setBall(g, tt.x, 400, tt.vx, 5)

				g.Update()

				v := g.Velocity(g.Ball)
				if v.X != tt.wantVX {
					t.Fatalf("seed %d: vx = %v, want %v", seed, v.X, tt.wantVX)
				}
				switch v.Y {
				case 5:
					downs++
				case -5:
					ups++
				default:
					t.Fatalf("seed %d: vy = %v", seed, v.Y)
				}
				if n := countEvents(g.DrainEvents(), EventPaddleHit); n != 1 {
					t.Fatalf("seed %d: got %d paddle hits, want 1", seed, n)
				}
			}
			if ups == 0 || downs == 0 {
				t.Errorf("vertical direction never changed: %d up, %d down", ups, downs)
			}
		})
	}
}

func TestPaddleHitFiresOncePerContact(t *testing.T) {
	g := newTestGame(t, nil)
	// Player paddle spans x 32..64, y 360..504.
	setBall(g, 65, 400, -5, 5)

	g.Update()
	v := g.Velocity(g.Ball)
	if v.X != 5 || math.Abs(v.Y) != 5 {
		t.Fatalf("after the hit velocity = %+v, want x=5", v)
	}
	if n := countEvents(g.DrainEvents(), EventPaddleHit); n != 1 {
		t.Fatalf("got %d paddle hits, want 1", n)
	}

	// Still overlapping on the next frame: no second bounce.
	*g.velocities.Get(g.Ball) = Velocity{X: 1, Y: 0}
	g.Update()
	if v := g.Velocity(g.Ball); v.X != 1 {
		t.Errorf("ongoing contact bounced again: %+v", v)
	}
	if n := countEvents(g.DrainEvents(), EventPaddleHit); n != 0 {
		t.Errorf("got %d paddle hits during the same contact", n)
	}

	// Leave the paddle and come back: a new contact bounces again.
	setBall(g, 200, 400, 0, 0)
	g.Update()
	setBall(g, 65, 400, -5, 0)
	g.Update()
	if v := g.Velocity(g.Ball); v.X != 5 {
		t.Errorf("new contact did not bounce: %+v", v)
	}
}

func TestOpponentFollowsBall(t *testing.T) {
	g := newTestGame(t, nil)
	// Opponent center starts at 360 + 72 = 432.
	setBall(g, 600, 100, 5, 0)
	g.Update()
	if y := g.Rect(g.Opponent).Y; y != 350 {
		t.Errorf("opponent y = %v, want 350", y)
	}

	setBall(g, 600, 650, 5, 0)
	g.Update()
	if y := g.Rect(g.Opponent).Y; y != 360 {
		t.Errorf("opponent y = %v, want 360", y)
	}

	// Centers aligned: stay put.
	setBall(g, 600, 432-14, 0, 0)
	g.Update()
	if y := g.Rect(g.Opponent).Y; y != 360 {
		t.Errorf("opponent y = %v, want 360", y)
	}
}

func TestOpponentStaysInPlayfield(t *testing.T) {
	g := newTestGame(t, nil)
	*g.positions.Get(g.Opponent) = Position{X: 1216, Y: 4}
	setBall(g, 600, 10, 0, 0)

	g.Update()

	if y := g.Rect(g.Opponent).Y; y != 0 {
		t.Errorf("opponent y = %v, want 0", y)
	}
}

func TestPlayerInputIsClamped(t *testing.T) {
	g := newTestGame(t, nil)
	setBall(g, 600, 300, 0, 0)

	g.Push(CommandUp)
	g.Update()
	if y := g.Rect(g.Player).Y; y != 350 {
		t.Fatalf("player y = %v, want 350", y)
	}

	for i := 0; i < 40; i++ {
		g.Push(CommandUp)
	}
	g.Update()
	if y := g.Rect(g.Player).Y; y != 0 {
		t.Errorf("player y = %v, want 0", y)
	}

	for i := 0; i < 80; i++ {
		g.Push(CommandDown)
	}
	g.Update()
	if y := g.Rect(g.Player).Y; y != 720-144 {
		t.Errorf("player y = %v, want %v", y, 720-144)
	}
}

func TestMatchEndsAtFinalScore(t *testing.T) {
	g := newTestGame(t, func(s *config.Settings) { s.FinalScore = 1 })
	setBall(g, 1280-28-3, 100, 5, 5)

	g.Update()

	m := g.Match()
	if !m.Over || m.Winner != SidePlayer {
		t.Fatalf("match = %+v, want player win", m)
	}
	if countEvents(g.DrainEvents(), EventMatchOver) != 1 {
		t.Error("expected a match over event")
	}

	frozen := g.Snapshot()
	g.Update()
	if g.Snapshot() != frozen {
		t.Error("finished match should not advance")
	}

	firstID := m.ID
	g.Restart()
	snap := g.Snapshot()
	if snap.Over || snap.Score1 != 0 || snap.Score2 != 0 {
		t.Errorf("restart left %+v", snap)
	}
	if snap.MatchID == firstID {
		t.Error("restart should start a new match id")
	}
	if snap.Ball.X != 626 || g.Velocity(g.Ball) != (Velocity{X: 5, Y: 5}) {
		t.Errorf("restart did not reset the ball: %+v", snap.Ball)
	}
}

func TestEndlessMatchNeverEnds(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 5; i++ {
		setBall(g, 3, 100, -5, 5)
		g.Update()
	}
	if g.Match().Over || g.Snapshot().Score2 != 5 {
		t.Errorf("match = %+v score2 = %d", g.Match(), g.Snapshot().Score2)
	}
}

func TestScoreListenersFire(t *testing.T) {
	g := newTestGame(t, nil)
	var got []int
	g.Properties().IntProperty(Score2).AddListener(func(_, v int) {
		got = append(got, v)
	})

	setBall(g, 3, 100, -5, 5)
	g.Update()
	g.Restart()

	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("listener saw %v, want [1 0]", got)
	}
}

func TestLongRunKeepsEntitiesInside(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 5000; i++ {
		if i%7 == 0 {
			g.Push(CommandDown)
		}
		if i%11 == 0 {
			g.Push(CommandUp)
		}
		g.Update()

		snap := g.Snapshot()
		for _, r := range []Rect{snap.Player, snap.Opponent, snap.Ball} {
			if r.Y < 0 || r.Bottom() > 720 || r.X < 0 || r.Right() > 1280 {
				t.Fatalf("frame %d: %+v left the playfield", i, r)
			}
		}
	}
}
