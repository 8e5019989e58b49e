package core

import "math/rand/v2"

type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleHit
	EventGoal
	EventMatchOver
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventGoal:
		return "goal"
	case EventMatchOver:
		return "match-over"
	}
	return "unknown"
}

const (
	SidePlayer   = 1
	SideOpponent = 2
)

// Event is something that happened during a frame. Side is the scoring
// or winning side for goals and match ends, 0 otherwise. Frame is the
// engine tick the event was raised on.
type Event struct {
	Kind  EventKind
	Side  int
	Frame int64
}

// Events collects what the systems raised until the loop drains them.
type Events struct {
	queue []Event
}

func (e *Events) Push(ev Event) {
	e.queue = append(e.queue, ev)
}

func (e *Events) Drain() []Event {
	out := e.queue
	e.queue = nil
	return out
}

type Command int

const (
	CommandUp Command = iota + 1
	CommandDown
)

// Controls buffers keyboard commands for the next frame.
type Controls struct {
	pending []Command
}

func (c *Controls) Push(cmd Command) {
	c.pending = append(c.pending, cmd)
}

func (c *Controls) Drain() []Command {
	out := c.pending
	c.pending = nil
	return out
}

// Dice flips the coin that picks ball directions. It draws from the
// engine's random source so a seeded game replays the same directions.
type Dice struct {
	rnd *rand.Rand
}

func NewDice(src rand.Source) *Dice {
	return &Dice{rnd: rand.New(src)}
}

// Direction returns +1 or -1 with equal odds.
func (d *Dice) Direction() float64 {
	if d.rnd.IntN(1024)%2 == 0 {
		return 1
	}
	return -1
}

// Playfield holds the fixed geometry the systems need.
type Playfield struct {
	Width, Height float64
	BallSize      float64
	BallSpeed     float64
	PlayerSpeed   float64
}

// Match tracks the current match.
type Match struct {
	ID         string
	FinalScore int
	Over       bool
	Winner     int
}
