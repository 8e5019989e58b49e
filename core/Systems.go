package core

import (
	"math"

	"github.com/mlange-42/ark-tools/resource"
	"github.com/mlange-42/ark/ecs"
)

// InputSystem moves the keyboard paddle by one step per queued command,
// keeping it inside the playfield.
type InputSystem struct {
	filter   *ecs.Filter2[Position, BBox]
	controls ecs.Resource[Controls]
	field    ecs.Resource[Playfield]
}

func (s *InputSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter2[Position, BBox](w).With(ecs.C[Controlled]())
	s.controls = ecs.NewResource[Controls](w)
	s.field = ecs.NewResource[Playfield](w)
}

func (s *InputSystem) Update(_ *ecs.World) {
	commands := s.controls.Get().Drain()
	if len(commands) == 0 {
		return
	}
	field := s.field.Get()

	query := s.filter.Query()
	for query.Next() {
		pos, box := query.Get()
		for _, cmd := range commands {
			switch cmd {
			case CommandUp:
				pos.Y -= field.PlayerSpeed
			case CommandDown:
				pos.Y += field.PlayerSpeed
			}
			pos.Y = clamp(pos.Y, 0, field.Height-box.Height)
		}
	}
}

func (s *InputSystem) Finalize(_ *ecs.World) {}

// MotionSystem translates every moving entity by its velocity.
type MotionSystem struct {
	filter *ecs.Filter2[Position, Velocity]
}

func (s *MotionSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter2[Position, Velocity](w)
}

func (s *MotionSystem) Update(_ *ecs.World) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel := query.Get()
		pos.X += vel.X
		pos.Y += vel.Y
	}
}

func (s *MotionSystem) Finalize(_ *ecs.World) {}

// WallSystem reflects moving entities off the top and bottom edges.
type WallSystem struct {
	filter *ecs.Filter3[Position, BBox, Velocity]
	field  ecs.Resource[Playfield]
	events ecs.Resource[Events]
	tick   ecs.Resource[resource.Tick]
}

func (s *WallSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter3[Position, BBox, Velocity](w)
	s.field = ecs.NewResource[Playfield](w)
	s.events = ecs.NewResource[Events](w)
	s.tick = ecs.NewResource[resource.Tick](w)
}

func (s *WallSystem) Update(_ *ecs.World) {
	field := s.field.Get()
	events := s.events.Get()
	frame := s.tick.Get().Tick

	query := s.filter.Query()
	for query.Next() {
		pos, box, vel := query.Get()

		switch {
		case pos.Y <= 0:
			pos.Y = 0
			vel.Y = math.Abs(vel.Y)
		case pos.Y+box.Height >= field.Height:
			pos.Y = field.Height - box.Height
			vel.Y = -math.Abs(vel.Y)
		default:
			continue
		}
		events.Push(Event{Kind: EventWallBounce, Frame: frame})
	}
}

func (s *WallSystem) Finalize(_ *ecs.World) {}

// GoalSystem scores when a moving entity reaches the left or right edge and
// serves it again from the center in a random direction.
type GoalSystem struct {
	filter *ecs.Filter3[Position, BBox, Velocity]
	field  ecs.Resource[Playfield]
	props  ecs.Resource[Properties]
	dice   *Dice
	events ecs.Resource[Events]
	tick   ecs.Resource[resource.Tick]
}

func (s *GoalSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter3[Position, BBox, Velocity](w)
	s.field = ecs.NewResource[Playfield](w)
	s.props = ecs.NewResource[Properties](w)
	s.dice = NewDice(ecs.NewResource[resource.Rand](w).Get().Source)
	s.events = ecs.NewResource[Events](w)
	s.tick = ecs.NewResource[resource.Tick](w)
}

func (s *GoalSystem) Update(_ *ecs.World) {
	field := s.field.Get()
	props := s.props.Get()
	events := s.events.Get()
	frame := s.tick.Get().Tick

	query := s.filter.Query()
	for query.Next() {
		pos, box, vel := query.Get()

		var side int
		switch {
		case pos.X <= 0:
			side = SideOpponent
		case pos.X+box.Width >= field.Width:
			side = SidePlayer
		default:
			continue
		}

		serve(pos, box, vel, field, s.dice)
		if side == SidePlayer {
			props.Increment(Score1, 1)
		} else {
			props.Increment(Score2, 1)
		}
		events.Push(Event{Kind: EventGoal, Side: side, Frame: frame})
	}
}

func (s *GoalSystem) Finalize(_ *ecs.World) {}

// serve puts the ball back in the middle and flips each velocity component
// with its own coin, keeping the speed.
func serve(pos *Position, box *BBox, vel *Velocity, field *Playfield, dice *Dice) {
	pos.X = field.Width/2 - box.Width/2
	pos.Y = field.Height/2 - box.Height/2
	vel.X *= dice.Direction()
	vel.Y *= dice.Direction()
}

// OpponentSystem moves scripted paddles toward the ball's vertical center.
type OpponentSystem struct {
	balls   *ecs.Filter3[Position, BBox, Type]
	paddles *ecs.Filter3[Position, BBox, Scripted]
	field   ecs.Resource[Playfield]
}

func (s *OpponentSystem) Initialize(w *ecs.World) {
	s.balls = ecs.NewFilter3[Position, BBox, Type](w).With(ecs.C[Velocity]())
	s.paddles = ecs.NewFilter3[Position, BBox, Scripted](w)
	s.field = ecs.NewResource[Playfield](w)
}

func (s *OpponentSystem) Update(_ *ecs.World) {
	target, ok := s.ballCenterY()
	if !ok {
		return
	}
	field := s.field.Get()

	query := s.paddles.Query()
	for query.Next() {
		pos, box, script := query.Get()
		center := pos.Y + box.Height/2
		if target > center {
			pos.Y += script.Speed
		}
		if target < center {
			pos.Y -= script.Speed
		}
		pos.Y = clamp(pos.Y, 0, field.Height-box.Height)
	}
}

func (s *OpponentSystem) ballCenterY() (float64, bool) {
	var (
		y     float64
		found bool
	)
	query := s.balls.Query()
	for query.Next() {
		pos, box, typ := query.Get()
		if found || typ.Kind != TypeBall {
			continue
		}
		y = pos.Y + box.Height/2
		found = true
	}
	return y, found
}

func (s *OpponentSystem) Finalize(_ *ecs.World) {}

// MatchSystem ends the match once a side reaches the final score.
type MatchSystem struct {
	props  ecs.Resource[Properties]
	match  ecs.Resource[Match]
	events ecs.Resource[Events]
	tick   ecs.Resource[resource.Tick]
}

func (s *MatchSystem) Initialize(w *ecs.World) {
	s.props = ecs.NewResource[Properties](w)
	s.match = ecs.NewResource[Match](w)
	s.events = ecs.NewResource[Events](w)
	s.tick = ecs.NewResource[resource.Tick](w)
}

func (s *MatchSystem) Update(_ *ecs.World) {
	match := s.match.Get()
	if match.FinalScore <= 0 || match.Over {
		return
	}
	props := s.props.Get()

	switch {
	case props.Int(Score1) >= match.FinalScore:
		match.Winner = SidePlayer
	case props.Int(Score2) >= match.FinalScore:
		match.Winner = SideOpponent
	default:
		return
	}
	match.Over = true
	s.events.Get().Push(Event{Kind: EventMatchOver, Side: match.Winner, Frame: s.tick.Get().Tick})
}

func (s *MatchSystem) Finalize(_ *ecs.World) {}
