package core

import (
	"PongSolo/config"

	"github.com/google/uuid"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark-tools/resource"
	"github.com/mlange-42/ark/ecs"
)

// Game owns the ECS world and the per frame systems. It is not safe for
// concurrent use, everything runs on the frame loop goroutine.
type Game struct {
	app        *app.App
	settings   config.Settings
	collisions *CollisionSystem

	Player   ecs.Entity
	Opponent ecs.Entity
	Ball     ecs.Entity

	positions  *ecs.Map[Position]
	boxes      *ecs.Map[BBox]
	velocities *ecs.Map[Velocity]

	props    *Properties
	controls *Controls
	events   *Events
	dice     *Dice
	match    *Match
	field    *Playfield
	tick     ecs.Resource[resource.Tick]
}

// Snapshot is what the view needs to draw one frame.
type Snapshot struct {
	Player   Rect
	Opponent Rect
	Ball     Rect

	Score1 int
	Score2 int

	Frame   int64
	MatchID string
	Over    bool
	Winner  int
}

func NewGame(s config.Settings) *Game {
	tool := app.New(16)
	if s.Seed != 0 {
		tool.Seed(uint64(s.Seed))
	} else {
		tool.Seed()
	}
	// the frame loop ticker paces updates
	tool.TPS = 0

	g := &Game{
		app:        tool,
		settings:   s,
		collisions: NewCollisionSystem(),
		props:      NewProperties(),
		controls:   &Controls{},
		events:     &Events{},
		match:      &Match{FinalScore: s.FinalScore},
		field: &Playfield{
			Width:       float64(s.Width),
			Height:      float64(s.Height),
			BallSize:    float64(s.BallSize()),
			BallSpeed:   float64(s.BallSpeed),
			PlayerSpeed: float64(s.PlayerSpeed),
		},
	}

	w := &tool.World
	ecs.AddResource(w, g.props)
	ecs.AddResource(w, g.controls)
	ecs.AddResource(w, g.events)
	ecs.AddResource(w, g.match)
	ecs.AddResource(w, g.field)

	g.dice = NewDice(ecs.NewResource[resource.Rand](w).Get().Source)
	g.tick = ecs.NewResource[resource.Tick](w)

	g.positions = ecs.NewMap[Position](w)
	g.boxes = ecs.NewMap[BBox](w)
	g.velocities = ecs.NewMap[Velocity](w)

	g.initGameVars()
	g.initEntities(w)
	g.initPhysics()

	tool.AddSystem(&InputSystem{})
	tool.AddSystem(&MotionSystem{})
	tool.AddSystem(&WallSystem{})
	tool.AddSystem(g.collisions)
	tool.AddSystem(&GoalSystem{})
	tool.AddSystem(&OpponentSystem{})
	tool.AddSystem(&MatchSystem{})
	tool.Initialize()

	g.match.ID = uuid.NewString()
	return g
}

func (g *Game) initGameVars() {
	g.props.Put(Score1, 0)
	g.props.Put(Score2, 0)
}

func (g *Game) initEntities(w *ecs.World) {
	s := g.settings
	paddleWidth := float64(s.PaddleWidth())
	paddleHeight := float64(s.PaddleHeight())
	ballSize := float64(s.BallSize())

	g.Player = NewEntityBuilder(w).
		Type(TypePaddle).
		ViewWithBBox(paddleWidth, paddleHeight).
		Collidable().
		Controlled().
		Build()

	g.Opponent = NewEntityBuilder(w).
		Type(TypePaddle).
		ViewWithBBox(paddleWidth, paddleHeight).
		Collidable().
		Scripted(float64(s.PlayerSpeed)).
		Build()

	g.Ball = NewEntityBuilder(w).
		Type(TypeBall).
		ViewWithBBox(ballSize, ballSize).
		Collidable().
		WithVelocity(0, 0).
		Build()

	g.placeEntities()
}

// placeEntities puts everything at its kick-off spot.
func (g *Game) placeEntities() {
	s := g.settings
	paddleWidth := s.PaddleWidth()
	ballSize := s.BallSize()

	*g.positions.Get(g.Player) = Position{X: float64(paddleWidth), Y: float64(s.Height / 2)}
	*g.positions.Get(g.Opponent) = Position{X: float64(s.Width - paddleWidth*2), Y: float64(s.Height / 2)}
	*g.positions.Get(g.Ball) = Position{
		X: float64(s.Width/2 - ballSize/2),
		Y: float64(s.Height/2 - ballSize/2),
	}
	*g.velocities.Get(g.Ball) = Velocity{X: float64(s.BallSpeed), Y: float64(s.BallSpeed)}
}

func (g *Game) initPhysics() {
	g.collisions.AddCollisionHandler(CollisionHandler{
		A:       TypePaddle,
		B:       TypeBall,
		OnBegin: g.bounceOffPaddle,
	})
}

// bounceOffPaddle sends the ball back horizontally and lets the coin decide
// its vertical direction.
func (g *Game) bounceOffPaddle(_, ball ecs.Entity) {
	vel := g.velocities.Get(ball)
	vel.X = -vel.X
	vel.Y = g.dice.Direction() * vel.Y
	g.events.Push(Event{Kind: EventPaddleHit, Frame: g.tick.Get().Tick})
}

// Update simulates one frame. A finished match stays frozen until Restart.
func (g *Game) Update() {
	if g.match.Over {
		return
	}
	g.app.Update()
}

// Restart starts a fresh match: scores back to zero, entities at kick-off.
func (g *Game) Restart() {
	g.initGameVars()
	g.placeEntities()
	g.controls.Drain()
	g.events.Drain()
	g.collisions.Reset()
	g.match.Over = false
	g.match.Winner = 0
	g.match.ID = uuid.NewString()
}

func (g *Game) Push(cmd Command) {
	g.controls.Push(cmd)
}

func (g *Game) DrainEvents() []Event {
	return g.events.Drain()
}

func (g *Game) Properties() *Properties {
	return g.props
}

func (g *Game) Settings() config.Settings {
	return g.settings
}

func (g *Game) Match() Match {
	return *g.match
}

func (g *Game) Velocity(e ecs.Entity) Velocity {
	return *g.velocities.Get(e)
}

func (g *Game) Rect(e ecs.Entity) Rect {
	return RectOf(g.positions.Get(e), g.boxes.Get(e))
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Player:   g.Rect(g.Player),
		Opponent: g.Rect(g.Opponent),
		Ball:     g.Rect(g.Ball),
		Score1:   g.props.Int(Score1),
		Score2:   g.props.Int(Score2),
		Frame:    g.tick.Get().Tick,
		MatchID:  g.match.ID,
		Over:     g.match.Over,
		Winner:   g.match.Winner,
	}
}

func (g *Game) Close() {
	g.app.Finalize()
}
