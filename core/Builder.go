package core

import "github.com/mlange-42/ark/ecs"

// EntityBuilder assembles an entity component by component.
//
//	ball := NewEntityBuilder(w).
//		Type(TypeBall).
//		At(x, y).
//		ViewWithBBox(size, size).
//		Collidable().
//		WithVelocity(5, 5).
//		Build()
type EntityBuilder struct {
	world      *ecs.World
	kind       EntityType
	pos        Position
	box        BBox
	velocity   *Velocity
	collidable bool
	controlled bool
	scripted   *Scripted
}

func NewEntityBuilder(w *ecs.World) *EntityBuilder {
	return &EntityBuilder{world: w}
}

func (b *EntityBuilder) Type(t EntityType) *EntityBuilder {
	b.kind = t
	return b
}

func (b *EntityBuilder) At(x, y float64) *EntityBuilder {
	b.pos = Position{X: x, Y: y}
	return b
}

func (b *EntityBuilder) ViewWithBBox(width, height float64) *EntityBuilder {
	b.box = BBox{Width: width, Height: height}
	return b
}

func (b *EntityBuilder) Collidable() *EntityBuilder {
	b.collidable = true
	return b
}

func (b *EntityBuilder) WithVelocity(x, y float64) *EntityBuilder {
	b.velocity = &Velocity{X: x, Y: y}
	return b
}

func (b *EntityBuilder) Controlled() *EntityBuilder {
	b.controlled = true
	return b
}

func (b *EntityBuilder) Scripted(speed float64) *EntityBuilder {
	b.scripted = &Scripted{Speed: speed}
	return b
}

func (b *EntityBuilder) Build() ecs.Entity {
	w := b.world
	e := ecs.NewMap2[Position, BBox](w).NewEntity(&b.pos, &b.box)
	ecs.NewMap[Type](w).Add(e, &Type{Kind: b.kind})

	if b.velocity != nil {
		ecs.NewMap[Velocity](w).Add(e, b.velocity)
	}
	if b.collidable {
		ecs.NewMap[Collidable](w).Add(e, &Collidable{})
	}
	if b.controlled {
		ecs.NewMap[Controlled](w).Add(e, &Controlled{})
	}
	if b.scripted != nil {
		ecs.NewMap[Scripted](w).Add(e, b.scripted)
	}
	return e
}
