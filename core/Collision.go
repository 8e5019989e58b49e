package core

import "github.com/mlange-42/ark/ecs"

// CollisionHandler reacts when an entity of type A and one of type B start
// to overlap. OnBegin gets them in (A, B) order.
type CollisionHandler struct {
	A, B    EntityType
	OnBegin func(a, b ecs.Entity)
}

type body struct {
	entity ecs.Entity
	rect   Rect
	kind   EntityType
}

type contact struct {
	a, b ecs.Entity
}

// CollisionSystem runs AABB checks between collidable entities and calls
// the matching handlers once per contact, on the frame the overlap begins.
type CollisionSystem struct {
	handlers []CollisionHandler
	filter   *ecs.Filter3[Position, BBox, Type]
	contacts map[contact]bool
	bodies   []body
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{contacts: make(map[contact]bool)}
}

func (s *CollisionSystem) AddCollisionHandler(h CollisionHandler) {
	s.handlers = append(s.handlers, h)
}

// Reset forgets ongoing contacts, so an overlap that is still there fires
// again on the next frame.
func (s *CollisionSystem) Reset() {
	s.contacts = make(map[contact]bool)
}

func (s *CollisionSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter3[Position, BBox, Type](w).With(ecs.C[Collidable]())
}

func (s *CollisionSystem) Update(_ *ecs.World) {
	s.bodies = s.bodies[:0]
	query := s.filter.Query()
	for query.Next() {
		pos, box, typ := query.Get()
		s.bodies = append(s.bodies, body{entity: query.Entity(), rect: RectOf(pos, box), kind: typ.Kind})
	}

	touching := make(map[contact]bool, len(s.contacts))
	for i := range s.bodies {
		for j := i + 1; j < len(s.bodies); j++ {
			for _, h := range s.handlers {
				a, b, ok := h.order(s.bodies[i], s.bodies[j])
				if !ok || !a.rect.Intersects(b.rect) {
					continue
				}
				key := contact{a: a.entity, b: b.entity}
				touching[key] = true
				if !s.contacts[key] {
					h.OnBegin(a.entity, b.entity)
				}
			}
		}
	}
	s.contacts = touching
}

func (s *CollisionSystem) Finalize(_ *ecs.World) {
	s.Reset()
}

func (h CollisionHandler) order(x, y body) (body, body, bool) {
	switch {
	case x.kind == h.A && y.kind == h.B:
		return x, y, true
	case x.kind == h.B && y.kind == h.A:
		return y, x, true
	}
	return body{}, body{}, false
}
