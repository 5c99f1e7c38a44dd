package system

import "github.com/hyunmoon/sidescroll/internal/domain/entity"

// contactSide derives the side of body a that touched body b from the
// relative penetration depth on each axis. Equal depths resolve
// vertically, so a player landing near an enemy's edge counts as a
// stomp rather than a side hit.
func contactSide(a, b *entity.Body) entity.Side {
	overlapX := minF(a.X+a.W, b.X+b.W) - maxF(a.X, b.X)
	overlapY := minF(a.Y+a.H, b.Y+b.H) - maxF(a.Y, b.Y)

	if overlapY <= overlapX {
		if a.CenterY() < b.CenterY() {
			return entity.SideBottom
		}
		return entity.SideTop
	}
	if a.CenterX() < b.CenterX() {
		return entity.SideRight
	}
	return entity.SideLeft
}

// ResolveContacts runs the entity-vs-entity pass. Pairs are visited in
// list order (player first), each overlapping pair exactly once; both
// parties apply their own transition for the shared contact, which
// keeps processing deterministic and free of double-counted collisions.
func ResolveContacts(entities []entity.Entity, ctx *entity.Context) {
	for i := 0; i < len(entities); i++ {
		a := entities[i]
		ab := a.Base()
		if !ab.Alive || intangible(a.Kind()) {
			continue
		}
		for j := i + 1; j < len(entities); j++ {
			b := entities[j]
			bb := b.Base()
			if !bb.Alive || intangible(b.Kind()) {
				continue
			}
			if !ab.Overlaps(bb) {
				continue
			}
			side := contactSide(ab, bb)
			a.HitEntity(b, side, ctx)
			b.HitEntity(a, side.Opposite(), ctx)
		}
	}
}

// intangible variants never take part in entity contacts.
func intangible(k entity.Kind) bool {
	return k == entity.KindSparkle || k == entity.KindDebris
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
