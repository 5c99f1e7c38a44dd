package entity

// Body is the shared physical state of every entity: an axis-aligned
// bounding box at (X, Y) top-left, velocity in pixels per second, and
// the contact flags maintained by the collision resolver.
//
// Movement happens in whole-pixel steps; the fractional remainder is
// accumulated in RemX/RemY so slow entities still creep forward.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	RemX, RemY float64

	FacingRight bool
	Alive       bool

	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
	WasOnGround bool // previous step, for coyote time

	// Weightless bodies skip gravity; ghost bodies skip tile collision.
	Weightless bool
	Ghost      bool
}

// Rect returns the bounding box as (x, y, w, h).
func (b *Body) Rect() (x, y, w, h float64) {
	return b.X, b.Y, b.W, b.H
}

// CenterX returns the horizontal center of the bounding box.
func (b *Body) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center of the bounding box.
func (b *Body) CenterY() float64 {
	return b.Y + b.H/2
}

// Overlaps reports whether two bounding boxes intersect.
func (b *Body) Overlaps(o *Body) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X && b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// PendingMove converts velocity into whole pixels to move this step,
// folding in the sub-pixel remainder from previous steps.
func (b *Body) PendingMove(dt float64) (dx, dy int) {
	mx := b.VX*dt + b.RemX
	my := b.VY*dt + b.RemY
	dx = int(mx)
	dy = int(my)
	b.RemX = mx - float64(dx)
	b.RemY = my - float64(dy)
	return dx, dy
}

// ResetContacts clears the per-step contact flags, remembering the
// previous ground state.
func (b *Body) ResetContacts() {
	b.WasOnGround = b.OnGround
	b.OnGround = false
	b.OnCeiling = false
	b.OnWallLeft = false
	b.OnWallRight = false
}
