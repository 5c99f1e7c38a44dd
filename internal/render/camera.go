package render

// Camera maps world pixel coordinates to view coordinates. It trails
// the player with a lead margin toward the facing direction and never
// shows space outside the level.
type Camera struct {
	X, Y float64

	ViewW, ViewH float64
	WorldW       float64
	WorldH       float64
	LeadMargin   float64
}

// NewCamera creates a camera for a view of viewW x viewH pixels over a
// world of worldW x worldH pixels.
func NewCamera(viewW, viewH, worldW, worldH, leadMargin float64) *Camera {
	c := &Camera{
		ViewW: viewW, ViewH: viewH,
		WorldW: worldW, WorldH: worldH,
		LeadMargin: leadMargin,
	}
	c.clamp()
	return c
}

// Follow recenters the camera on a target point, biased ahead of the
// travel direction so the player sees more of what is coming.
func (c *Camera) Follow(targetX, targetY float64, facingRight bool) {
	lead := c.LeadMargin
	if !facingRight {
		lead = -lead
	}
	c.X = targetX + lead - c.ViewW/2
	c.Y = targetY - c.ViewH/2
	c.clamp()
}

// Jump snaps the camera without lead bias, for level starts.
func (c *Camera) Jump(targetX, targetY float64) {
	c.X = targetX - c.ViewW/2
	c.Y = targetY - c.ViewH/2
	c.clamp()
}

func (c *Camera) clamp() {
	c.X = clampF(c.X, 0, maxF(0, c.WorldW-c.ViewW))
	c.Y = clampF(c.Y, 0, maxF(0, c.WorldH-c.ViewH))
}

// ToView converts a world position to view coordinates.
func (c *Camera) ToView(wx, wy float64) (float64, float64) {
	return wx - c.X, wy - c.Y
}

// IsVisible reports whether a world-space rectangle intersects the
// view, with a margin so sprites straddling the edge still draw.
func (c *Camera) IsVisible(x, y, w, h float64) bool {
	const margin = 16
	return x+w >= c.X-margin && x <= c.X+c.ViewW+margin &&
		y+h >= c.Y-margin && y <= c.Y+c.ViewH+margin
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
