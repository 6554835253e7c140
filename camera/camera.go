// Package camera provides a 2D camera for viewing the arena.
package camera

// Camera controls the viewport into the arena. The arena is bounded, so the
// camera never shows space past its edges unless the whole arena fits.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Screen rectangle the arena is drawn into
	OriginX, OriginY     float32
	ViewportW, ViewportH float32

	WorldW, WorldH float32

	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world with 1:1 zoom. The viewport
// starts at (originX, originY) on screen.
func New(originX, originY, viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		OriginX: originX,
		OriginY: originY,
		WorldW:  worldW,
		WorldH:  worldH,
		Zoom:    1.0,
		MaxZoom: 4.0,
	}
	c.Resize(viewportW, viewportH)
	c.Reset()
	return c
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.OriginX + c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.OriginY + c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.OriginX-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.OriginY-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// InViewport reports whether a screen point lies inside the arena viewport.
func (c *Camera) InViewport(sx, sy float32) bool {
	return sx >= c.OriginX && sx < c.OriginX+c.ViewportW &&
		sy >= c.OriginY && sy < c.OriginY+c.ViewportH
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
// The minimum zoom fits the whole arena in the viewport.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = viewportW / c.WorldW
	if z := viewportH / c.WorldH; z < c.MinZoom {
		c.MinZoom = z
	}
	if c.MinZoom > c.MaxZoom {
		c.MaxZoom = c.MinZoom
	}
	c.SetZoom(c.Zoom)
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampCenter()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampCenter()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset shows the whole arena, as large as it fits.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.SetZoom(c.MinZoom)
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// clampCenter keeps the view inside the arena. An axis that fits entirely
// is centred.
func (c *Camera) clampCenter() {
	c.X = clampAxis(c.X, c.ViewportW/(2*c.Zoom), c.WorldW)
	c.Y = clampAxis(c.Y, c.ViewportH/(2*c.Zoom), c.WorldH)
}

func clampAxis(center, half, size float32) float32 {
	if 2*half >= size {
		return size / 2
	}
	return clamp(center, half, size-half)
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
