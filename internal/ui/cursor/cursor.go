// Package cursor tracks a highlighted row and the scroll window of a list.
package cursor

// Cursor is a list cursor with a scroll offset. The list length and the
// viewport height are arguments, not state, since both change between calls.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below the cursor
}

// New creates a cursor that keeps margin rows of context while scrolling.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the highlighted index.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible index.
func (c Cursor) Offset() int { return c.offset }

// Move shifts the cursor by delta, clamped to the list.
func (c *Cursor) Move(delta, n, height int) {
	c.Jump(c.pos+delta, n, height)
}

// Jump places the cursor at pos, clamped to the list. No-op on an empty list.
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		return
	}
	c.pos = clamp(pos, n-1)
	c.scroll(n, height)
}

// Start moves to the first row.
func (c *Cursor) Start() {
	c.pos = 0
	c.offset = 0
}

// End moves to the last row.
func (c *Cursor) End(n, height int) {
	c.Jump(n-1, n, height)
}

// Page moves by half a viewport, downwards when pages is positive.
func (c *Cursor) Page(pages, n, height int) {
	c.Move(pages*max(height/2, 1), n, height)
}

// Visible returns the half-open range of rows in view.
func (c Cursor) Visible(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, n)
}

func (c *Cursor) scroll(n, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(n-height, 0))
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
