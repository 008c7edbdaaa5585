package ui

// Base provides focus and size handling for panel models.
//
//	type Model struct {
//	    ui.Base
//	    cursor cursor.Cursor
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) { b.focused = focused }

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool { return b.focused }

// SetSize sets the component dimensions, borders included.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int { return b.width }

// Height returns the component height.
func (b Base) Height() int { return b.height }

// InnerWidth is the width inside the panel border.
func (b Base) InnerWidth() int { return max(b.width-BorderSize, 0) }

// ListHeight is the number of list rows inside a bordered panel with a title.
func (b Base) ListHeight() int { return max(b.height-PanelOverhead, 0) }
