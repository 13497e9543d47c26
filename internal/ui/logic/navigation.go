package logic

// Navigator handles cursor movement and viewport management over a flat list
type Navigator struct {
	cursor         int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(cursor, viewportOffset, viewportHeight, totalItems int) {
	n.cursor = cursor
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
	n.clampCursor()
	n.ensureCursorVisible()
}

// Cursor returns the current cursor position
func (n *Navigator) Cursor() int {
	return n.cursor
}

// ViewportOffset returns the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// Move moves the cursor in direction and returns the new cursor and viewport offset
func (n *Navigator) Move(direction string) (int, int) {
	page := n.viewportHeight - 1
	if page < 1 {
		page = 1
	}

	switch direction {
	case "up":
		n.cursor--
	case "down":
		n.cursor++
	case "pageup":
		n.cursor -= page
	case "pagedown":
		n.cursor += page
	case "home":
		n.cursor = 0
	case "end":
		n.cursor = n.totalItems - 1
	}

	n.clampCursor()
	n.ensureCursorVisible()
	return n.cursor, n.viewportOffset
}

// VisibleRange returns the half-open range of rows to draw, and whether
// scroll indicators are needed above and below it
func (n *Navigator) VisibleRange() (start, end int, above, below bool) {
	start = n.viewportOffset
	height := n.effectiveHeight()
	end = start + height
	if end > n.totalItems {
		end = n.totalItems
	}
	return start, end, start > 0, end < n.totalItems
}

func (n *Navigator) clampCursor() {
	if n.cursor >= n.totalItems {
		n.cursor = n.totalItems - 1
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
}

// effectiveHeight is the viewport height minus the rows taken by scroll indicators
func (n *Navigator) effectiveHeight() int {
	needsTopIndicator := n.viewportOffset > 0
	needsBottomIndicator := n.viewportOffset+n.viewportHeight < n.totalItems

	// Showing the top indicator can push the last row out of view
	if !needsBottomIndicator && needsTopIndicator {
		remainingItems := n.totalItems - n.viewportOffset
		if remainingItems > n.viewportHeight-1 {
			needsBottomIndicator = true
		}
	}

	height := n.viewportHeight
	if needsTopIndicator {
		height--
	}
	if needsBottomIndicator {
		height--
	}
	if height < 1 {
		height = 1
	}
	return height
}

// ensureCursorVisible adjusts the viewport to keep the cursor visible
func (n *Navigator) ensureCursorVisible() {
	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	}

	// Indicators depend on the offset, so settle in a couple of passes
	for i := 0; i < 3; i++ {
		height := n.effectiveHeight()
		if n.cursor < n.viewportOffset+height {
			break
		}
		n.viewportOffset = n.cursor - height + 1
	}

	maxOffset := n.totalItems - 1
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
