package pagination

// NewCursor returns a cursor on the first item of the first page
func NewCursor(pageSize int) Cursor {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Cursor{PageSize: pageSize}
}

// Reset moves the cursor back to the first item of the first page
func (c *Cursor) Reset() {
	c.Page = 0
	c.Index = 0
}

// PageCount returns ceil(total/PageSize), with a single empty page for an
// empty sequence.
func (c Cursor) PageCount(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + c.PageSize - 1) / c.PageSize
}

// LastPage returns the zero-based index of the last page
func (c Cursor) LastPage(total int) int {
	return c.PageCount(total) - 1
}

// Bounds returns the half-open range of the current page within a
// sequence of total items. start == end on an empty page.
func (c Cursor) Bounds(total int) (start, end int) {
	if total < 0 {
		total = 0
	}
	start = c.Page * c.PageSize
	if start > total {
		start = total
	}
	end = start + c.PageSize
	if end > total {
		end = total
	}
	return start, end
}

// Visible returns the number of items shown on the current page
func (c Cursor) Visible(total int) int {
	start, end := c.Bounds(total)
	return end - start
}

// Absolute returns the position of the highlighted item in the sequence
func (c Cursor) Absolute() int {
	return c.Index + c.Page*c.PageSize
}

// Valid reports whether Absolute resolves to an item of the sequence
func (c Cursor) Valid(total int) bool {
	return c.Index >= 0 && c.Index < c.Visible(total)
}

// PageBack moves to the previous page. The index resets only when the
// page actually changed.
func (c *Cursor) PageBack() bool {
	last := c.Page
	c.Page--
	if c.Page < 0 {
		c.Page = 0
	}
	if c.Page != last {
		c.Index = 0
		return true
	}
	return false
}

// PageForward moves to the next page, bounded by the last page of the
// live sequence.
func (c *Cursor) PageForward(total int) bool {
	last := c.Page
	c.Page++
	if lastPage := c.LastPage(total); c.Page > lastPage {
		c.Page = lastPage
	}
	if c.Page != last {
		c.Index = 0
		return true
	}
	return false
}

// Up moves the index up, wrapping from the first visible item to the last
func (c *Cursor) Up(total int) {
	n := c.Visible(total)
	if n == 0 {
		c.Index = 0
		return
	}
	if c.Index > 0 {
		c.Index--
	} else {
		c.Index = n - 1
	}
}

// Down moves the index down, wrapping from the last visible item to the first
func (c *Cursor) Down(total int) {
	n := c.Visible(total)
	if n == 0 {
		c.Index = 0
		return
	}
	if c.Index < n-1 {
		c.Index++
	} else {
		c.Index = 0
	}
}

// Move applies a direction to the cursor
func (c *Cursor) Move(dir Direction, total int) {
	switch dir {
	case DirectionUp:
		c.Up(total)
	case DirectionDown:
		c.Down(total)
	case DirectionLeft:
		c.PageBack()
	case DirectionRight:
		c.PageForward(total)
	}
}

// Clamp restores the cursor invariant after the sequence changed length
func (c *Cursor) Clamp(total int) {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Page < 0 {
		c.Page = 0
	}
	if lastPage := c.LastPage(total); c.Page > lastPage {
		c.Page = lastPage
		c.Index = 0
	}
	n := c.Visible(total)
	switch {
	case n == 0 || c.Index < 0:
		c.Index = 0
	case c.Index >= n:
		c.Index = n - 1
	}
}
