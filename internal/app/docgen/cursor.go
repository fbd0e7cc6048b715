package docgen

// Page geometry, A4 portrait in millimeters.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	pageMargin   = 15.0
	contentWidth = pageWidth - 2*pageMargin
	bottomLimit  = pageHeight - pageMargin
)

// LayoutCursor tracks the paint position: current page and vertical
// offset. It is a value; drawing primitives return the updated cursor,
// which keeps the page-break arithmetic testable without a rendering
// backend.
type LayoutCursor struct {
	Page int
	Y    float64
}

// Advance moves the cursor down by h on the same page.
func (c LayoutCursor) Advance(h float64) LayoutCursor {
	c.Y += h
	return c
}

// Fits reports whether a block of the given height can be painted
// without crossing the bottom margin.
func (c LayoutCursor) Fits(reserve float64) bool {
	return c.Y+reserve <= bottomLimit
}

// NextPage moves to the top margin of the following page.
func (c LayoutCursor) NextPage() LayoutCursor {
	return LayoutCursor{Page: c.Page + 1, Y: pageMargin}
}

// Ensure returns a cursor from which reserve can be painted, moving to a
// fresh page when the current one cannot hold it. broke reports whether
// a page break happened.
func (c LayoutCursor) Ensure(reserve float64) (next LayoutCursor, broke bool) {
	if c.Fits(reserve) {
		return c, false
	}
	return c.NextPage(), true
}
