package marquee

// Item is the geometry snapshot of one carousel element. The host lays items
// out in content-flow order and hands pointers to NewLoop. From then on the
// loop owns X (reset to zero) and XPercent; the host reads them back each
// frame to position the rendered element.
type Item struct {
	Name string

	// OffsetLeft is the item's position in content-flow coordinates.
	OffsetLeft float64
	// Width is the unscaled width. Must be positive.
	Width float64
	// ScaleX multiplies the rendered width. Zero is treated as 1.
	ScaleX float64

	// X is a pixel offset applied on top of OffsetLeft.
	X float64
	// XPercent is an offset expressed as a percentage of Width.
	XPercent float64
}

// NewItem creates an Item at the given flow position with unit scale.
func NewItem(name string, offsetLeft, width float64) *Item {
	return &Item{Name: name, OffsetLeft: offsetLeft, Width: width, ScaleX: 1}
}

// Scale returns the effective horizontal scale.
func (it *Item) Scale() float64 {
	if it.ScaleX == 0 {
		return 1
	}
	return it.ScaleX
}

// Left returns the item's rendered left edge: flow position plus both offsets.
func (it *Item) Left() float64 {
	return it.OffsetLeft + it.X + it.XPercent/100*it.Width
}

// Right returns the rendered right edge.
func (it *Item) Right() float64 {
	return it.Left() + it.Width*it.Scale()
}

// LayoutRow creates n items of the given width placed edge to edge starting
// at x, separated by gap.
func LayoutRow(x, width, gap float64, n int) []*Item {
	items := make([]*Item, n)
	for i := range items {
		items[i] = &Item{OffsetLeft: x, Width: width, ScaleX: 1}
		x += width + gap
	}
	return items
}
