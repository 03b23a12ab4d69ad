package atlas

// shelf represents a horizontal shelf in the shelf-packing algorithm.
type shelf struct {
	y      int // Top Y coordinate of this shelf
	height int // Height of this shelf (tallest item so far)
	nextX  int // Next available X position on this shelf
}

// RectAllocator implements a simple shelf-packing algorithm for
// allocating rectangular regions within a fixed-size area.
//
// The algorithm divides the area into horizontal "shelves". Each new
// rectangle is placed on an existing shelf if it fits, or a new shelf is
// created below. Regions are never moved or freed individually; the
// whole allocator is reset at once.
//
// RectAllocator is not safe for concurrent use. The rendering backend
// serializes access through its context phases.
type RectAllocator struct {
	width   int
	height  int
	padding int

	shelves []*shelf

	allocCount int
	usedArea   int
}

// NewRectAllocator creates an allocator for a width x height area with
// the given padding between regions.
func NewRectAllocator(width, height, padding int) *RectAllocator {
	if padding < 0 {
		padding = 0
	}
	return &RectAllocator{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]*shelf, 0, 16),
	}
}

// Allocate finds space for a rectangle of the given size.
// Returns an invalid region (zero Width/Height) if it cannot fit.
func (a *RectAllocator) Allocate(width, height int) Region {
	if width <= 0 || height <= 0 {
		return Region{}
	}

	paddedWidth := width + a.padding
	paddedHeight := height + a.padding

	if paddedWidth > a.width || paddedHeight > a.height {
		return Region{}
	}

	for _, s := range a.shelves {
		if a.fitsOnShelf(s, paddedWidth, paddedHeight) {
			return a.allocateOnShelf(s, width, height, paddedWidth)
		}
	}

	return a.allocateNewShelf(width, height, paddedWidth, paddedHeight)
}

// fitsOnShelf checks if a rectangle fits on the given shelf.
func (a *RectAllocator) fitsOnShelf(s *shelf, paddedWidth, paddedHeight int) bool {
	if s.nextX+paddedWidth > a.width {
		return false
	}
	// The shelf can only grow taller while it is still empty.
	if paddedHeight > s.height && s.nextX > 0 {
		return false
	}
	return true
}

// allocateOnShelf allocates space on an existing shelf.
func (a *RectAllocator) allocateOnShelf(s *shelf, width, height, paddedWidth int) Region {
	region := Region{X: s.nextX, Y: s.y, Width: width, Height: height}

	s.nextX += paddedWidth
	if height+a.padding > s.height {
		s.height = height + a.padding
	}

	a.allocCount++
	a.usedArea += width * height
	return region
}

// allocateNewShelf creates a new shelf and allocates the rectangle on it.
func (a *RectAllocator) allocateNewShelf(width, height, paddedWidth, paddedHeight int) Region {
	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height
	}

	if newY+paddedHeight > a.height {
		return Region{}
	}

	a.shelves = append(a.shelves, &shelf{
		y:      newY,
		height: paddedHeight,
		nextX:  paddedWidth,
	})

	a.allocCount++
	a.usedArea += width * height
	return Region{X: 0, Y: newY, Width: width, Height: height}
}

// Reset clears all allocations, making the entire area available again.
func (a *RectAllocator) Reset() {
	a.shelves = a.shelves[:0]
	a.allocCount = 0
	a.usedArea = 0
}

// AllocCount returns the number of successful allocations.
func (a *RectAllocator) AllocCount() int { return a.allocCount }

// Utilization returns the fraction of area used (0.0 to 1.0).
func (a *RectAllocator) Utilization() float64 {
	totalArea := a.width * a.height
	if totalArea == 0 {
		return 0
	}
	return float64(a.usedArea) / float64(totalArea)
}
