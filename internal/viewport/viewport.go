// Package viewport sanitises terminal sizes before any layout arithmetic.
package viewport

import "github.com/hy4ri/datepick/internal/debuglog"

const (
	// MinWidth and MinHeight are the smallest sizes taken at face value.
	MinWidth  = 20
	MinHeight = 8

	// FallbackWidth and FallbackHeight replace sizes below the minimum.
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// Reporter turns raw reported sizes into usable ones.
type Reporter struct {
	FallbackWidth  int
	FallbackHeight int
}

// NewReporter returns a reporter with the given fallbacks. Non-positive
// fallbacks use the package defaults.
func NewReporter(fallbackWidth, fallbackHeight int) Reporter {
	if fallbackWidth < MinWidth {
		fallbackWidth = FallbackWidth
	}
	if fallbackHeight < MinHeight {
		fallbackHeight = FallbackHeight
	}
	return Reporter{FallbackWidth: fallbackWidth, FallbackHeight: fallbackHeight}
}

// Sanitize replaces each dimension below the minimum with its fallback.
func (r Reporter) Sanitize(width, height int) Size {
	size := Size{Width: width, Height: height}
	if width < MinWidth {
		debuglog.Printf("viewport: width %d below minimum, using %d", width, r.FallbackWidth)
		size.Width = r.FallbackWidth
	}
	if height < MinHeight {
		debuglog.Printf("viewport: height %d below minimum, using %d", height, r.FallbackHeight)
		size.Height = r.FallbackHeight
	}
	return size
}

// Sanitize uses the default fallbacks.
func Sanitize(width, height int) Size {
	return NewReporter(FallbackWidth, FallbackHeight).Sanitize(width, height)
}
