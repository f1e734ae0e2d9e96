package camera2

// Rect is a pixel-space rectangle in the framework's left/top/right/bottom
// convention, right and bottom exclusive. The sensor's active array is
// described this way.
type Rect struct {
	Left, Top, Right, Bottom int32
}

func (r Rect) Width() int32 {
	return r.Right - r.Left
}

func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Size is a width and height pair in pixels.
type Size struct {
	Width, Height int32
}

// Range is an inclusive integer interval, as used for target frame rates.
type Range struct {
	Lower, Upper int32
}

// MeteringRect is one weighted metering region in active-array pixel
// coordinates. Higher weights count for more when the device blends
// overlapping regions.
type MeteringRect struct {
	X, Y, Width, Height int32
	Weight              int32
}
