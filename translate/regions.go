package translate

import (
	"camera2-shim/camera2"
	"camera2-shim/internal/common"
	"camera2-shim/legacy"
	"camera2-shim/utils"
)

// remapAreas converts legacy normalized metering areas into framework
// metering rectangles in active-array pixel space. An empty input yields
// nil, the "leave the template default alone" marker, never an empty slice.
func remapAreas(areas []legacy.Area, active camera2.Rect) []camera2.MeteringRect {
	if common.IsEmpty(areas) {
		return nil
	}

	out := make([]camera2.MeteringRect, len(areas))
	for i, area := range areas {
		left := remapEdge(area.Rect.Left, active.Width(), active.Left)
		top := remapEdge(area.Rect.Top, active.Height(), active.Top)
		right := remapEdge(area.Rect.Right, active.Width(), active.Left)
		bottom := remapEdge(area.Rect.Bottom, active.Height(), active.Top)

		out[i] = camera2.MeteringRect{
			X:      left,
			Y:      top,
			Width:  right - left,
			Height: bottom - top,
			Weight: int32(area.Weight),
		}
	}
	return out
}

// remapEdge rescales one edge coordinate from the [-1000, 1000] normalized
// space onto the active array axis starting at origin. The clamp runs on the
// real-valued result and truncation comes last, so an edge never leaves the
// active array.
func remapEdge(coord int, span, origin int32) int32 {
	normalized := float64(coord-legacy.AreaCoordinateMin) /
		float64(legacy.AreaCoordinateMax-legacy.AreaCoordinateMin)
	scaled := normalized*float64(span) + float64(origin)

	return int32(utils.Clamp(float64(origin), scaled, float64(origin+span-1)))
}
