package legacy

import "camera2-shim/utils"

// Boundaries of the legacy metering coordinate space. Both axes span
// [-1000, 1000] no matter what the sensor's real pixel geometry is.
const (
	AreaCoordinateMin = -1000
	AreaCoordinateMax = 1000

	AreaWeightMin = 1
	AreaWeightMax = 1000
)

// Rect is a rectangle in the legacy normalized coordinate space.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Area is one weighted metering or focus region. Higher weights count for
// more when the device blends overlapping regions.
type Area struct {
	Rect   Rect
	Weight int
}

// Valid reports whether the area lies inside the normalized coordinate space
// with non-inverted edges and a usable weight.
func (a Area) Valid() bool {
	return utils.IsInRange(AreaCoordinateMin, a.Rect.Left, AreaCoordinateMax) &&
		utils.IsInRange(AreaCoordinateMin, a.Rect.Top, AreaCoordinateMax) &&
		utils.IsInRange(AreaCoordinateMin, a.Rect.Right, AreaCoordinateMax) &&
		utils.IsInRange(AreaCoordinateMin, a.Rect.Bottom, AreaCoordinateMax) &&
		a.Rect.Left <= a.Rect.Right &&
		a.Rect.Top <= a.Rect.Bottom &&
		utils.IsInRange(AreaWeightMin, a.Weight, AreaWeightMax)
}
