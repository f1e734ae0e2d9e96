package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"camera2-shim/camera2"
	"camera2-shim/legacy"
)

func TestRemapAreasFullSpan(t *testing.T) {
	t.Parallel()

	got := remapAreas([]legacy.Area{
		{Rect: legacy.Rect{Left: -1000, Top: -1000, Right: 1000, Bottom: 1000}, Weight: 1000},
	}, camera2.Rect{Left: 0, Top: 0, Right: 2000, Bottom: 1000})

	assert.Equal(t, []camera2.MeteringRect{
		{X: 0, Y: 0, Width: 1999, Height: 999, Weight: 1000},
	}, got)
}

func TestRemapAreasCenterQuarter(t *testing.T) {
	t.Parallel()

	got := remapAreas([]legacy.Area{
		{Rect: legacy.Rect{Left: -250, Top: -250, Right: 250, Bottom: 250}, Weight: 42},
	}, camera2.Rect{Left: 0, Top: 0, Right: 2000, Bottom: 1000})

	assert.Equal(t, []camera2.MeteringRect{
		{X: 750, Y: 375, Width: 500, Height: 250, Weight: 42},
	}, got)
}

// A degenerate point at the middle of the legacy space lands on the middle
// of the active array.
func TestRemapAreasCenterPoint(t *testing.T) {
	t.Parallel()

	got := remapAreas([]legacy.Area{
		{Rect: legacy.Rect{Left: 0, Top: 0, Right: 0, Bottom: 0}, Weight: 1},
	}, camera2.Rect{Left: 0, Top: 0, Right: 2000, Bottom: 1000})

	assert.Equal(t, []camera2.MeteringRect{
		{X: 1000, Y: 500, Width: 0, Height: 0, Weight: 1},
	}, got)
}

// Sensors whose active array does not start at (0, 0) shift every remapped
// coordinate by the array origin.
func TestRemapAreasOffsetActiveArray(t *testing.T) {
	t.Parallel()

	got := remapAreas([]legacy.Area{
		{Rect: legacy.Rect{Left: -1000, Top: -1000, Right: 1000, Bottom: 1000}, Weight: 1},
	}, camera2.Rect{Left: 8, Top: 8, Right: 4040, Bottom: 3032})

	assert.Equal(t, []camera2.MeteringRect{
		{X: 8, Y: 8, Width: 4031, Height: 3023, Weight: 1},
	}, got)
}

func TestRemapAreasSeveral(t *testing.T) {
	t.Parallel()

	got := remapAreas([]legacy.Area{
		{Rect: legacy.Rect{Left: -1000, Top: -1000, Right: 0, Bottom: 0}, Weight: 1},
		{Rect: legacy.Rect{Left: 0, Top: 0, Right: 1000, Bottom: 1000}, Weight: 999},
	}, camera2.Rect{Left: 0, Top: 0, Right: 1000, Bottom: 1000})

	assert.Equal(t, []camera2.MeteringRect{
		{X: 0, Y: 0, Width: 500, Height: 500, Weight: 1},
		{X: 500, Y: 500, Width: 499, Height: 499, Weight: 999},
	}, got)
}

func TestRemapAreasEmpty(t *testing.T) {
	t.Parallel()

	active := camera2.Rect{Left: 0, Top: 0, Right: 2000, Bottom: 1000}

	assert.Nil(t, remapAreas(nil, active))
	assert.Nil(t, remapAreas([]legacy.Area{}, active))
}

func TestRemapEdge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coord  int
		span   int32
		origin int32
		want   int32
	}{
		{"lower bound", -1000, 1000, 0, 0},
		{"upper bound clamps inside", 1000, 1000, 0, 999},
		{"midpoint", 0, 1000, 0, 500},
		{"fraction truncates", 3, 1000, 0, 501},
		{"origin shifts", 0, 1000, 8, 508},
		{"beyond the space collapses low", -1500, 1000, 0, 0},
		{"beyond the space collapses high", 1500, 1000, 0, 999},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, remapEdge(tt.coord, tt.span, tt.origin))
		})
	}
}
