package legacy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"camera2-shim/legacy"
)

func TestAreaValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		area  legacy.Area
		valid bool
	}{
		{
			name:  "full span",
			area:  legacy.Area{Rect: legacy.Rect{Left: -1000, Top: -1000, Right: 1000, Bottom: 1000}, Weight: 1},
			valid: true,
		},
		{
			name:  "center quarter",
			area:  legacy.Area{Rect: legacy.Rect{Left: -250, Top: -250, Right: 250, Bottom: 250}, Weight: 500},
			valid: true,
		},
		{
			name:  "degenerate point",
			area:  legacy.Area{Rect: legacy.Rect{Left: 0, Top: 0, Right: 0, Bottom: 0}, Weight: 1000},
			valid: true,
		},
		{
			name:  "left edge out of space",
			area:  legacy.Area{Rect: legacy.Rect{Left: -1001, Top: 0, Right: 0, Bottom: 0}, Weight: 1},
			valid: false,
		},
		{
			name:  "bottom edge out of space",
			area:  legacy.Area{Rect: legacy.Rect{Left: 0, Top: 0, Right: 0, Bottom: 1001}, Weight: 1},
			valid: false,
		},
		{
			name:  "inverted horizontally",
			area:  legacy.Area{Rect: legacy.Rect{Left: 500, Top: 0, Right: -500, Bottom: 100}, Weight: 1},
			valid: false,
		},
		{
			name:  "zero weight",
			area:  legacy.Area{Rect: legacy.Rect{Left: -100, Top: -100, Right: 100, Bottom: 100}, Weight: 0},
			valid: false,
		},
		{
			name:  "weight too heavy",
			area:  legacy.Area{Rect: legacy.Rect{Left: -100, Top: -100, Right: 100, Bottom: 100}, Weight: 1001},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.area.Valid())
		})
	}
}
