package legacy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"camera2-shim/legacy"
	"camera2-shim/logx"
)

func TestSettingsCopyIndependence(t *testing.T) {
	var s legacy.Settings
	s.SetFlashMode(legacy.FlashModeTorch)
	s.SetJPEGQuality(90)
	s.SetMeteringAreas([]legacy.Area{
		{Rect: legacy.Rect{Left: -250, Top: -250, Right: 250, Bottom: 250}, Weight: 500},
	})

	c := s.Copy()
	c.SetFlashMode(legacy.FlashModeOff)
	c.SetMeteringAreas(nil)

	assert.Equal(t, legacy.FlashModeTorch, s.FlashMode())
	assert.Len(t, s.MeteringAreas(), 1)

	assert.Equal(t, legacy.FlashModeOff, c.FlashMode())
	assert.Empty(t, c.MeteringAreas())
	assert.Equal(t, 90, c.JPEGQuality())
}

func TestSettingsAreaSlicesDoNotAlias(t *testing.T) {
	areas := []legacy.Area{
		{Rect: legacy.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}, Weight: 10},
	}

	var s legacy.Settings
	s.SetFocusAreas(areas)

	// Neither mutating the input afterwards nor mutating a returned slice
	// may reach into the stored state.
	areas[0].Weight = 999
	got := s.FocusAreas()
	assert.Equal(t, 10, got[0].Weight)

	got[0].Weight = 777
	assert.Equal(t, 10, s.FocusAreas()[0].Weight)
}

func TestSetPreviewFpsRangeWarnsOnInverted(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	prev := logx.S().Desugar()
	logx.Set(zap.New(core))
	defer logx.Set(prev)

	var s legacy.Settings
	s.SetPreviewFpsRange(30, 15)

	// The range is stored as given; the problem is only reported.
	min, max := s.PreviewFpsRange()
	assert.Equal(t, 30, min)
	assert.Equal(t, 15, max)
	assert.Equal(t, 1, logs.FilterMessageSnippet("invalid preview fps range").Len())
}
