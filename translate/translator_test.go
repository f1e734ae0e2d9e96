package translate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"camera2-shim/camera2"
	"camera2-shim/legacy"
)

var testActiveArray = camera2.Rect{Left: 0, Top: 0, Right: 2000, Bottom: 1000}

// previewDefaults mirrors the defaults a real back camera reports for the
// preview template.
func previewDefaults() *camera2.RequestSet {
	rs := camera2.NewRequestSet()
	rs.Set(camera2.KeyControlAEMode, camera2.AEModeOnAutoFlash)
	rs.Set(camera2.KeyControlAFMode, camera2.AFModeContinuousPicture)
	rs.Set(camera2.KeyControlAWBMode, camera2.AWBModeAuto)
	rs.Set(camera2.KeyControlSceneMode, camera2.SceneModeDisabled)
	rs.Set(camera2.KeyControlAETargetFPSRange, camera2.Range{Lower: 15, Upper: 30})
	rs.Set(camera2.KeyControlAEExposureCompensation, int32(0))
	rs.Set(camera2.KeyControlAELock, false)
	rs.Set(camera2.KeyControlAWBLock, false)
	rs.Set(camera2.KeyControlVideoStabilizationMode, camera2.VideoStabilizationOff)
	rs.Set(camera2.KeyJPEGQuality, uint8(85))
	rs.Set(camera2.KeyJPEGThumbnailSize, camera2.Size{Width: 320, Height: 240})
	return rs
}

func testDevice() camera2.TemplateTable {
	return camera2.TemplateTable{camera2.TemplatePreview: previewDefaults()}
}

func newTestTranslator(t *testing.T, opts ...Option) *Translator {
	t.Helper()

	tr, err := New(testDevice(), camera2.TemplatePreview, testActiveArray,
		legacy.Size{Width: 1280, Height: 720}, legacy.Size{Width: 4000, Height: 3000}, opts...)
	require.NoError(t, err)
	return tr
}

// warnCatcher builds a translator option that routes warnings into an
// inspectable buffer.
func warnCatcher() (Option, *observer.ObservedLogs) {
	core, logs := observer.New(zap.WarnLevel)
	return WithLogger(zap.New(core).Sugar()), logs
}

func ExampleTranslator() {
	device := camera2.TemplateTable{camera2.TemplatePreview: previewDefaults()}
	tr, err := New(device, camera2.TemplatePreview, camera2.Rect{Right: 2000, Bottom: 1000},
		legacy.Size{Width: 1280, Height: 720}, legacy.Size{Width: 4000, Height: 3000})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("untouched overrides:", tr.RequestSettings().Len())

	tr.SetFlashMode(legacy.FlashModeTorch)
	tr.SetJPEGQuality(95)

	rs := tr.RequestSettings()
	for _, key := range rs.Keys() {
		value, _ := rs.Get(key)
		fmt.Println(key, "=", value)
	}
	// Output:
	// untouched overrides: 0
	// android.flash.mode = torch
	// android.jpeg.quality = 95
}

func TestNewSeedsFromTemplate(t *testing.T) {
	tr := newTestTranslator(t)

	min, max := tr.PreviewFpsRange()
	assert.Equal(t, 15, min)
	assert.Equal(t, 30, max)

	assert.Equal(t, legacy.Size{Width: 1280, Height: 720}, tr.PreviewSize())
	assert.Equal(t, legacy.Size{Width: 4000, Height: 3000}, tr.PhotoSize())

	assert.Equal(t, 85, tr.JPEGQuality())
	assert.Equal(t, 1.0, tr.ZoomRatio())
	assert.Zero(t, tr.ExposureCompensation())

	assert.Equal(t, legacy.FlashModeAuto, tr.FlashMode())
	assert.Equal(t, legacy.FocusModeContinuousPicture, tr.FocusMode())
	assert.Equal(t, legacy.SceneModeAuto, tr.SceneMode())
	assert.Equal(t, legacy.WhiteBalanceAuto, tr.WhiteBalance())

	assert.False(t, tr.VideoStabilization())
	assert.False(t, tr.AutoExposureLock())
	assert.False(t, tr.AutoWhiteBalanceLock())
	assert.Equal(t, legacy.Size{Width: 320, Height: 240}, tr.ExifThumbnailSize())
}

func TestNewFailsOnUnknownTemplate(t *testing.T) {
	_, err := New(testDevice(), camera2.TemplateRecord, testActiveArray,
		legacy.Size{}, legacy.Size{})
	require.Error(t, err)
	assert.ErrorIs(t, err, camera2.ErrUnknownTemplate)
	assert.Contains(t, err.Error(), "TemplateRecord")
}

func TestNewSynthesizesMissingDefaults(t *testing.T) {
	device := camera2.TemplateTable{camera2.TemplateManual: camera2.NewRequestSet()}
	tr, err := New(device, camera2.TemplateManual, testActiveArray, legacy.Size{}, legacy.Size{})
	require.NoError(t, err)

	min, max := tr.PreviewFpsRange()
	assert.Zero(t, min)
	assert.Zero(t, max)
	assert.Zero(t, tr.JPEGQuality())
	assert.Zero(t, tr.ExposureCompensation())
	assert.Equal(t, legacy.FlashModeUnset, tr.FlashMode())
	assert.Equal(t, legacy.FocusModeUnset, tr.FocusMode())
	assert.Equal(t, legacy.SceneModeUnset, tr.SceneMode())
	assert.Equal(t, legacy.WhiteBalanceUnset, tr.WhiteBalance())
	assert.False(t, tr.VideoStabilization())
	assert.False(t, tr.AutoExposureLock())
	assert.False(t, tr.AutoWhiteBalanceLock())
	assert.Equal(t, legacy.Size{}, tr.ExifThumbnailSize())

	// The made-up defaults and the seeded state must agree, so even a bare
	// template translates to an empty request.
	assert.Zero(t, tr.RequestSettings().Len())
}

func TestNewSeedsTorchFromTemplate(t *testing.T) {
	defaults := camera2.NewRequestSet()
	defaults.Set(camera2.KeyControlAEMode, camera2.AEModeOnAlwaysFlash)
	defaults.Set(camera2.KeyFlashMode, camera2.FlashModeTorch)
	device := camera2.TemplateTable{camera2.TemplateRecord: defaults}

	tr, err := New(device, camera2.TemplateRecord, testActiveArray, legacy.Size{}, legacy.Size{})
	require.NoError(t, err)

	assert.Equal(t, legacy.FlashModeTorch, tr.FlashMode())

	// Round trip: a torch default must not resurface as an override.
	rs := tr.RequestSettings()
	assertAbsent(t, rs, camera2.KeyControlAEMode, camera2.KeyFlashMode)

	// Software video stabilization forces the lens hardware off no matter
	// what the flash state looks like.
	tr.SetVideoStabilization(true)
	rs = tr.RequestSettings()
	assertAbsent(t, rs, camera2.KeyControlAEMode, camera2.KeyFlashMode)
	assert.Equal(t, camera2.OpticalStabilizationOff,
		getValue(t, rs, camera2.KeyLensOpticalStabilizationMode))
}

func TestNewSeedsAlwaysFlashWithoutUnitDefault(t *testing.T) {
	defaults := camera2.NewRequestSet()
	defaults.Set(camera2.KeyControlAEMode, camera2.AEModeOnAlwaysFlash)
	device := camera2.TemplateTable{camera2.TemplateStillCapture: defaults}

	tr, err := New(device, camera2.TemplateStillCapture, testActiveArray, legacy.Size{}, legacy.Size{})
	require.NoError(t, err)

	assert.Equal(t, legacy.FlashModeOn, tr.FlashMode())
}

func TestNewWarnsOnUnmappableTemplateModes(t *testing.T) {
	defaults := camera2.NewRequestSet()
	defaults.Set(camera2.KeyControlSceneMode, camera2.SceneModeFacePriority)
	defaults.Set(camera2.KeyControlAWBMode, camera2.AWBModeOff)
	defaults.Set(camera2.KeyControlAFMode, camera2.AFMode(77))
	device := camera2.TemplateTable{camera2.TemplateManual: defaults}

	catcher, logs := warnCatcher()
	tr, err := New(device, camera2.TemplateManual, testActiveArray, legacy.Size{}, legacy.Size{}, catcher)
	require.NoError(t, err)

	assert.Equal(t, legacy.SceneModeUnset, tr.SceneMode())
	assert.Equal(t, legacy.WhiteBalanceUnset, tr.WhiteBalance())
	assert.Equal(t, legacy.FocusModeUnset, tr.FocusMode())

	assert.Equal(t, 1, logs.FilterMessageSnippet("scene mode").Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("white balance").Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("focus mode").Len())
}

func TestCopyIsIndependent(t *testing.T) {
	tr := newTestTranslator(t)
	tr.SetMeteringAreas([]legacy.Area{
		{Rect: legacy.Rect{Left: -100, Top: -100, Right: 100, Bottom: 100}, Weight: 20},
	})

	cp := tr.Copy()
	cp.SetJPEGQuality(95)
	cp.SetMeteringAreas(nil)

	assert.Equal(t, 85, tr.JPEGQuality())
	assert.Len(t, tr.MeteringAreas(), 1)

	assert.Equal(t, 1, tr.RequestSettings().Len(), "original still overrides only its regions")
	assert.Equal(t, 95, cp.JPEGQuality())

	rs := cp.RequestSettings()
	_, ok := rs.Get(camera2.KeyControlAERegions)
	assert.False(t, ok)
	v, ok := rs.Get(camera2.KeyJPEGQuality)
	require.True(t, ok)
	assert.Equal(t, uint8(95), v)
}
