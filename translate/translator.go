package translate

import (
	"fmt"

	"go.uber.org/zap"

	"camera2-shim/camera2"
	"camera2-shim/legacy"
	"camera2-shim/logx"
)

// Translator adapts the legacy settings vocabulary to a framework device.
// It embeds legacy.Settings, so callers program it exactly like the old
// settings object, and renders the state on demand with RequestSettings.
//
// A Translator is seeded at construction so that its legacy state answers
// the same way the chosen template would: translating an untouched
// Translator yields an empty request set.
type Translator struct {
	legacy.Settings

	defaults    *templateDefaults
	activeArray camera2.Rect
	log         *zap.SugaredLogger
}

// Option customizes a Translator at construction time.
type Option func(*Translator)

// WithLogger routes the translator's warnings to the given logger instead of
// the module-wide one.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(t *Translator) { t.log = log }
}

// New builds a Translator for one device use case. The template's defaults
// are snapshotted once: later template changes on the device are not seen.
// The active array rectangle anchors metering region remapping; preview and
// photo sizes seed the corresponding legacy state.
func New(device camera2.Device, template camera2.Template, activeArray camera2.Rect,
	preview, photo legacy.Size, opts ...Option) (*Translator, error) {
	snapshot, err := device.TemplateDefaults(template)
	if err != nil {
		return nil, fmt.Errorf("snapshot %v defaults: %w", template, err)
	}

	t := &Translator{
		defaults:    newTemplateDefaults(snapshot),
		activeArray: activeArray,
		log:         logx.S(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.seed(preview, photo)
	return t, nil
}

// seed initializes the embedded legacy state to mirror the template, making
// up defaults for options the template left unpopulated. Every made-up value
// is remembered so later default checks agree with what was seeded here.
func (t *Translator) seed(preview, photo legacy.Size) {
	if fps, ok := queryDefault[camera2.Range](t.defaults, camera2.KeyControlAETargetFPSRange); ok {
		t.SetPreviewFpsRange(int(fps.Lower), int(fps.Upper))
	}
	t.SetPreviewSize(preview)
	t.SetPhotoSize(photo)

	t.SetJPEGQuality(int(queryDefaultOrSynthesize(t.defaults, camera2.KeyJPEGQuality, uint8(0))))
	t.SetZoomRatio(1.0)
	t.SetExposureCompensation(int(queryDefaultOrSynthesize(t.defaults, camera2.KeyControlAEExposureCompensation, int32(0))))

	t.SetFlashMode(t.flashModeFromTemplate())
	if af, ok := queryDefault[camera2.AFMode](t.defaults, camera2.KeyControlAFMode); ok {
		if mode, ok := focusModeFromNative(af); ok {
			t.SetFocusMode(mode)
		} else {
			t.log.Warnf("template focus mode %v has no legacy equivalent", af)
		}
	}
	if scene, ok := queryDefault[camera2.SceneMode](t.defaults, camera2.KeyControlSceneMode); ok {
		if mode, ok := sceneModeFromNative(scene); ok {
			t.SetSceneMode(mode)
		} else {
			t.log.Warnf("template scene mode %v has no legacy equivalent", scene)
		}
	}
	if awb, ok := queryDefault[camera2.AWBMode](t.defaults, camera2.KeyControlAWBMode); ok {
		if wb, ok := whiteBalanceFromNative(awb); ok {
			t.SetWhiteBalance(wb)
		} else {
			t.log.Warnf("template white balance %v has no legacy equivalent", awb)
		}
	}

	stab := queryDefaultOrSynthesize(t.defaults, camera2.KeyControlVideoStabilizationMode, camera2.VideoStabilizationOff)
	t.SetVideoStabilization(stab == camera2.VideoStabilizationOn)

	t.SetAutoExposureLock(queryDefaultOrSynthesize(t.defaults, camera2.KeyControlAELock, false))
	t.SetAutoWhiteBalanceLock(queryDefaultOrSynthesize(t.defaults, camera2.KeyControlAWBLock, false))

	if size, ok := queryDefault[camera2.Size](t.defaults, camera2.KeyJPEGThumbnailSize); ok {
		t.SetExifThumbnailSize(legacy.Size{Width: int(size.Width), Height: int(size.Height)})
	}
}

// flashModeFromTemplate recovers the legacy flash mode the template's
// auto-exposure and flash defaults add up to.
func (t *Translator) flashModeFromTemplate() legacy.FlashMode {
	ae, ok := queryDefault[camera2.AEMode](t.defaults, camera2.KeyControlAEMode)
	if !ok {
		return legacy.FlashModeUnset
	}

	switch ae {
	case camera2.AEModeOn:
		return legacy.FlashModeOff
	case camera2.AEModeOnAutoFlash:
		return legacy.FlashModeAuto
	case camera2.AEModeOnAlwaysFlash:
		if unit, ok := queryDefault[camera2.FlashMode](t.defaults, camera2.KeyFlashMode); ok && unit == camera2.FlashModeTorch {
			return legacy.FlashModeTorch
		}
		return legacy.FlashModeOn
	case camera2.AEModeOnAutoFlashRedeye:
		return legacy.FlashModeRedEye
	}
	return legacy.FlashModeUnset
}

// Copy returns an independent Translator bound to the same template
// snapshot: the legacy state is deep-copied, the immutable defaults are
// shared.
func (t *Translator) Copy() *Translator {
	return &Translator{
		Settings:    t.Settings.Copy(),
		defaults:    t.defaults,
		activeArray: t.activeArray,
		log:         t.log,
	}
}
