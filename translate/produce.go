package translate

import "camera2-shim/camera2"

// RequestSettings renders the current legacy state as a sparse native
// request description. Options whose computed value matches the template
// default are left out entirely so the framework's own default stays
// authoritative. The collection is rebuilt from scratch on every call and
// owned by the caller.
func (t *Translator) RequestSettings() *camera2.RequestSet {
	rs := camera2.NewRequestSet()

	t.applyOrDefault(rs, camera2.KeyControlAERegions, remapAreas(t.MeteringAreas(), t.activeArray))
	t.applyOrDefault(rs, camera2.KeyControlAFRegions, remapAreas(t.FocusAreas(), t.activeArray))

	fpsMin, fpsMax := t.PreviewFpsRange()
	t.applyOrDefault(rs, camera2.KeyControlAETargetFPSRange,
		camera2.Range{Lower: int32(fpsMin), Upper: int32(fpsMax)})

	t.applyOrDefault(rs, camera2.KeyJPEGQuality, uint8(t.JPEGQuality()))
	t.applyOrDefault(rs, camera2.KeyControlAEExposureCompensation, int32(t.ExposureCompensation()))

	t.applyFlashMode(rs)
	t.applyFocusMode(rs)
	t.applySceneMode(rs)
	t.applyWhiteBalance(rs)
	t.applyStabilization(rs)

	t.applyOrDefault(rs, camera2.KeyControlAELock, t.AutoExposureLock())
	t.applyOrDefault(rs, camera2.KeyControlAWBLock, t.AutoWhiteBalanceLock())

	thumb := t.ExifThumbnailSize()
	t.applyOrDefault(rs, camera2.KeyJPEGThumbnailSize,
		camera2.Size{Width: int32(thumb.Width), Height: int32(thumb.Height)})

	return rs
}

// applyOrDefault stores the computed value for key unless it matches the
// template default, in which case the option is cleared so the framework
// default applies.
func (t *Translator) applyOrDefault(rs *camera2.RequestSet, key camera2.Key, computed any) {
	if t.matchesDefault(key, computed) {
		rs.Set(key, nil)
		return
	}
	rs.Set(key, computed)
}

func (t *Translator) applyFlashMode(rs *camera2.RequestSet) {
	ae, unit, ok := flashModeToNative(t.FlashMode())
	if !ok {
		t.log.Warnf("unable to convert flash mode %v to a framework mode", t.FlashMode())
	}

	t.applyOrDefault(rs, camera2.KeyControlAEMode, deref(ae))
	t.applyOrDefault(rs, camera2.KeyFlashMode, deref(unit))
}

func (t *Translator) applyFocusMode(rs *camera2.RequestSet) {
	mode, ok := focusModeToNative(t.FocusMode())
	if !ok {
		t.log.Warnf("unable to convert focus mode %v to a framework mode", t.FocusMode())
	}

	t.applyOrDefault(rs, camera2.KeyControlAFMode, deref(mode))
}

func (t *Translator) applySceneMode(rs *camera2.RequestSet) {
	mode, ok := sceneModeToNative(t.SceneMode())
	if !ok {
		t.log.Warnf("unable to convert scene mode %v to a framework mode", t.SceneMode())
	}

	t.applyOrDefault(rs, camera2.KeyControlSceneMode, deref(mode))
}

func (t *Translator) applyWhiteBalance(rs *camera2.RequestSet) {
	mode, ok := whiteBalanceToNative(t.WhiteBalance())
	if !ok {
		t.log.Warnf("unable to convert white balance %v to a framework mode", t.WhiteBalance())
	}

	t.applyOrDefault(rs, camera2.KeyControlAWBMode, deref(mode))
}

// applyStabilization writes the video stabilization choice through the usual
// suppression, but drives the lens stabilization option unconditionally:
// optical stabilization must not run at the same time as software video
// stabilization, whatever the template thinks.
func (t *Translator) applyStabilization(rs *camera2.RequestSet) {
	stabilization := camera2.VideoStabilizationOff
	if t.VideoStabilization() {
		stabilization = camera2.VideoStabilizationOn
	}
	t.applyOrDefault(rs, camera2.KeyControlVideoStabilizationMode, stabilization)

	if t.VideoStabilization() {
		rs.Set(camera2.KeyLensOpticalStabilizationMode, camera2.OpticalStabilizationOff)
	} else {
		rs.Set(camera2.KeyLensOpticalStabilizationMode, nil)
	}
}

// deref unwraps an optional mapping result for storage, where nil means "no
// override".
func deref[T any](v *T) any {
	if v == nil {
		return nil
	}

	return *v
}
