package translate

import (
	"camera2-shim/camera2"
	"camera2-shim/legacy"
)

// The fixed correspondences between the legacy mode vocabularies and the
// framework's request option values. Forward mappings return nil for "no
// override, the template default stands" and ok=false when the framework
// simply cannot express the legacy mode.

func ptr[T any](v T) *T {
	return &v
}

// flashModeToNative expands a legacy flash mode into the auto-exposure mode
// and flash-unit mode the framework splits it across.
func flashModeToNative(mode legacy.FlashMode) (ae *camera2.AEMode, unit *camera2.FlashMode, ok bool) {
	switch mode {
	case legacy.FlashModeUnset:
		return nil, nil, true
	case legacy.FlashModeAuto:
		return ptr(camera2.AEModeOnAutoFlash), nil, true
	case legacy.FlashModeOff:
		return ptr(camera2.AEModeOn), ptr(camera2.FlashModeOff), true
	case legacy.FlashModeOn:
		return ptr(camera2.AEModeOnAlwaysFlash), ptr(camera2.FlashModeSingle), true
	case legacy.FlashModeTorch:
		return nil, ptr(camera2.FlashModeTorch), true
	case legacy.FlashModeRedEye:
		return ptr(camera2.AEModeOnAutoFlashRedeye), nil, true
	}
	return nil, nil, false
}

func focusModeToNative(mode legacy.FocusMode) (*camera2.AFMode, bool) {
	switch mode {
	case legacy.FocusModeUnset:
		return nil, true
	case legacy.FocusModeAuto:
		return ptr(camera2.AFModeAuto), true
	case legacy.FocusModeContinuousPicture:
		return ptr(camera2.AFModeContinuousPicture), true
	case legacy.FocusModeContinuousVideo:
		return ptr(camera2.AFModeContinuousVideo), true
	case legacy.FocusModeExtendedDOF:
		return ptr(camera2.AFModeEDOF), true
	case legacy.FocusModeFixed:
		return ptr(camera2.AFModeOff), true
	case legacy.FocusModeMacro:
		return ptr(camera2.AFModeMacro), true
	}
	// FocusModeInfinity lands here: the framework has no infinity focus.
	return nil, false
}

func focusModeFromNative(mode camera2.AFMode) (legacy.FocusMode, bool) {
	switch mode {
	case camera2.AFModeAuto:
		return legacy.FocusModeAuto, true
	case camera2.AFModeContinuousPicture:
		return legacy.FocusModeContinuousPicture, true
	case camera2.AFModeContinuousVideo:
		return legacy.FocusModeContinuousVideo, true
	case camera2.AFModeEDOF:
		return legacy.FocusModeExtendedDOF, true
	case camera2.AFModeOff:
		return legacy.FocusModeFixed, true
	case camera2.AFModeMacro:
		return legacy.FocusModeMacro, true
	}
	return legacy.FocusModeUnset, false
}

func sceneModeToNative(mode legacy.SceneMode) (*camera2.SceneMode, bool) {
	switch mode {
	case legacy.SceneModeUnset:
		return nil, true
	case legacy.SceneModeAuto:
		return ptr(camera2.SceneModeDisabled), true
	case legacy.SceneModeAction:
		return ptr(camera2.SceneModeAction), true
	case legacy.SceneModeBarcode:
		return ptr(camera2.SceneModeBarcode), true
	case legacy.SceneModeBeach:
		return ptr(camera2.SceneModeBeach), true
	case legacy.SceneModeCandlelight:
		return ptr(camera2.SceneModeCandlelight), true
	case legacy.SceneModeFireworks:
		return ptr(camera2.SceneModeFireworks), true
	case legacy.SceneModeLandscape:
		return ptr(camera2.SceneModeLandscape), true
	case legacy.SceneModeNight:
		return ptr(camera2.SceneModeNight), true
	case legacy.SceneModeParty:
		return ptr(camera2.SceneModeParty), true
	case legacy.SceneModePortrait:
		return ptr(camera2.SceneModePortrait), true
	case legacy.SceneModeSnow:
		return ptr(camera2.SceneModeSnow), true
	case legacy.SceneModeSports:
		return ptr(camera2.SceneModeSports), true
	case legacy.SceneModeSteadyPhoto:
		return ptr(camera2.SceneModeSteadyPhoto), true
	case legacy.SceneModeSunset:
		return ptr(camera2.SceneModeSunset), true
	case legacy.SceneModeTheatre:
		return ptr(camera2.SceneModeTheatre), true
	}
	// SceneModeHDR and SceneModeNightPortrait land here: the framework's
	// request vocabulary cannot express them.
	return nil, false
}

func sceneModeFromNative(mode camera2.SceneMode) (legacy.SceneMode, bool) {
	switch mode {
	case camera2.SceneModeDisabled:
		return legacy.SceneModeAuto, true
	case camera2.SceneModeAction:
		return legacy.SceneModeAction, true
	case camera2.SceneModeBarcode:
		return legacy.SceneModeBarcode, true
	case camera2.SceneModeBeach:
		return legacy.SceneModeBeach, true
	case camera2.SceneModeCandlelight:
		return legacy.SceneModeCandlelight, true
	case camera2.SceneModeFireworks:
		return legacy.SceneModeFireworks, true
	case camera2.SceneModeLandscape:
		return legacy.SceneModeLandscape, true
	case camera2.SceneModeNight:
		return legacy.SceneModeNight, true
	case camera2.SceneModeParty:
		return legacy.SceneModeParty, true
	case camera2.SceneModePortrait:
		return legacy.SceneModePortrait, true
	case camera2.SceneModeSnow:
		return legacy.SceneModeSnow, true
	case camera2.SceneModeSports:
		return legacy.SceneModeSports, true
	case camera2.SceneModeSteadyPhoto:
		return legacy.SceneModeSteadyPhoto, true
	case camera2.SceneModeSunset:
		return legacy.SceneModeSunset, true
	case camera2.SceneModeTheatre:
		return legacy.SceneModeTheatre, true
	}
	return legacy.SceneModeUnset, false
}

func whiteBalanceToNative(wb legacy.WhiteBalance) (*camera2.AWBMode, bool) {
	switch wb {
	case legacy.WhiteBalanceUnset:
		return nil, true
	case legacy.WhiteBalanceAuto:
		return ptr(camera2.AWBModeAuto), true
	case legacy.WhiteBalanceCloudyDaylight:
		return ptr(camera2.AWBModeCloudyDaylight), true
	case legacy.WhiteBalanceDaylight:
		return ptr(camera2.AWBModeDaylight), true
	case legacy.WhiteBalanceFluorescent:
		return ptr(camera2.AWBModeFluorescent), true
	case legacy.WhiteBalanceIncandescent:
		return ptr(camera2.AWBModeIncandescent), true
	case legacy.WhiteBalanceShade:
		return ptr(camera2.AWBModeShade), true
	case legacy.WhiteBalanceTwilight:
		return ptr(camera2.AWBModeTwilight), true
	case legacy.WhiteBalanceWarmFluorescent:
		return ptr(camera2.AWBModeWarmFluorescent), true
	}
	return nil, false
}

func whiteBalanceFromNative(mode camera2.AWBMode) (legacy.WhiteBalance, bool) {
	switch mode {
	case camera2.AWBModeAuto:
		return legacy.WhiteBalanceAuto, true
	case camera2.AWBModeCloudyDaylight:
		return legacy.WhiteBalanceCloudyDaylight, true
	case camera2.AWBModeDaylight:
		return legacy.WhiteBalanceDaylight, true
	case camera2.AWBModeFluorescent:
		return legacy.WhiteBalanceFluorescent, true
	case camera2.AWBModeIncandescent:
		return legacy.WhiteBalanceIncandescent, true
	case camera2.AWBModeShade:
		return legacy.WhiteBalanceShade, true
	case camera2.AWBModeTwilight:
		return legacy.WhiteBalanceTwilight, true
	case camera2.AWBModeWarmFluorescent:
		return legacy.WhiteBalanceWarmFluorescent, true
	}
	return legacy.WhiteBalanceUnset, false
}
