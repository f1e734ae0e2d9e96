package camera2

// Enumerated option values, numbered exactly as the framework numbers them
// on the wire. String forms are the framework's spellings, not Go names,
// so dumps read like framework traces.

// AEMode selects the auto-exposure behavior, flash firing included.
type AEMode int32

const (
	AEModeOff AEMode = iota
	AEModeOn
	AEModeOnAutoFlash
	AEModeOnAlwaysFlash
	AEModeOnAutoFlashRedeye
)

func (m AEMode) String() string {
	switch m {
	case AEModeOff:
		return "off"
	case AEModeOn:
		return "on"
	case AEModeOnAutoFlash:
		return "on_auto_flash"
	case AEModeOnAlwaysFlash:
		return "on_always_flash"
	case AEModeOnAutoFlashRedeye:
		return "on_auto_flash_redeye"
	default:
		return "unknown"
	}
}

// FlashMode drives the flash unit itself, independent of auto-exposure.
type FlashMode int32

const (
	FlashModeOff FlashMode = iota
	FlashModeSingle
	FlashModeTorch
)

func (m FlashMode) String() string {
	switch m {
	case FlashModeOff:
		return "off"
	case FlashModeSingle:
		return "single"
	case FlashModeTorch:
		return "torch"
	default:
		return "unknown"
	}
}

// AFMode selects the autofocus behavior.
type AFMode int32

const (
	AFModeOff AFMode = iota
	AFModeAuto
	AFModeMacro
	AFModeContinuousVideo
	AFModeContinuousPicture
	AFModeEDOF
)

func (m AFMode) String() string {
	switch m {
	case AFModeOff:
		return "off"
	case AFModeAuto:
		return "auto"
	case AFModeMacro:
		return "macro"
	case AFModeContinuousVideo:
		return "continuous_video"
	case AFModeContinuousPicture:
		return "continuous_picture"
	case AFModeEDOF:
		return "edof"
	default:
		return "unknown"
	}
}

// SceneMode selects a device-tuned preset that overrides several of the
// individual controls at once.
type SceneMode int32

const (
	SceneModeDisabled SceneMode = iota
	SceneModeFacePriority
	SceneModeAction
	SceneModePortrait
	SceneModeLandscape
	SceneModeNight
	SceneModeNightPortrait
	SceneModeTheatre
	SceneModeBeach
	SceneModeSnow
	SceneModeSunset
	SceneModeSteadyPhoto
	SceneModeFireworks
	SceneModeSports
	SceneModeParty
	SceneModeCandlelight
	SceneModeBarcode
)

func (m SceneMode) String() string {
	switch m {
	case SceneModeDisabled:
		return "disabled"
	case SceneModeFacePriority:
		return "face_priority"
	case SceneModeAction:
		return "action"
	case SceneModePortrait:
		return "portrait"
	case SceneModeLandscape:
		return "landscape"
	case SceneModeNight:
		return "night"
	case SceneModeNightPortrait:
		return "night_portrait"
	case SceneModeTheatre:
		return "theatre"
	case SceneModeBeach:
		return "beach"
	case SceneModeSnow:
		return "snow"
	case SceneModeSunset:
		return "sunset"
	case SceneModeSteadyPhoto:
		return "steadyphoto"
	case SceneModeFireworks:
		return "fireworks"
	case SceneModeSports:
		return "sports"
	case SceneModeParty:
		return "party"
	case SceneModeCandlelight:
		return "candlelight"
	case SceneModeBarcode:
		return "barcode"
	default:
		return "unknown"
	}
}

// AWBMode selects the auto white balance behavior or a fixed illuminant.
type AWBMode int32

const (
	AWBModeOff AWBMode = iota
	AWBModeAuto
	AWBModeIncandescent
	AWBModeFluorescent
	AWBModeWarmFluorescent
	AWBModeDaylight
	AWBModeCloudyDaylight
	AWBModeTwilight
	AWBModeShade
)

func (m AWBMode) String() string {
	switch m {
	case AWBModeOff:
		return "off"
	case AWBModeAuto:
		return "auto"
	case AWBModeIncandescent:
		return "incandescent"
	case AWBModeFluorescent:
		return "fluorescent"
	case AWBModeWarmFluorescent:
		return "warm_fluorescent"
	case AWBModeDaylight:
		return "daylight"
	case AWBModeCloudyDaylight:
		return "cloudy_daylight"
	case AWBModeTwilight:
		return "twilight"
	case AWBModeShade:
		return "shade"
	default:
		return "unknown"
	}
}

// VideoStabilization toggles software video stabilization.
type VideoStabilization int32

const (
	VideoStabilizationOff VideoStabilization = iota
	VideoStabilizationOn
)

func (m VideoStabilization) String() string {
	switch m {
	case VideoStabilizationOff:
		return "off"
	case VideoStabilizationOn:
		return "on"
	default:
		return "unknown"
	}
}

// OpticalStabilization toggles the lens stabilization hardware.
type OpticalStabilization int32

const (
	OpticalStabilizationOff OpticalStabilization = iota
	OpticalStabilizationOn
)

func (m OpticalStabilization) String() string {
	switch m {
	case OpticalStabilizationOff:
		return "off"
	case OpticalStabilizationOn:
		return "on"
	default:
		return "unknown"
	}
}
