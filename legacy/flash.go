package legacy

//go:generate go tool stringer -type=FlashMode -output=flash_string.go

// FlashMode is the legacy flash vocabulary. It folds the flash unit and the
// auto-exposure behavior into a single knob; the framework splits them back
// apart into two separate request options.
type FlashMode int

const (
	FlashModeUnset FlashMode = iota // zero value, the caller expressed no preference

	FlashModeAuto
	FlashModeOff
	FlashModeOn
	FlashModeTorch
	FlashModeRedEye
	FlashModeNoFlash // reported by devices without a flash unit, never requestable
)

var flashModeNames = map[string]FlashMode{
	"auto":    FlashModeAuto,
	"off":     FlashModeOff,
	"on":      FlashModeOn,
	"torch":   FlashModeTorch,
	"red-eye": FlashModeRedEye,
}

// ParseFlashMode resolves a legacy API parameter value such as "torch" or
// "red-eye". FlashModeNoFlash has no parameter spelling and does not parse.
func ParseFlashMode(s string) (FlashMode, bool) {
	mode, ok := flashModeNames[s]
	return mode, ok
}
