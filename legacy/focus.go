package legacy

//go:generate go tool stringer -type=FocusMode -output=focus_string.go

// FocusMode is the legacy autofocus vocabulary.
type FocusMode int

const (
	FocusModeUnset FocusMode = iota // zero value, the caller expressed no preference

	FocusModeAuto
	FocusModeContinuousPicture
	FocusModeContinuousVideo
	FocusModeExtendedDOF
	FocusModeFixed
	FocusModeInfinity // no framework equivalent, the template default stays in charge
	FocusModeMacro
)

var focusModeNames = map[string]FocusMode{
	"auto":               FocusModeAuto,
	"continuous-picture": FocusModeContinuousPicture,
	"continuous-video":   FocusModeContinuousVideo,
	"edof":               FocusModeExtendedDOF,
	"fixed":              FocusModeFixed,
	"infinity":           FocusModeInfinity,
	"macro":              FocusModeMacro,
}

// ParseFocusMode resolves a legacy API parameter value such as
// "continuous-picture" or "edof".
func ParseFocusMode(s string) (FocusMode, bool) {
	mode, ok := focusModeNames[s]
	return mode, ok
}
