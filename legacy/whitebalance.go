package legacy

//go:generate go tool stringer -type=WhiteBalance -output=whitebalance_string.go

// WhiteBalance is the legacy white balance vocabulary.
type WhiteBalance int

const (
	WhiteBalanceUnset WhiteBalance = iota // zero value, the caller expressed no preference

	WhiteBalanceAuto
	WhiteBalanceCloudyDaylight
	WhiteBalanceDaylight
	WhiteBalanceFluorescent
	WhiteBalanceIncandescent
	WhiteBalanceShade
	WhiteBalanceTwilight
	WhiteBalanceWarmFluorescent
)

var whiteBalanceNames = map[string]WhiteBalance{
	"auto":             WhiteBalanceAuto,
	"cloudy-daylight":  WhiteBalanceCloudyDaylight,
	"daylight":         WhiteBalanceDaylight,
	"fluorescent":      WhiteBalanceFluorescent,
	"incandescent":     WhiteBalanceIncandescent,
	"shade":            WhiteBalanceShade,
	"twilight":         WhiteBalanceTwilight,
	"warm-fluorescent": WhiteBalanceWarmFluorescent,
}

// ParseWhiteBalance resolves a legacy API parameter value such as
// "cloudy-daylight" or "incandescent".
func ParseWhiteBalance(s string) (WhiteBalance, bool) {
	mode, ok := whiteBalanceNames[s]
	return mode, ok
}
