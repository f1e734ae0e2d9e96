package legacy

//go:generate go tool stringer -type=SceneMode -output=scene_string.go

// SceneMode is the legacy scene preset vocabulary. Selecting a preset hands
// several exposure decisions to the device at once.
type SceneMode int

const (
	SceneModeUnset SceneMode = iota // zero value, the caller expressed no preference

	SceneModeAuto
	SceneModeAction
	SceneModeBarcode
	SceneModeBeach
	SceneModeCandlelight
	SceneModeFireworks
	SceneModeHDR // no framework equivalent, the template default stays in charge
	SceneModeLandscape
	SceneModeNight
	SceneModeNightPortrait // no framework equivalent, the template default stays in charge
	SceneModeParty
	SceneModePortrait
	SceneModeSnow
	SceneModeSports
	SceneModeSteadyPhoto
	SceneModeSunset
	SceneModeTheatre
)

var sceneModeNames = map[string]SceneMode{
	"auto":           SceneModeAuto,
	"action":         SceneModeAction,
	"barcode":        SceneModeBarcode,
	"beach":          SceneModeBeach,
	"candlelight":    SceneModeCandlelight,
	"fireworks":      SceneModeFireworks,
	"hdr":            SceneModeHDR,
	"landscape":      SceneModeLandscape,
	"night":          SceneModeNight,
	"night-portrait": SceneModeNightPortrait,
	"party":          SceneModeParty,
	"portrait":       SceneModePortrait,
	"snow":           SceneModeSnow,
	"sports":         SceneModeSports,
	"steadyphoto":    SceneModeSteadyPhoto,
	"sunset":         SceneModeSunset,
	"theatre":        SceneModeTheatre,
}

// ParseSceneMode resolves a legacy API parameter value such as "fireworks"
// or "night-portrait".
func ParseSceneMode(s string) (SceneMode, bool) {
	mode, ok := sceneModeNames[s]
	return mode, ok
}
