// Package camera2 models the framework-native side of the translation: the
// request option vocabulary this module understands, the sparse per-request
// option collection, and the per-template default settings a device hands
// out.
package camera2

// Key identifies one option in a capture request. The spelling and the value
// domain of every key are the framework's own and form a fixed external
// contract: a Key is never renamed or reused.
type Key string

// Request option keys understood by this module. The comment on each key
// names the Go type stored against it in a RequestSet.
const (
	KeyControlAEExposureCompensation Key = "android.control.aeExposureCompensation" // int32
	KeyControlAELock                 Key = "android.control.aeLock"                 // bool
	KeyControlAEMode                 Key = "android.control.aeMode"                 // AEMode
	KeyControlAERegions              Key = "android.control.aeRegions"              // []MeteringRect
	KeyControlAETargetFPSRange       Key = "android.control.aeTargetFpsRange"       // Range
	KeyControlAFMode                 Key = "android.control.afMode"                 // AFMode
	KeyControlAFRegions              Key = "android.control.afRegions"              // []MeteringRect
	KeyControlAWBLock                Key = "android.control.awbLock"                // bool
	KeyControlAWBMode                Key = "android.control.awbMode"                // AWBMode
	KeyControlSceneMode              Key = "android.control.sceneMode"              // SceneMode
	KeyControlVideoStabilizationMode Key = "android.control.videoStabilizationMode" // VideoStabilization
	KeyFlashMode                     Key = "android.flash.mode"                     // FlashMode
	KeyJPEGQuality                   Key = "android.jpeg.quality"                   // uint8
	KeyJPEGThumbnailSize             Key = "android.jpeg.thumbnailSize"             // Size
	KeyLensOpticalStabilizationMode  Key = "android.lens.opticalStabilizationMode"  // OpticalStabilization
)
