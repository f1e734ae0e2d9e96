package legacy

import (
	"camera2-shim/internal/common"
	"camera2-shim/logx"
)

// Size is a width and height pair in pixels. The zero value means "unset".
type Size struct {
	Width, Height int
}

// Settings is the mutable legacy-model camera state: the flat, coarse
// vocabulary older client code programs against. It performs no validation
// and no translation, it only remembers what the caller last asked for.
type Settings struct {
	previewFpsMin int
	previewFpsMax int
	previewSize   Size
	photoSize     Size

	jpegQuality  int
	zoomRatio    float64
	exposureComp int

	flashMode    FlashMode
	focusMode    FocusMode
	sceneMode    SceneMode
	whiteBalance WhiteBalance

	videoStabilization   bool
	autoExposureLock     bool
	autoWhiteBalanceLock bool

	exifThumbnailSize Size

	meteringAreas []Area
	focusAreas    []Area
}

// PreviewFpsRange returns the requested preview frame rate boundaries.
func (s *Settings) PreviewFpsRange() (min, max int) {
	return s.previewFpsMin, s.previewFpsMax
}

func (s *Settings) SetPreviewFpsRange(min, max int) {
	if min > max {
		logx.S().Warnf("invalid preview fps range: [%d, %d]", min, max)
	}
	s.previewFpsMin = min
	s.previewFpsMax = max
}

func (s *Settings) PreviewSize() Size {
	return s.previewSize
}

func (s *Settings) SetPreviewSize(size Size) {
	s.previewSize = size
}

func (s *Settings) PhotoSize() Size {
	return s.photoSize
}

func (s *Settings) SetPhotoSize(size Size) {
	s.photoSize = size
}

func (s *Settings) JPEGQuality() int {
	return s.jpegQuality
}

func (s *Settings) SetJPEGQuality(quality int) {
	s.jpegQuality = quality
}

func (s *Settings) ZoomRatio() float64 {
	return s.zoomRatio
}

func (s *Settings) SetZoomRatio(ratio float64) {
	s.zoomRatio = ratio
}

// ExposureCompensation returns the exposure compensation index in the
// device's own step units.
func (s *Settings) ExposureCompensation() int {
	return s.exposureComp
}

func (s *Settings) SetExposureCompensation(index int) {
	s.exposureComp = index
}

func (s *Settings) FlashMode() FlashMode {
	return s.flashMode
}

func (s *Settings) SetFlashMode(mode FlashMode) {
	s.flashMode = mode
}

func (s *Settings) FocusMode() FocusMode {
	return s.focusMode
}

func (s *Settings) SetFocusMode(mode FocusMode) {
	s.focusMode = mode
}

func (s *Settings) SceneMode() SceneMode {
	return s.sceneMode
}

func (s *Settings) SetSceneMode(mode SceneMode) {
	s.sceneMode = mode
}

func (s *Settings) WhiteBalance() WhiteBalance {
	return s.whiteBalance
}

func (s *Settings) SetWhiteBalance(wb WhiteBalance) {
	s.whiteBalance = wb
}

func (s *Settings) VideoStabilization() bool {
	return s.videoStabilization
}

func (s *Settings) SetVideoStabilization(enabled bool) {
	s.videoStabilization = enabled
}

func (s *Settings) AutoExposureLock() bool {
	return s.autoExposureLock
}

func (s *Settings) SetAutoExposureLock(locked bool) {
	s.autoExposureLock = locked
}

func (s *Settings) AutoWhiteBalanceLock() bool {
	return s.autoWhiteBalanceLock
}

func (s *Settings) SetAutoWhiteBalanceLock(locked bool) {
	s.autoWhiteBalanceLock = locked
}

// ExifThumbnailSize returns the requested JPEG thumbnail dimensions. (0, 0)
// doubles as both the unset state and the legacy no-thumbnail request.
func (s *Settings) ExifThumbnailSize() Size {
	return s.exifThumbnailSize
}

func (s *Settings) SetExifThumbnailSize(size Size) {
	s.exifThumbnailSize = size
}

// MeteringAreas returns a copy of the auto-exposure metering regions.
func (s *Settings) MeteringAreas() []Area {
	return common.CopyOf(s.meteringAreas)
}

// SetMeteringAreas replaces the auto-exposure metering regions. The slice
// contents are copied, the caller keeps ownership of its own slice.
func (s *Settings) SetMeteringAreas(areas []Area) {
	s.meteringAreas = common.CopyOf(areas)
}

// FocusAreas returns a copy of the autofocus regions.
func (s *Settings) FocusAreas() []Area {
	return common.CopyOf(s.focusAreas)
}

// SetFocusAreas replaces the autofocus regions. The slice contents are
// copied, the caller keeps ownership of its own slice.
func (s *Settings) SetFocusAreas(areas []Area) {
	s.focusAreas = common.CopyOf(areas)
}

// Copy returns an independent snapshot. Mutating either settings object
// afterwards, region lists included, leaves the other untouched.
func (s *Settings) Copy() Settings {
	out := *s
	out.meteringAreas = common.CopyOf(s.meteringAreas)
	out.focusAreas = common.CopyOf(s.focusAreas)
	return out
}
