package camera2

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Template -output=template_string.go

// Template selects the framework's per-use-case bundle of default request
// settings. Numbering follows the framework's wire values.
type Template int32

const (
	TemplatePreview Template = iota + 1
	TemplateStillCapture
	TemplateRecord
	TemplateVideoSnapshot
	TemplateZeroShutterLag
	TemplateManual
)

var ErrUnknownTemplate = errors.New("device has no defaults for the requested template")

// Device is the slice of the camera framework this module needs: the default
// request settings a device would apply for each template. Implementations
// must hand out values typed per the Key documentation.
type Device interface {
	// TemplateDefaults returns the device's default request settings for
	// the template. The returned set is owned by the caller.
	TemplateDefaults(template Template) (*RequestSet, error)
}

// TemplateTable is a Device backed by a static table, standing in for a live
// framework connection in tests and tooling. Lookups hand out clones so the
// table's own entries stay pristine.
type TemplateTable map[Template]*RequestSet

// TemplateDefaults implements Device.
func (t TemplateTable) TemplateDefaults(template Template) (*RequestSet, error) {
	defaults, ok := t[template]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTemplate, template)
	}

	return defaults.Clone(), nil
}
