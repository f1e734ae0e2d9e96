package translate

import (
	"camera2-shim/camera2"
	"camera2-shim/internal/common"
)

// templateDefaults answers "what would the framework do on its own" for each
// request option: the template snapshot first, backed by the defaults this
// module had to make up for options the template left unpopulated. Made-up
// values are remembered so an absent option keeps answering consistently for
// the life of the translator.
type templateDefaults struct {
	template *camera2.RequestSet
	madeUp   map[camera2.Key]any
}

func newTemplateDefaults(snapshot *camera2.RequestSet) *templateDefaults {
	return &templateDefaults{
		template: snapshot,
		madeUp:   make(map[camera2.Key]any),
	}
}

func (d *templateDefaults) lookup(key camera2.Key) (any, bool) {
	if v, ok := d.madeUp[key]; ok {
		return v, true
	}

	return d.template.Get(key)
}

// queryDefault returns the effective default for key when present and of the
// expected type.
func queryDefault[T any](d *templateDefaults, key camera2.Key) (T, bool) {
	if v, ok := d.lookup(key); ok {
		if typed, ok := v.(T); ok {
			return typed, true
		}
	}

	var zero T
	return zero, false
}

// queryDefaultOrSynthesize returns the effective default for key, making up
// fallback as the permanent default when the template carries none.
func queryDefaultOrSynthesize[T any](d *templateDefaults, key camera2.Key, fallback T) T {
	if v, ok := queryDefault[T](d, key); ok {
		return v
	}

	d.madeUp[key] = fallback
	return fallback
}

// matchRule reports whether a computed option value is observationally the
// same as the template default, in which case the option is suppressed from
// the produced request set.
type matchRule func(computed, templateDefault any) bool

// defaultRules holds one suppression rule per produced request option. Every
// option RequestSettings runs through suppression must be covered here; an
// uncovered option is treated as always matching.
var defaultRules map[camera2.Key]matchRule

func init() {
	defaultRules = make(map[camera2.Key]matchRule)

	// Region lists compare by behavior: no legacy areas means the template's
	// own regions stay in charge, whatever they are.
	defaultRules[camera2.KeyControlAERegions] = emptyRegions
	defaultRules[camera2.KeyControlAFRegions] = emptyRegions

	// A zero range means the caller never chose one, which leaves the
	// template in charge just like an exact match does.
	defaultRules[camera2.KeyControlAETargetFPSRange] = zeroOrExact[camera2.Range]

	defaultRules[camera2.KeyJPEGQuality] = exactValue
	defaultRules[camera2.KeyControlAEExposureCompensation] = exactValue
	defaultRules[camera2.KeyControlAEMode] = exactValue
	defaultRules[camera2.KeyFlashMode] = exactValue
	defaultRules[camera2.KeyControlAFMode] = exactValue
	defaultRules[camera2.KeyControlSceneMode] = exactValue
	defaultRules[camera2.KeyControlAWBMode] = exactValue
	defaultRules[camera2.KeyControlVideoStabilizationMode] = exactValue
	defaultRules[camera2.KeyControlAELock] = exactValue
	defaultRules[camera2.KeyControlAWBLock] = exactValue

	// (0, 0) disables the thumbnail on the legacy API, but it is also the
	// seeded state on templates without a thumbnail default, so it counts
	// as unset here and the template keeps its thumbnail.
	defaultRules[camera2.KeyJPEGThumbnailSize] = zeroOrExact[camera2.Size]
}

func exactValue(computed, templateDefault any) bool {
	return computed == templateDefault
}

func emptyRegions(computed, _ any) bool {
	list, _ := computed.([]camera2.MeteringRect)
	return common.IsEmpty(list)
}

// zeroOrExact matches when the computed value is either its type's zero
// value or exactly the template default.
func zeroOrExact[T comparable](computed, templateDefault any) bool {
	v, ok := computed.(T)
	if !ok {
		return computed == templateDefault
	}

	var zero T
	return v == zero || computed == templateDefault
}

// matchesDefault reports whether the computed value for key should be
// suppressed in favor of the template default.
func (t *Translator) matchesDefault(key camera2.Key, computed any) bool {
	rule, ok := defaultRules[key]
	if !ok {
		t.log.Warnf("no default rule for request option %s, leaving it to the template", key)
		return true
	}

	templateDefault, _ := t.defaults.lookup(key)
	return rule(computed, templateDefault)
}
