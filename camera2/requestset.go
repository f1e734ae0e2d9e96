package camera2

import (
	"sort"

	"camera2-shim/internal/common"
)

// RequestSet is a sparse option-to-value collection describing one capture
// request. An absent key means "let the template default stand", a present
// key overrides it. Stored values follow the per-Key type contract from
// keys.go and are treated as immutable once set.
type RequestSet struct {
	values   map[Key]any
	revision int64
}

// NewRequestSet returns an empty request set: every option at its template
// default.
func NewRequestSet() *RequestSet {
	return &RequestSet{values: make(map[Key]any)}
}

// Set stores value against key, or removes the entry entirely when value is
// nil. It reports whether the contents changed; every effective change bumps
// the revision.
func (s *RequestSet) Set(key Key, value any) bool {
	if value == nil {
		if _, ok := s.values[key]; !ok {
			return false
		}

		delete(s.values, key)
		s.revision++
		return true
	}

	if old, ok := s.values[key]; ok && valueEqual(old, value) {
		return false
	}

	s.values[key] = value
	s.revision++
	return true
}

// Get returns the stored override for key, if any.
func (s *RequestSet) Get(key Key) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of overridden options.
func (s *RequestSet) Len() int {
	return len(s.values)
}

// Keys returns the overridden option keys in sorted order.
func (s *RequestSet) Keys() []Key {
	keys := make([]Key, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clone returns an independent copy at the same revision. Metering region
// slices are duplicated so neither set can reach into the other.
func (s *RequestSet) Clone() *RequestSet {
	out := &RequestSet{
		values:   make(map[Key]any, len(s.values)),
		revision: s.revision,
	}
	for k, v := range s.values {
		if regions, ok := v.([]MeteringRect); ok {
			v = common.CopyOf(regions)
		}
		out.values[k] = v
	}
	return out
}

// Union overlays other's overrides onto s, other winning on conflicts, and
// reports whether s changed.
func (s *RequestSet) Union(other *RequestSet) bool {
	if other == nil {
		return false
	}

	changed := false
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		if s.Set(k, v) {
			changed = true
		}
	}
	return changed
}

// Equal reports whether both sets override the same options with equal
// values. Revisions are not compared.
func (s *RequestSet) Equal(other *RequestSet) bool {
	if other == nil || len(s.values) != len(other.values) {
		return false
	}

	for k, v := range s.values {
		ov, ok := other.values[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

// Revision returns a counter that increments on every effective mutation,
// letting callers detect staleness without comparing contents.
func (s *RequestSet) Revision() int64 {
	return s.revision
}

// valueEqual compares two stored option values: region slices element-wise,
// everything else by plain comparison.
func valueEqual(a, b any) bool {
	ra, aIsRegions := a.([]MeteringRect)
	rb, bIsRegions := b.([]MeteringRect)
	if aIsRegions || bIsRegions {
		if !aIsRegions || !bIsRegions || len(ra) != len(rb) {
			return false
		}

		for i := range ra {
			if ra[i] != rb[i] {
				return false
			}
		}
		return true
	}

	return a == b
}
