package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// CopyOf returns an independent copy of the slice, or nil for an empty one.
func CopyOf[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}

	return append(S(nil), s...)
}
