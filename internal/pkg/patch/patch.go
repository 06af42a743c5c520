package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps the optional value when the patch leaves it untouched.
func CoalescePtr[T any](patch *T, fallback *T) *T {
	if patch != nil {
		return patch
	}
	return fallback
}
