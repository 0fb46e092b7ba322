package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise
// returns fallback. Used to overlay PATCH payloads onto current values.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
