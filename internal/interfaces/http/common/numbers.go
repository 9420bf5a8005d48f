package common

// IntPtr returns pointer helper for ints.
func IntPtr(v int) *int {
	return &v
}
