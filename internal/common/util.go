package common

// WipeByteArray overwrites b with zeros so secrets such as passwords do not
// linger in memory. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// MaskSecret keeps the first n characters of s and replaces the rest with
// "...". Strings of length n or less are fully masked.
func MaskSecret(s string, n int) string {
	if s == "" {
		return ""
	}
	if len(s) <= n {
		return "..."
	}
	return s[:n] + "..."
}
