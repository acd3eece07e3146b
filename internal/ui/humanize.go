package ui

// HashOrAddr shortens a hash or address to its first and last four
// characters. Values shorter than eight characters are returned unchanged.
func HashOrAddr(s string) string {
	if len(s) < 8 {
		return s
	}
	return s[:4] + "..." + s[len(s)-4:]
}
