package internal

// Version is the deepling release version, reported by --version.
const Version = "0.2.0"

// Ellipsize shortens s to at most max runes for log lines, appending an
// ellipsis when something was cut.
func Ellipsize(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
