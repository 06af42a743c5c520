package media

import "strings"

// SanitizeFilename reduces an uploaded filename to a safe ASCII subset usable
// both as an object key segment and inside a URL path.
func SanitizeFilename(name string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")

	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_' || r == '.' || r == '-':
			return r
		default:
			return -1
		}
	}, name)

	return strings.Trim(name, "._")
}
