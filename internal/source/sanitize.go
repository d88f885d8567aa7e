package source

import (
	"regexp"
	"strings"
)

const maxFilenameLen = 180

var (
	reForbidden    = regexp.MustCompile(`[/\\:*?"<>|]`)
	reWhitespace   = regexp.MustCompile(`\s+`)
	reTrailingDots = regexp.MustCompile(`\.+$`)
)

// SanitizeFilename makes an arbitrary string safe as a filesystem entry.
// Rules apply in order: trim, replace forbidden characters with "-",
// collapse whitespace runs, strip trailing dots, substitute "untitled"
// for an empty result, truncate to 180 characters.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = reForbidden.ReplaceAllString(name, "-")
	name = reWhitespace.ReplaceAllString(name, " ")
	name = reTrailingDots.ReplaceAllString(name, "")
	if name == "" {
		name = "untitled"
	}
	if runes := []rune(name); len(runes) > maxFilenameLen {
		name = strings.TrimRight(string(runes[:maxFilenameLen]), " \t")
	}
	return name
}
