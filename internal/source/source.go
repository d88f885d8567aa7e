package source

import (
	"os"
	"path/filepath"
	"strings"
)

// Kind distinguishes remote URLs from local files.
type Kind int

const (
	KindRemote Kind = iota
	KindLocal
)

// Source is a classified pipeline input.
type Source struct {
	Kind  Kind
	Input string // URL, or local path with home shorthand expanded
}

// Classify decides whether input names a remote URL or a local file.
func Classify(input string) Source {
	if strings.HasPrefix(input, "http://") ||
		strings.HasPrefix(input, "https://") ||
		strings.HasPrefix(input, "www.") {
		return Source{Kind: KindRemote, Input: input}
	}
	return Source{Kind: KindLocal, Input: ExpandPath(input)}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
