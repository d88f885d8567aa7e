package source

import "strings"

// SignatureClassifier recognizes known phrases in collaborator error
// output. The phrases are configuration, not code, because they track a
// collaborator's current wording and will drift with its releases.
type SignatureClassifier struct {
	unsupported []string
	authFailure []string
}

// NewSignatureClassifier builds a classifier from phrase lists.
func NewSignatureClassifier(unsupported, authFailure []string) *SignatureClassifier {
	return &SignatureClassifier{
		unsupported: unsupported,
		authFailure: authFailure,
	}
}

// UnsupportedSource reports whether output carries a downloader phrase
// meaning the URL has no extractable video.
func (c *SignatureClassifier) UnsupportedSource(output string) bool {
	return containsAny(output, c.unsupported)
}

// AuthFailure reports whether output carries the primary summarization
// backend's unauthenticated-session phrase.
func (c *SignatureClassifier) AuthFailure(output string) bool {
	return containsAny(output, c.authFailure)
}

func containsAny(output string, phrases []string) bool {
	lowered := strings.ToLower(output)
	for _, phrase := range phrases {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}
