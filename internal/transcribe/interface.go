package transcribe

import "context"

// Transcriber converts normalized audio into plain transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}
