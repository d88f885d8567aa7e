package audio

import (
	"context"

	"ausum/internal/source"
)

// Acquirer obtains a normalized 16 kHz mono audio asset from a source.
type Acquirer interface {
	Acquire(ctx context.Context, src source.Source, wavPath string) error
}
