package pipeline

import "context"

// Options control one pipeline run.
type Options struct {
	OutputDir  string // explicit override, wins over stored preference
	ExportDocx bool
}

// Result carries the persisted artifact paths of a successful run.
type Result struct {
	TranscriptPath string
	SummaryPath    string
	DocxPath       string // empty unless docx export was requested
}

// Pipeline runs the full acquisition, transcription, and summarization
// sequence for one input.
type Pipeline interface {
	Run(ctx context.Context, input string, opts Options) (Result, error)
}
