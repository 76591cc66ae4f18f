package translator

import (
	"context"

	"github.com/subtran/vtt-translate/internal/spinner"
)

// TranslateFunc is the translation service boundary: one prompt in, the
// model's raw response text out. Any backend with this signature works,
// including deterministic stubs in tests.
type TranslateFunc func(ctx context.Context, prompt string) (string, error)

// BatchResult is the explicit outcome of a single batch call. A failed
// batch is a routine result, not an exceptional state: Err is set, Texts
// is empty, and the caller substitutes the original texts.
type BatchResult struct {
	Texts []string
	Err   error
}

// BatchOutcome records one processed batch for end-of-run reporting
type BatchOutcome struct {
	Index      int // 1-based batch number
	Size       int // cues in the batch
	Translated int // cues that received translated text
	Err        error
}

// Progress is the per-batch progress indicator contract
type Progress interface {
	Start()
	SetLabel(label string)
	Succeed(message string)
	Fail(message string)
}

// ProgressFactory builds one Progress per batch
type ProgressFactory func(label string) Progress

// SpinnerProgress builds terminal spinners (the default factory)
func SpinnerProgress(label string) Progress {
	return spinner.New(label)
}

type noopProgress struct{}

func (noopProgress) Start()          {}
func (noopProgress) SetLabel(string) {}
func (noopProgress) Succeed(string)  {}
func (noopProgress) Fail(string)     {}

// NoProgress builds silent indicators, for non-interactive runs
func NoProgress(string) Progress {
	return noopProgress{}
}
