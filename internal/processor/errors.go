package processor

import (
	"errors"
	"fmt"
)

// Error kinds the pipeline surfaces to the webhook caller. They categorize
// the failing collaborator, never the raw cause; handlers match on them with
// errors.Is.
var (
	// ErrPersistence is any statistics-store fault.
	ErrPersistence = errors.New("persistence error")
	// ErrUpstreamFetch is any transport or non-2xx fault from the game
	// server (demo fetch) or the profile directory.
	ErrUpstreamFetch = errors.New("upstream fetch error")
	// ErrDemoUpload means the archive store rejected or failed the upload.
	ErrDemoUpload = errors.New("demo upload error")
)

// PipelineError tags a failure with the stage it occurred in and the error
// kind it categorizes as, keeping the underlying cause on the chain.
type PipelineError struct {
	Stage Stage
	Kind  error
	Err   error
}

func (e *PipelineError) Error() string {
	if e.Kind == e.Err {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Is matches the error kind so callers can use errors.Is(err, ErrDemoUpload)
// without unwrapping the stage tag first.
func (e *PipelineError) Is(target error) bool {
	return target == e.Kind
}

func failed(stage Stage, kind, err error) *PipelineError {
	return &PipelineError{Stage: stage, Kind: kind, Err: err}
}
