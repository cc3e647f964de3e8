package apperror

import (
	"errors"
	"fmt"
)

// Stage names the step of an object's processing that failed.
type Stage string

const (
	StageFetch            Stage = "fetch"
	StageDecode           Stage = "decode"
	StageRender           Stage = "render"
	StageUpload           Stage = "upload"
	StageMetadata         Stage = "metadata"
	StageQuarantineCopy   Stage = "quarantine_copy"
	StageQuarantineDelete Stage = "quarantine_delete"
	StageRecord           Stage = "record"
)

// StageError is a per-object failure. The orchestrator turns these into
// outcome records instead of letting them escape the batch.
type StageError struct {
	Stage Stage
	Key   string
	Err   error
}

func (e *StageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func New(stage Stage, key string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Key:   key,
		Err:   err,
	}
}

func Is(err error) bool {
	var stageErr *StageError
	return errors.As(err, &stageErr)
}

// StageOf returns the stage of the outermost StageError in err's chain.
func StageOf(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}
	return "", false
}
