package domain

import (
	"errors"
	"fmt"
)

// InvalidInputError is returned for requests that are rejected before any
// simulation work runs
type InvalidInputError struct {
	Message string
}

func (e InvalidInputError) Error() string {
	return e.Message
}

func NewInvalidInputError(msg string) error {
	return InvalidInputError{Message: msg}
}

// ErrDegenerateAggregation means the aggregator was handed zero paths or a
// zero-length horizon. validation should make this unreachable
var ErrDegenerateAggregation = errors.New("cannot aggregate zero paths or empty horizon")

// InternalFailureError wraps unexpected faults during a run. the cause is
// logged, never returned to the caller
type InternalFailureError struct {
	Cause error
}

func (e InternalFailureError) Error() string {
	return fmt.Sprintf("internal failure: %s", e.Cause.Error())
}

func (e InternalFailureError) Unwrap() error {
	return e.Cause
}

func IsInvalidInput(err error) bool {
	return errors.As(err, &InvalidInputError{})
}

// UpstreamError is a failure in a collaborator the service depends on, like a
// price provider or a spreadsheet
type UpstreamError struct {
	Source string
	Cause  error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed: %s", e.Source, e.Cause.Error())
}

func (e UpstreamError) Unwrap() error {
	return e.Cause
}
