package service

import (
	"errors"

	"gorm.io/gorm"
)

// FailureKind classifies a failed Result so the API layer can pick a status
// code without inspecting message text.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureValidation
	FailureNotFound
	FailureInternal
)

// Result is the uniform envelope every service operation returns. Optional
// aggregate fields (count, totalAmount, summary) are attached only by the
// listing operations that compute them.
type Result struct {
	Success     bool     `json:"success"`
	Data        any      `json:"data,omitempty"`
	Count       *int     `json:"count,omitempty"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`
	Summary     any      `json:"summary,omitempty"`
	Message     string   `json:"message"`
	Error       string   `json:"error,omitempty"`

	Kind FailureKind `json:"-"`
}

func ok(data any, message string) Result {
	return Result{Success: true, Data: data, Message: message}
}

func failValidation(err error, message string) Result {
	return Result{Success: false, Error: err.Error(), Message: message, Kind: FailureValidation}
}

func failNotFound(message string) Result {
	return Result{Success: false, Message: message, Kind: FailureNotFound}
}

func failInternal(err error, message string) Result {
	return Result{Success: false, Error: err.Error(), Message: message, Kind: FailureInternal}
}

// failStore converts a record store error into a failure envelope, mapping a
// missing record to NotFound and anything else to Internal.
func failStore(err error, notFoundMessage, message string) Result {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return failNotFound(notFoundMessage)
	}
	return failInternal(err, message)
}
