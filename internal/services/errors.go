package services

import (
	"errors"
	"fmt"
)

// Reason classifies why a stub backend operation was refused
type Reason int

const (
	ReasonNotFound Reason = iota + 1
	ReasonConflict
	ReasonInvalidReference
)

// Failure is a refused operation. Message is the text sent back to clients.
type Failure struct {
	Reason  Reason
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func notFound(entity string, id int64) *Failure {
	return &Failure{Reason: ReasonNotFound, Message: fmt.Sprintf("%s with id %d does not exist.", entity, id)}
}

// ReasonOf returns the Reason carried by err, or 0 for unexpected failures
func ReasonOf(err error) Reason {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Reason
	}
	return 0
}
