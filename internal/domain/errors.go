// Package domain holds the error taxonomy shared by the loyalty processors.
package domain

import (
	"errors"
	"fmt"
)

// ValidationError indicates bad input shape or range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError indicates an unknown customer, queue entry or other resource.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// InsufficientBalanceError is returned when a redemption exceeds the bonus balance.
type InsufficientBalanceError struct {
	AgentID   string
	Requested int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient bonus balance for agent %s: requested %d, available %d",
		e.AgentID, e.Requested, e.Available)
}

// NoActiveQueueEntryError is returned when a contact is recorded against a
// queue slot that is inactive or was never created.
type NoActiveQueueEntryError struct {
	AgentID   string
	QueueType string
}

func (e *NoActiveQueueEntryError) Error() string {
	return fmt.Sprintf("no active %s queue entry for agent %s", e.QueueType, e.AgentID)
}

// UpstreamTransportError wraps a failed call to a messaging transport or the ERP.
type UpstreamTransportError struct {
	Service string
	Err     error
}

func (e *UpstreamTransportError) Error() string {
	return fmt.Sprintf("upstream error [%s]: %v", e.Service, e.Err)
}

func (e *UpstreamTransportError) Unwrap() error {
	return e.Err
}

// DataIntegrityWarning reports a non-fatal anomaly in stored data.
type DataIntegrityWarning struct {
	Subject string
	Detail  string
}

func (e *DataIntegrityWarning) Error() string {
	return fmt.Sprintf("data integrity warning for %s: %s", e.Subject, e.Detail)
}

// IsWarning reports whether err carries a DataIntegrityWarning.
func IsWarning(err error) bool {
	var w *DataIntegrityWarning
	return errors.As(err, &w)
}
