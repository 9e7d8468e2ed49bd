package models

import (
	"errors"
	"fmt"
)

// Domain-level errors for validation and business logic.
// These errors are defined in the domain layer and can be used
// throughout the application.

var (
	// Request validation errors
	ErrMissingPrompt       = errors.New("prompt is required")
	ErrMissingCode         = errors.New("code is required")
	ErrMissingText         = errors.New("text is required")
	ErrMissingWorkflowType = errors.New("workflow_type is required")

	// Workflow errors
	ErrUnknownWorkflow = errors.New("unknown workflow type")
)

// WorkflowInputError reports a required workflow input that was absent
// from the request. The workflow name is part of the message so callers
// can tell which handler rejected the inputs.
type WorkflowInputError struct {
	Workflow string
	Field    string
}

// Error implements the error interface.
func (e *WorkflowInputError) Error() string {
	return fmt.Sprintf("%s is required for %s workflow", e.Field, e.Workflow)
}

// IsValidationError reports whether err belongs to the validation error
// taxonomy (missing or empty required fields). Unknown-workflow errors are
// deliberately excluded; they form their own category.
func IsValidationError(err error) bool {
	var inputErr *WorkflowInputError
	if errors.As(err, &inputErr) {
		return true
	}
	return errors.Is(err, ErrMissingPrompt) ||
		errors.Is(err, ErrMissingCode) ||
		errors.Is(err, ErrMissingText) ||
		errors.Is(err, ErrMissingWorkflowType)
}
