package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidItems         = errors.New("items must be a non-empty array")
	ErrInvalidProjectInput  = errors.New("invalid project input")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrInvalidCostConfig    = errors.New("invalid cost config")
	ErrInvalidDecision      = errors.New("decision must be approved or rejected")
	ErrQuoteVersionConflict = errors.New("quote version conflict")
	ErrInvalidTransition    = errors.New("invalid quote status transition")
)

// GenerationError wraps a failed or unparseable call to an external
// generation provider (bill of quantities or preview image).
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// RenderError wraps document rendering or artifact storage failures.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
