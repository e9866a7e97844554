// Package apperrors defines the error taxonomy shared by the workflow core.
// Every error carries a caller-safe message; the HTTP boundary maps the types
// to status codes and the {success:false, message} envelope.
package apperrors

import "fmt"

// ValidationError reports missing or empty required input (e.g. absent
// remarks). No state change has happened.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an entity, routing table or notification that is
// absent or in the wrong state for the requested transition. A concurrent
// writer that loses a conditional update receives this too.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found or already processed", e.Resource, e.ID)
}

// NotFound builds a NotFoundError.
func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// DuplicateError reports a code, number or unique-field collision. The
// creation was aborted entirely; nothing was persisted.
type DuplicateError struct {
	Msg string
}

func (e *DuplicateError) Error() string { return e.Msg }

// Duplicate builds a DuplicateError from a format string.
func Duplicate(format string, args ...any) error {
	return &DuplicateError{Msg: fmt.Sprintf(format, args...)}
}

// DependencyError reports a missing referenced record (account group, cost
// centre, parent client). The dependent creation or side effect is aborted.
type DependencyError struct {
	Msg string
}

func (e *DependencyError) Error() string { return e.Msg }

// Dependency builds a DependencyError from a format string.
func Dependency(format string, args ...any) error {
	return &DependencyError{Msg: fmt.Sprintf(format, args...)}
}

// CodeGenerationError reports a failed or malformed sequence lookup. The
// caller must abort entity creation.
type CodeGenerationError struct {
	Scope string
	Err   error
}

func (e *CodeGenerationError) Error() string {
	return fmt.Sprintf("code generation failed for scope %q: %v", e.Scope, e.Err)
}

func (e *CodeGenerationError) Unwrap() error { return e.Err }

// SideEffectError reports a post-approval handler that could not create all
// of its derived records. The entity is already Approved and stays Approved;
// this is a partial-success report, not a rollback.
type SideEffectError struct {
	Succeeded int
	Failed    int
	Reasons   []string
}

func (e *SideEffectError) Error() string {
	return fmt.Sprintf("side effect completed partially: %d succeeded, %d failed", e.Succeeded, e.Failed)
}
