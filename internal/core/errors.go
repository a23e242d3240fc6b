package core

import "fmt"

// InputError means the caller supplied missing or empty input text.
// Surfaced immediately; no backend calls are attempted.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s", e.Message)
}

// ValidationError represents a structural validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// MalformedPayloadError means a structured payload stayed unparseable
// after the single repair attempt, or a diagram came back empty. The
// last raw payload is kept for manual debugging.
type MalformedPayloadError struct {
	Stage       string
	LastPayload string
	Err         error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed payload: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: malformed payload", e.Stage)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}
