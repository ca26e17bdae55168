package content

import (
	"fmt"

	"github.com/visaetude/prepcore/internal/cefr"
)

// ValidationError indicates a generated payload failed skill validation.
// Field names the first offending field.
type ValidationError struct {
	Skill cefr.Skill
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s payload (field %q): %v", e.Skill, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// GenerationError indicates content generation failed after exhausting all
// retries. It wraps the last underlying cause.
type GenerationError struct {
	Skill    cefr.Skill
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating %s content failed after %d attempts: %v", e.Skill, e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
