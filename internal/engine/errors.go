package engine

import (
	"strings"
)

// ValidationError carries field-level messages for structurally invalid
// input. It is raised before any classification or generation proceeds.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

func (e *ValidationError) Add(message string) {
	e.Fields = append(e.Fields, message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
