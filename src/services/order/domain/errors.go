package domain

import (
	"errors"
	"strings"
)

var (
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrOrderNotPlaced = errors.New("order not placed")
	ErrInternal       = errors.New("internal failure")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every rejected field of a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsSpam reports whether the honeypot field triggered the rejection.
func (e *ValidationError) IsSpam() bool {
	for _, f := range e.Fields {
		if f.Field == "honeypot" {
			return true
		}
	}
	return false
}
