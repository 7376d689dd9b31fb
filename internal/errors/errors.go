// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"
)

// ErrProfileNotFound is a sentinel error
type ErrProfileNotFound struct {
    CompanyName string
}

func (e *ErrProfileNotFound) Error() string {
    return fmt.Sprintf("company profile for %q not found", e.CompanyName)
}

// Helper constructor
func NewProfileNotFound(name string) error {
    return &ErrProfileNotFound{CompanyName: name}
}

// ErrSuggestionNotFound signals no suggestion rows exist for a company
type ErrSuggestionNotFound struct {
    CompanyName string
}

func (e *ErrSuggestionNotFound) Error() string {
    return fmt.Sprintf("no campaign suggestions for %q", e.CompanyName)
}

func NewSuggestionNotFound(name string) error {
    return &ErrSuggestionNotFound{CompanyName: name}
}

// ErrJobNotFound signals no job rows exist for a company
type ErrJobNotFound struct {
    CompanyName string
}

func (e *ErrJobNotFound) Error() string {
    return fmt.Sprintf("no jobs for %q", e.CompanyName)
}

func NewJobNotFound(name string) error {
    return &ErrJobNotFound{CompanyName: name}
}

// IsNotFound reports whether err is any of the NotFound sentinels,
// as opposed to a storage or transport failure.
func IsNotFound(err error) bool {
    var p *ErrProfileNotFound
    var s *ErrSuggestionNotFound
    var j *ErrJobNotFound
    return errors.As(err, &p) || errors.As(err, &s) || errors.As(err, &j)
}
