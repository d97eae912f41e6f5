package kerfgen

import (
	"errors"
	"fmt"
)

// ErrDomain is the sentinel all DomainError values unwrap to.
// Use errors.Is(err, kerfgen.ErrDomain) to distinguish parameter problems
// from I/O or programming errors.
var ErrDomain = errors.New("kerfgen: invalid parameters")

// DomainError reports a parameter combination that makes no geometric
// sense. It is always fatal to the current generation call: Generate
// returns it before producing any segments.
type DomainError struct {
	// Param names the offending parameter or constraint.
	Param string
	// Reason describes why the value is unusable.
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("kerfgen: %s: %s", e.Param, e.Reason)
}

// Unwrap makes DomainError match ErrDomain via errors.Is.
func (e *DomainError) Unwrap() error { return ErrDomain }

func domainErrf(param, format string, args ...any) *DomainError {
	return &DomainError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// Advisory is a non-fatal warning about a parameter set. Advisories
// accompany a successful result: generation proceeds and still returns a
// full segment sequence. They are never errors.
type Advisory struct {
	// Param names the parameter the advisory concerns.
	Param string
	// Message is human-readable advice.
	Message string
}

func (a Advisory) String() string {
	return fmt.Sprintf("%s: %s", a.Param, a.Message)
}

func advisef(param, format string, args ...any) Advisory {
	return Advisory{Param: param, Message: fmt.Sprintf(format, args...)}
}
