package formula

import (
	"errors"
	"fmt"
)

// Calculation errors. Every error returned by Evaluate and by the solver wraps one of
// these, so callers can branch with errors.Is.
var (
	ErrUnknownFormula     = errors.New("formula: unknown formula")
	ErrUnsupportedTarget  = errors.New("formula: target cannot be solved for")
	ErrMissingVariable    = errors.New("formula: missing variable")
	ErrUnexpectedVariable = errors.New("formula: unexpected variable")
	ErrInvalidNumber      = errors.New("formula: invalid number")
	ErrDivisionUndefined  = errors.New("formula: division by zero")
	ErrOutOfDomain        = errors.New("formula: no real solution")
)

// Error adds calculation context to one of the sentinel errors above.
type Error struct {
	Formula  string
	Target   string
	Variable string
	Err      error
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Variable != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Variable)
	}
	switch {
	case e.Formula != "" && e.Target != "":
		return fmt.Sprintf("%s (%s, solving for %s)", msg, e.Formula, e.Target)
	case e.Formula != "":
		return fmt.Sprintf("%s (%s)", msg, e.Formula)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindName names the error class of err as exposed to API clients, e.g.
// "MissingVariable". It returns "" for errors that are not calculation errors.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrUnknownFormula):
		return "UnknownFormula"
	case errors.Is(err, ErrUnsupportedTarget):
		return "UnsupportedTarget"
	case errors.Is(err, ErrMissingVariable):
		return "MissingVariable"
	case errors.Is(err, ErrUnexpectedVariable):
		return "UnexpectedVariable"
	case errors.Is(err, ErrInvalidNumber):
		return "InvalidNumber"
	case errors.Is(err, ErrDivisionUndefined):
		return "DivisionUndefined"
	case errors.Is(err, ErrOutOfDomain):
		return "OutOfDomain"
	}
	return ""
}

func undefined(label string) error {
	return &Error{Variable: label, Err: ErrDivisionUndefined}
}

func outOfDomain(label string) error {
	return &Error{Variable: label, Err: ErrOutOfDomain}
}

// withContext fills in the formula and target of a calculation error raised deep in
// an inversion. Errors that already carry a formula are left as they are.
func withContext(err error, formula, target string) error {
	var fe *Error
	if errors.As(err, &fe) {
		if fe.Formula == "" {
			return &Error{Formula: formula, Target: target, Variable: fe.Variable, Err: fe.Err}
		}
		return err
	}
	return &Error{Formula: formula, Target: target, Err: err}
}
