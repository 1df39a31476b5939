// Package errs collects the error types shared by the parser, the
// generator, and the optimizer.
package errs

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/errors"

	"github.com/brindlecode/sqlforge/token"
)

// ParseError is a single parse failure with its source position.
type ParseError struct {
	Pos     token.Pos
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Collector accumulates parse errors up to a bound, then folds them
// into a single multierror.Error on demand.
type Collector struct {
	MaxErrors int
	errs      []*ParseError
}

// Add records e. It reports whether the caller should keep parsing
// (false once MaxErrors has been reached).
func (c *Collector) Add(e *ParseError) bool {
	c.errs = append(c.errs, e)
	if c.MaxErrors > 0 && len(c.errs) >= c.MaxErrors {
		return false
	}
	return true
}

// Len reports how many errors have been collected.
func (c *Collector) Len() int { return len(c.errs) }

// Errors returns the errors collected so far, in source order.
func (c *Collector) Errors() []*ParseError { return c.errs }

// Err returns nil if no errors were collected, the lone error if
// exactly one was, or a *multierror.Error aggregating all of them.
func (c *Collector) Err() error {
	switch len(c.errs) {
	case 0:
		return nil
	case 1:
		return c.errs[0]
	default:
		var merr *multierror.Error
		for _, e := range c.errs {
			merr = multierror.Append(merr, e)
		}
		return merr
	}
}

// Unsupported annotates a dialect/construct mismatch with juju/errors
// context so callers can test with errors.Is against the NotSupported
// family.
func Unsupported(format string, args ...interface{}) error {
	return errors.NewNotSupported(nil, fmt.Sprintf(format, args...))
}

// DialectNotFound annotates a lookup miss in the dialect registry.
func DialectNotFound(name string) error {
	return errors.NotFoundf("dialect %q", name)
}

// Annotatef wraps err with additional context, preserving its cause
// for errors.Cause/errors.Is callers.
func Annotatef(err error, format string, args ...interface{}) error {
	return errors.Annotatef(err, format, args...)
}
