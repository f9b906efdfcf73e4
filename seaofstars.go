package seaofstars

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrValidation marks malformed substances, parts, limbs, bodies or damage.
	ErrValidation = errors.New("validation failed")
	// ErrPrecondition marks misuse of an operation, such as drawing from an all-zero weight set.
	ErrPrecondition = errors.New("precondition violated")
	// ErrNotFound marks lookups of names that do not exist.
	ErrNotFound = errors.New("not found")
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func WithStack(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(stackTracer); !ok {
		return errors.WithStack(err)
	}
	return err
}

func StackTrace(err error) string {
	buf := &bytes.Buffer{}
	if err, ok := err.(stackTracer); ok {
		for _, f := range err.StackTrace() {
			fmt.Fprintf(buf, "%+v\n", f)
		}
	}
	return buf.String()
}

// Validationf returns an ErrValidation carrying the formatted detail.
func Validationf(format string, args ...any) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

// Preconditionf returns an ErrPrecondition carrying the formatted detail.
func Preconditionf(format string, args ...any) error {
	return errors.Wrapf(ErrPrecondition, format, args...)
}

// NotFoundf returns an ErrNotFound carrying the formatted detail.
func NotFoundf(format string, args ...any) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}
