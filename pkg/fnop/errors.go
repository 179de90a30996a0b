package fnop

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingOperation is reported when a nil operation is invoked.
	ErrMissingOperation = errors.New("missing operation")
	// ErrMissingOperand is reported when an operation is composed with a nil one.
	ErrMissingOperand = errors.New("missing operand")
	// ErrInvalidArgument is reported when an operation is built from a bad setting.
	ErrInvalidArgument = errors.New("invalid argument")
)

type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func Missing(op string) *OperationError {
	return &OperationError{Op: op, Err: ErrMissingOperation}
}

func MissingOperand(op string) *OperationError {
	return &OperationError{Op: op, Err: ErrMissingOperand}
}

func InvalidArgument(op string, detail string) *OperationError {
	return &OperationError{Op: op, Err: fmt.Errorf("%w: %s", ErrInvalidArgument, detail)}
}

// MustOperand panics with a MissingOperand error when operand is nil.
func MustOperand(op string, operand any) {
	if IsNil(operand) {
		panic(MissingOperand(op))
	}
}

// Recover turns a panicking *OperationError into *err. Other panics are
// re-raised. It must be deferred directly:
//
//	defer fnop.Recover(&err)
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	var opErr *OperationError
	if e, ok := r.(error); ok && errors.As(e, &opErr) {
		*err = opErr
		return
	}
	panic(r)
}
