package errors

import (
	"fmt"
	"syscall"

	"github.com/cockroachdb/errors"
)

var (
	// ErrAlreadyExists is returned when a directory to be created is already present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrPartialWrite marks a write that transferred fewer bytes than the payload.
	ErrPartialWrite = errors.New("partial write")

	// ErrStrictCheck is returned by `check --strict` when the layout has issues.
	ErrStrictCheck = errors.New("layout check failed")
)

// StepError attaches the name of a failed scaffold step to its cause.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Step wraps err with the given step name. It returns nil for a nil err.
func Step(step string, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Step: step, Err: err}
}

// PartialWriteError records a short write.
type PartialWriteError struct {
	Path    string
	Written int
	Want    int
	Err     error // underlying write error, may be nil
}

func (e *PartialWriteError) Error() string {
	msg := fmt.Sprintf("partial write to %s: wrote %d of %d bytes", e.Path, e.Written, e.Want)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}

func (e *PartialWriteError) Is(target error) bool {
	return target == ErrPartialWrite
}

// ExitCode maps an error chain to a process exit status.
// Returns 0 for nil, the OS errno when the chain carries one, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}

	return 1
}
