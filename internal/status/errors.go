package status

import "fmt"

// ErrorType classifies collection failures.
type ErrorType int

const (
	// ErrTypeFileUnreadable means a source file was missing or unreadable.
	ErrTypeFileUnreadable ErrorType = iota
	// ErrTypeSubprocessFailure means the address command could not be run,
	// exited non-zero, timed out or printed something that is not UTF-8.
	ErrTypeSubprocessFailure
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeFileUnreadable:
		return "file unreadable"
	case ErrTypeSubprocessFailure:
		return "subprocess failure"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}

// CollectError describes a source that fell back to its placeholder.
type CollectError struct {
	Type   ErrorType
	Source string // file path or command line
	Err    error
}

func (e *CollectError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Type, e.Err)
}

func (e *CollectError) Unwrap() error {
	return e.Err
}
