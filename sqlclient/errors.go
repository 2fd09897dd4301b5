package sqlclient

import "fmt"

// ArgumentOutOfRangeError reports a constructor argument that falls outside
// its legal range. It is raised synchronously at construction time and never
// after; callers must treat it as fatal for the operation being configured
// rather than retrying construction.
type ArgumentOutOfRangeError struct {
	// Param is the name of the offending argument.
	Param string
	// Message describes the legal range that was violated.
	Message string
}

// NewArgumentOutOfRangeError builds an ArgumentOutOfRangeError for param.
func NewArgumentOutOfRangeError(param, format string, args ...any) *ArgumentOutOfRangeError {
	return &ArgumentOutOfRangeError{
		Param:   param,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *ArgumentOutOfRangeError) Error() string {
	if e == nil {
		return "argument out of range"
	}

	return fmt.Sprintf("argument %q out of range: %s", e.Param, e.Message)
}
