package glutil

import (
	"errors"
	"fmt"
	"strings"
)

// Error is an OpenGL error code reported by GetError.
type Error Enum

// Driver error codes. Wrapped calls return these, so callers can match with
// errors.Is.
const (
	ErrInvalidEnum                 = Error(INVALID_ENUM)
	ErrInvalidValue                = Error(INVALID_VALUE)
	ErrInvalidOperation            = Error(INVALID_OPERATION)
	ErrInvalidFramebufferOperation = Error(INVALID_FRAMEBUFFER_OPERATION)
	ErrOutOfMemory                 = Error(OUT_OF_MEMORY)
	ErrStackUnderflow              = Error(STACK_UNDERFLOW)
	ErrStackOverflow               = Error(STACK_OVERFLOW)
)

// ErrReleased is returned when a handle reference is used after Release.
var ErrReleased = errors.New("glutil: use of released handle")

func (e Error) Error() string {
	return ErrorString(Enum(e))
}

// Code returns the raw driver error code.
func (e Error) Code() Enum {
	return Enum(e)
}

// ErrorString returns the symbolic name of a driver error code.
func ErrorString(code Enum) string {
	switch code {
	case NO_ERROR:
		return "GL_NO_ERROR"
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	default:
		return "Invalid error code"
	}
}

// CompileError reports a shader stage that failed to compile.
// Log holds the driver's info log, or the driver error name when the
// failure came from the error flag rather than the compiler.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// check returns the pending driver error, if any.
func check(d Driver) error {
	if code := d.GetError(); code != NO_ERROR {
		return Error(code)
	}
	return nil
}

// checkString is check for the diagnostic-string channel used while
// building programs.
func checkString(d Driver) string {
	if code := d.GetError(); code != NO_ERROR {
		return ErrorString(code)
	}
	return ""
}

// cleanLog trims the NUL terminator and trailing whitespace drivers leave in
// info logs.
func cleanLog(log string) string {
	return strings.TrimRight(log, "\x00 \t\r\n")
}
