package filesystem

import (
	"errors"
	"fmt"
)

// ErrorCode represents the kind of failure an operation reports.
type ErrorCode int

const (
	// CodeInvalidSyntax indicates a malformed argument list, an invalid path
	// character or a malformed chmod mode.
	CodeInvalidSyntax ErrorCode = iota + 1

	// CodeNotFound indicates a referenced path does not resolve to any node.
	CodeNotFound

	// CodeNotDirectory indicates a directory was expected but a file was found.
	CodeNotDirectory

	// CodeIsDirectory indicates a file was expected but a directory was found.
	CodeIsDirectory

	// CodeAlreadyExists indicates the creation target already occupies its path.
	CodeAlreadyExists

	// CodeAncestorMissing indicates the parent of a creation target does not exist.
	CodeAncestorMissing

	// CodePermissionDenied indicates an rwx capability check failed.
	CodePermissionDenied

	// CodeNotPermitted indicates the actor lacks ownership or root standing,
	// independent of the rwx bits.
	CodeNotPermitted

	// CodeNotEmpty indicates rmdir was called on a directory with children.
	CodeNotEmpty

	// CodeInUse indicates rmdir was called on the working directory.
	CodeInUse

	// CodeInvalidUser indicates the named account is not known.
	CodeInvalidUser
)

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case CodeInvalidSyntax:
		return "InvalidSyntax"
	case CodeNotFound:
		return "NotFound"
	case CodeNotDirectory:
		return "NotADirectory"
	case CodeIsDirectory:
		return "IsADirectory"
	case CodeAlreadyExists:
		return "AlreadyExists"
	case CodeAncestorMissing:
		return "AncestorMissing"
	case CodePermissionDenied:
		return "PermissionDenied"
	case CodeNotPermitted:
		return "OperationNotPermitted"
	case CodeNotEmpty:
		return "NotEmpty"
	case CodeInUse:
		return "InUse"
	case CodeInvalidUser:
		return "InvalidUser"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// message is the text shown to shell users for each code.
func (c ErrorCode) message() string {
	switch c {
	case CodeInvalidSyntax:
		return "Invalid syntax"
	case CodeNotFound:
		return "No such file or directory"
	case CodeNotDirectory:
		return "Not a directory"
	case CodeIsDirectory:
		return "Is a directory"
	case CodeAlreadyExists:
		return "File exists"
	case CodeAncestorMissing:
		return "Ancestor directory does not exist"
	case CodePermissionDenied:
		return "Permission denied"
	case CodeNotPermitted:
		return "Operation not permitted"
	case CodeNotEmpty:
		return "Directory not empty"
	case CodeInUse:
		return "Cannot remove pwd"
	case CodeInvalidUser:
		return "Invalid user"
	default:
		return "Unknown error"
	}
}

// FSError is the typed failure returned by every filesystem operation.
type FSError struct {
	Code    ErrorCode
	Op      string // command name i.e. "mkdir"
	Path    string // path argument the failure relates to, if any
	Message string
}

// Error renders the shell form "<op>: <message>".
func (e *FSError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code.message()
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

// Is matches any *FSError carrying the same code, so the sentinels below work
// with errors.Is regardless of op, path or message.
func (e *FSError) Is(target error) bool {
	var t *FSError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidSyntax    = &FSError{Code: CodeInvalidSyntax}
	ErrNotFound         = &FSError{Code: CodeNotFound}
	ErrNotDirectory     = &FSError{Code: CodeNotDirectory}
	ErrIsDirectory      = &FSError{Code: CodeIsDirectory}
	ErrAlreadyExists    = &FSError{Code: CodeAlreadyExists}
	ErrAncestorMissing  = &FSError{Code: CodeAncestorMissing}
	ErrPermissionDenied = &FSError{Code: CodePermissionDenied}
	ErrNotPermitted     = &FSError{Code: CodeNotPermitted}
	ErrNotEmpty         = &FSError{Code: CodeNotEmpty}
	ErrInUse            = &FSError{Code: CodeInUse}
	ErrInvalidUser      = &FSError{Code: CodeInvalidUser}
)

func newError(op string, code ErrorCode, path string) *FSError {
	return &FSError{Code: code, Op: op, Path: path}
}

// CodeOf returns the ErrorCode carried by err, or 0 if err is not an *FSError.
func CodeOf(err error) ErrorCode {
	var fe *FSError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return 0
}

// withOp returns a copy of err re-tagged with op. Resolver and guard helpers
// produce op-less errors that each command stamps with its own name.
func withOp(op string, err error) error {
	var fe *FSError
	if !errors.As(err, &fe) {
		return err
	}
	cp := *fe
	cp.Op = op
	return &cp
}
