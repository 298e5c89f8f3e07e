package routerconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for router configuration operations

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeMissingField indicates a required input was left empty
	ErrTypeMissingField ErrorType = iota
	// ErrTypeTooShort indicates a password shorter than the policy minimum
	ErrTypeTooShort
	// ErrTypeTooLong indicates a password longer than the policy maximum
	ErrTypeTooLong
	// ErrTypeMissingCharacterClass indicates a password lacking a required character class
	ErrTypeMissingCharacterClass
	// ErrTypeInvalidField indicates a field value outside its allowed format
	ErrTypeInvalidField
	// ErrTypeOperationFailed indicates the connect or apply operation failed
	ErrTypeOperationFailed
	// ErrTypeNotConnected indicates an operation that needs a router session was attempted without one
	ErrTypeNotConnected
	// ErrTypeBusy indicates the same operation is already in flight
	ErrTypeBusy
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeMissingField:
		return "Missing Field"
	case ErrTypeTooShort:
		return "Too Short"
	case ErrTypeTooLong:
		return "Too Long"
	case ErrTypeMissingCharacterClass:
		return "Missing Character Class"
	case ErrTypeInvalidField:
		return "Invalid Field"
	case ErrTypeOperationFailed:
		return "Operation Failed"
	case ErrTypeNotConnected:
		return "Not Connected"
	case ErrTypeBusy:
		return "Busy"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// RouterError represents an error raised by validation or by a router operation
type RouterError struct {
	Type    ErrorType        // Category of error
	Message string           // Human-readable error message
	Field   string           // Offending form field (if applicable)
	Missing []CharacterClass // Missing character classes (MissingCharacterClass only)
	Err     error            // Underlying error (if any)
}

// Error implements the error interface
func (e *RouterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *RouterError) Unwrap() error {
	return e.Err
}

// NewMissingFieldError creates an error for a required field left empty
func NewMissingFieldError(field string) *RouterError {
	return &RouterError{
		Type:    ErrTypeMissingField,
		Message: fmt.Sprintf("%s is required", field),
		Field:   field,
	}
}

// NewTooShortError creates an error for a password below the minimum length
func NewTooShortError(minLength, got int) *RouterError {
	return &RouterError{
		Type:    ErrTypeTooShort,
		Message: fmt.Sprintf("password must be at least %d characters, got %d", minLength, got),
		Field:   FieldWiFiPassword,
	}
}

// NewTooLongError creates an error for a password above the maximum length
func NewTooLongError(maxLength, got int) *RouterError {
	return &RouterError{
		Type:    ErrTypeTooLong,
		Message: fmt.Sprintf("password must be at most %d characters, got %d", maxLength, got),
		Field:   FieldWiFiPassword,
	}
}

// NewMissingCharacterClassError creates an error listing the character classes a password lacks
func NewMissingCharacterClassError(missing []CharacterClass) *RouterError {
	names := make([]string, len(missing))
	for i, c := range missing {
		names[i] = c.String()
	}
	return &RouterError{
		Type:    ErrTypeMissingCharacterClass,
		Message: "password needs at least one " + strings.Join(names, ", one "),
		Field:   FieldWiFiPassword,
		Missing: append([]CharacterClass(nil), missing...),
	}
}

// NewInvalidFieldError creates an error for a field with a malformed value
func NewInvalidFieldError(field, message string) *RouterError {
	return &RouterError{
		Type:    ErrTypeInvalidField,
		Message: message,
		Field:   field,
	}
}

// NewOperationFailedError creates an error for a failed connect/apply operation
func NewOperationFailedError(message string, err error) *RouterError {
	return &RouterError{
		Type:    ErrTypeOperationFailed,
		Message: message,
		Err:     err,
	}
}

// NewNotConnectedError creates an error for an operation requiring an active session
func NewNotConnectedError() *RouterError {
	return &RouterError{
		Type:    ErrTypeNotConnected,
		Message: "connect to the router first",
	}
}

// NewBusyError creates an error for an operation that is already in flight
func NewBusyError(op Operation) *RouterError {
	return &RouterError{
		Type:    ErrTypeBusy,
		Message: fmt.Sprintf("%s already in progress", op),
	}
}

func errorType(err error) (ErrorType, bool) {
	var rerr *RouterError
	if errors.As(err, &rerr) {
		return rerr.Type, true
	}
	return 0, false
}

func isType(err error, want ErrorType) bool {
	got, ok := errorType(err)
	return ok && got == want
}

// IsMissingField checks if an error is a missing field error
func IsMissingField(err error) bool {
	return isType(err, ErrTypeMissingField)
}

// IsTooShort checks if an error is a too-short password error
func IsTooShort(err error) bool {
	return isType(err, ErrTypeTooShort)
}

// IsTooLong checks if an error is a too-long password error
func IsTooLong(err error) bool {
	return isType(err, ErrTypeTooLong)
}

// IsMissingCharacterClass checks if an error is a missing character class error
func IsMissingCharacterClass(err error) bool {
	return isType(err, ErrTypeMissingCharacterClass)
}

// IsInvalidField checks if an error is an invalid field error
func IsInvalidField(err error) bool {
	return isType(err, ErrTypeInvalidField)
}

// IsOperationFailed checks if an error is an operation failure
func IsOperationFailed(err error) bool {
	return isType(err, ErrTypeOperationFailed)
}

// IsNotConnected checks if an error was caused by a missing router session
func IsNotConnected(err error) bool {
	return isType(err, ErrTypeNotConnected)
}

// IsBusy checks if an error was caused by an operation already in flight
func IsBusy(err error) bool {
	return isType(err, ErrTypeBusy)
}

// IsValidationError reports whether err came from input validation rather than an operation
func IsValidationError(err error) bool {
	t, ok := errorType(err)
	if !ok {
		return false
	}
	switch t {
	case ErrTypeMissingField, ErrTypeTooShort, ErrTypeTooLong, ErrTypeMissingCharacterClass, ErrTypeInvalidField:
		return true
	}
	return false
}

// GetTroubleshootingHint returns user-friendly advice for an error
func GetTroubleshootingHint(err error) string {
	var rerr *RouterError
	if !errors.As(err, &rerr) {
		return "An unexpected error occurred. Please try again."
	}

	switch rerr.Type {
	case ErrTypeMissingField:
		return fmt.Sprintf("Fill in the %s field and try again.", rerr.Field)

	case ErrTypeTooShort, ErrTypeTooLong, ErrTypeMissingCharacterClass:
		return strings.Join([]string{
			"The WiFi password does not meet the password policy.",
			"  • " + rerr.Message,
			"Use a mix of uppercase letters, lowercase letters and digits.",
		}, "\n")

	case ErrTypeInvalidField:
		return fmt.Sprintf("Check the %s field: %s", rerr.Field, rerr.Message)

	case ErrTypeOperationFailed:
		return strings.Join([]string{
			"The router did not accept the request.",
			"Troubleshooting:",
			"  • Check the username and password",
			"  • Verify the router address",
		}, "\n")

	case ErrTypeNotConnected:
		return "Connect to the router before changing WiFi settings."

	case ErrTypeBusy:
		return "Wait for the current operation to finish."

	default:
		return "An error occurred. Please check the error message for details."
	}
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var rerr *RouterError
	if !errors.As(err, &rerr) {
		return err.Error()
	}

	switch rerr.Type {
	case ErrTypeMissingField:
		return "Please enter " + rerr.Field
	case ErrTypeMissingCharacterClass:
		return "Password must contain uppercase, lowercase and digits"
	case ErrTypeNotConnected:
		return "Not connected to the router"
	default:
		return rerr.Message
	}
}
