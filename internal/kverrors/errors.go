package kverrors

import (
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeInvalidKey indicates a key that cannot be encoded into the log
	ErrorTypeInvalidKey ErrorType = "INVALID_KEY"
	// ErrorTypeInvalidValue indicates a value that cannot be encoded into the log
	ErrorTypeInvalidValue ErrorType = "INVALID_VALUE"
	// ErrorTypeWriteFailure indicates the durable log append failed
	ErrorTypeWriteFailure ErrorType = "WRITE_FAILURE"
	// ErrorTypeReadFailure indicates the log could not be read during recovery
	ErrorTypeReadFailure ErrorType = "READ_FAILURE"
	// ErrorTypeInvalidInput indicates invalid input parameters
	ErrorTypeInvalidInput ErrorType = "INVALID_INPUT"
	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// KVError represents a custom error with additional context
type KVError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *KVError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error
func (e *KVError) Unwrap() error {
	return e.Err
}

// New creates a new KVError
func New(errType ErrorType, message string, err error) *KVError {
	return &KVError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

func isType(err error, t ErrorType) bool {
	if kvErr, ok := err.(*KVError); ok {
		return kvErr.Type == t
	}
	return false
}

// IsInvalidKey checks if the error is an invalid key error
func IsInvalidKey(err error) bool {
	return isType(err, ErrorTypeInvalidKey)
}

// IsInvalidValue checks if the error is an invalid value error
func IsInvalidValue(err error) bool {
	return isType(err, ErrorTypeInvalidValue)
}

// IsWriteFailure checks if the error is a durable append failure
func IsWriteFailure(err error) bool {
	return isType(err, ErrorTypeWriteFailure)
}

// IsReadFailure checks if the error is a log read failure
func IsReadFailure(err error) bool {
	return isType(err, ErrorTypeReadFailure)
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return isType(err, ErrorTypeInvalidInput)
}

// RecoverError recovers from a panic and converts it to a KVError
func RecoverError(r interface{}) error {
	if r == nil {
		return nil
	}

	var err error
	switch v := r.(type) {
	case error:
		err = v
	case string:
		err = fmt.Errorf("%s", v)
	default:
		err = fmt.Errorf("%v", v)
	}

	return New(ErrorTypeInternal, "recovered from panic", err)
}
