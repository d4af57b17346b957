package types

import "fmt"

type ScanError struct {
	Message string
	Cause   error
}

func (e *ScanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ScanError) Unwrap() error {
	return e.Cause
}

type ConfigurationError struct {
	*ScanError
}

func NewConfigurationError(message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		ScanError: &ScanError{Message: message, Cause: cause},
	}
}

type ValidationError struct {
	*ScanError
}

func NewValidationError(message string, cause error) *ValidationError {
	return &ValidationError{
		ScanError: &ScanError{Message: message, Cause: cause},
	}
}

type NetworkError struct {
	*ScanError
}

func NewNetworkError(message string, cause error) *NetworkError {
	return &NetworkError{
		ScanError: &ScanError{Message: message, Cause: cause},
	}
}

type FileSystemError struct {
	*ScanError
}

func NewFileSystemError(message string, cause error) *FileSystemError {
	return &FileSystemError{
		ScanError: &ScanError{Message: message, Cause: cause},
	}
}
