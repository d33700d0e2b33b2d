package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category does not exist or is owned by someone else.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when the user already has a category with that name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrCategoryNameRequired is returned when the name is blank.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrPresetCategoryProtected is returned when renaming or deleting a preset category.
	ErrPresetCategoryProtected = errors.New("preset categories cannot be renamed or deleted")

	// ErrInvalidCategoryOrder is returned when a reorder request is empty or repeats ids.
	ErrInvalidCategoryOrder = errors.New("invalid category order")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong     CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNotFound        CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNameExists      CategoryErrorCode = "CAT-010005"
	ErrCodePresetCategoryProtected CategoryErrorCode = "CAT-010006"
	ErrCodeMissingCategoryFields   CategoryErrorCode = "CAT-010008"
	ErrCodeInvalidCategoryOrder    CategoryErrorCode = "CAT-010009"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code as a plain string.
func (e *CategoryError) ErrorCode() string {
	return string(e.Code)
}

// ErrorMessage returns the message without the wrapped cause.
func (e *CategoryError) ErrorMessage() string {
	return e.Message
}

// Kind classifies the error.
func (e *CategoryError) Kind() ErrorKind {
	switch e.Code {
	case ErrCodeCategoryNotFound:
		return KindNotFound
	case ErrCodeCategoryNameExists:
		return KindConflict
	case ErrCodePresetCategoryProtected:
		return KindForbidden
	default:
		return KindValidation
	}
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
