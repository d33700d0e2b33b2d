package error

import "errors"

// Future vision domain errors.
var (
	// ErrVisionNotFound is returned when a vision does not exist or is owned by someone else.
	ErrVisionNotFound = errors.New("future vision not found")

	// ErrVisionAlreadyExists is returned when the category already has a vision for the year.
	ErrVisionAlreadyExists = errors.New("future vision already exists")

	// ErrVisionYearOutOfRange is returned when the year falls outside the planning window.
	ErrVisionYearOutOfRange = errors.New("year out of range")

	// ErrVisionDescriptionRequired is returned when the description is blank.
	ErrVisionDescriptionRequired = errors.New("description is required")

	// ErrVisionCategoryNotFound is returned when the category is not visible to the caller.
	ErrVisionCategoryNotFound = errors.New("category not found")
)

// VisionErrorCode defines error codes for future vision errors.
// Format: VIS-XXYYYY where XX is category and YYYY is specific error.
type VisionErrorCode string

const (
	ErrCodeVisionNotFound            VisionErrorCode = "VIS-010001"
	ErrCodeVisionAlreadyExists       VisionErrorCode = "VIS-010002"
	ErrCodeVisionYearOutOfRange      VisionErrorCode = "VIS-010003"
	ErrCodeVisionDescriptionRequired VisionErrorCode = "VIS-010004"
	ErrCodeVisionCategoryNotFound    VisionErrorCode = "VIS-010005"
	ErrCodeMissingVisionFields       VisionErrorCode = "VIS-010006"
)

// VisionError represents a future vision error with code and message.
type VisionError struct {
	Code    VisionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VisionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VisionError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code as a plain string.
func (e *VisionError) ErrorCode() string {
	return string(e.Code)
}

// ErrorMessage returns the message without the wrapped cause.
func (e *VisionError) ErrorMessage() string {
	return e.Message
}

// Kind classifies the error.
func (e *VisionError) Kind() ErrorKind {
	switch e.Code {
	case ErrCodeVisionNotFound, ErrCodeVisionCategoryNotFound:
		return KindNotFound
	case ErrCodeVisionAlreadyExists:
		return KindConflict
	default:
		return KindValidation
	}
}

// NewVisionError creates a new VisionError with the given code and message.
func NewVisionError(code VisionErrorCode, message string, err error) *VisionError {
	return &VisionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
