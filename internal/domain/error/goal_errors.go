package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal does not exist or is owned by someone else.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrParentGoalNotFound is returned when the requested parent goal is not visible to the caller.
	ErrParentGoalNotFound = errors.New("parent goal not found")

	// ErrGoalCategoryNotFound is returned when the requested category is not visible to the caller.
	ErrGoalCategoryNotFound = errors.New("category not found")

	// ErrEmptyGoalTitle is returned when the title is blank after trimming.
	ErrEmptyGoalTitle = errors.New("title is required")

	// ErrInvalidTimeframe is returned for an unknown timeframe.
	ErrInvalidTimeframe = errors.New("invalid timeframe")

	// ErrInvalidGoalStatus is returned for an unknown status.
	ErrInvalidGoalStatus = errors.New("invalid status")

	// ErrInvalidGoalPriority is returned for an unknown priority.
	ErrInvalidGoalPriority = errors.New("invalid priority")

	// ErrInvalidGoalDate is returned when a date cannot be parsed.
	ErrInvalidGoalDate = errors.New("invalid date")

	// ErrEndBeforeStart is returned when the end date precedes the start date.
	ErrEndBeforeStart = errors.New("end date before start date")

	// ErrInvalidMetric is returned when the target/current pair is inconsistent.
	ErrInvalidMetric = errors.New("invalid metric values")

	// ErrSelfParent is returned when a goal is made its own parent.
	ErrSelfParent = errors.New("goal cannot be its own parent")

	// ErrCircularReference is returned when a parent assignment would create a cycle.
	ErrCircularReference = errors.New("circular reference")

	// ErrContradictoryGoalPatch is returned when a patch both sets and clears the same field.
	ErrContradictoryGoalPatch = errors.New("field cannot be set and cleared together")

	// ErrGoalSubtreeChanged is returned when the subtree changed while it was being deleted.
	ErrGoalSubtreeChanged = errors.New("goal subtree changed during delete")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound         GoalErrorCode = "GOL-010001"
	ErrCodeEmptyGoalTitle       GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTimeframe     GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalStatus    GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalPriority  GoalErrorCode = "GOL-010005"
	ErrCodeInvalidGoalDate      GoalErrorCode = "GOL-010006"
	ErrCodeEndBeforeStart       GoalErrorCode = "GOL-010007"
	ErrCodeInvalidMetric        GoalErrorCode = "GOL-010008"
	ErrCodeParentGoalNotFound   GoalErrorCode = "GOL-010009"
	ErrCodeGoalCategoryNotFound GoalErrorCode = "GOL-010010"
	ErrCodeSelfParent           GoalErrorCode = "GOL-010011"
	ErrCodeCircularReference    GoalErrorCode = "GOL-010012"
	ErrCodeMissingGoalFields    GoalErrorCode = "GOL-010013"
	ErrCodeContradictoryPatch   GoalErrorCode = "GOL-010014"

	// Storage errors (02XXXX)
	ErrCodeGoalSubtreeChanged GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code as a plain string.
func (e *GoalError) ErrorCode() string {
	return string(e.Code)
}

// ErrorMessage returns the message without the wrapped cause.
func (e *GoalError) ErrorMessage() string {
	return e.Message
}

// Kind classifies the error.
func (e *GoalError) Kind() ErrorKind {
	switch e.Code {
	case ErrCodeGoalNotFound, ErrCodeParentGoalNotFound, ErrCodeGoalCategoryNotFound:
		return KindNotFound
	case ErrCodeGoalSubtreeChanged:
		return KindInternal
	default:
		return KindValidation
	}
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
