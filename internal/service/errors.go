package service

type ErrorCode string

const (
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeAlreadyEnrolled  ErrorCode = "ALREADY_ENROLLED"
	ErrorCodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"
	ErrorCodeNotEnrolled      ErrorCode = "NOT_ENROLLED"
	ErrorCodeUnspecified      ErrorCode = "UNSPECIFIED"
	ErrorCodeInvalidBody      ErrorCode = "INVALID_BODY"
)

type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func (e *Error) Error() string {
	return e.Message
}
