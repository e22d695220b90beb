package submission

import "poeHub/internal/models"

type ErrorType string

const (
	TypeValidation    ErrorType = "validation"
	TypeConfiguration ErrorType = "configuration"
	TypeAPI           ErrorType = "api"
	TypeNetwork       ErrorType = "network"
	TypeUnknown       ErrorType = "unknown"
)

// Retryable reports whether resubmitting the same data can succeed.
func (t ErrorType) Retryable() bool {
	switch t {
	case TypeAPI, TypeNetwork, TypeUnknown:
		return true
	default:
		return false
	}
}

const (
	MsgConfiguration = "Email service is not configured. Please contact the site administrator."
	MsgNetwork       = "Network error. Please check your connection and try again."
	MsgUnknown       = "An unexpected error occurred. Please try again."
	MsgInvalidDates  = "Invalid date format"
)

type Result struct {
	Success   bool                `json:"success"`
	Error     string              `json:"error,omitempty"`
	Type      ErrorType           `json:"type,omitempty"`
	Retryable bool                `json:"retryable,omitempty"`
	Errors    []models.FieldError `json:"errors,omitempty"`
	EventID   string              `json:"eventId,omitempty"`
	Reference string              `json:"reference,omitempty"`
}

func failure(t ErrorType, msg string) Result {
	return Result{
		Error:     msg,
		Type:      t,
		Retryable: t.Retryable(),
	}
}
