package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"poeHub/internal/models"
	"poeHub/internal/submission"
)

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		case "max":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is too long", err.Field()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMsgs, ", "),
	}
}

// FieldErrors flattens a form validation result into a single error line.
// Handlers that need the per-field list send it alongside.
func FieldErrors(errs []models.FieldError) Response {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(msgs, ", "),
	}
}

type SubmissionResponse struct {
	Response
	Type      submission.ErrorType `json:"type,omitempty"`
	Retryable bool                 `json:"retryable,omitempty"`
	Errors    []models.FieldError  `json:"errors,omitempty"`
	EventID   string               `json:"eventId,omitempty"`
	Reference string               `json:"reference,omitempty"`
}

// Submission maps a pipeline result to its HTTP status and body.
func Submission(res submission.Result) (int, SubmissionResponse) {
	if res.Success {
		return http.StatusOK, SubmissionResponse{
			Response:  OK(),
			EventID:   res.EventID,
			Reference: res.Reference,
		}
	}

	body := SubmissionResponse{
		Response:  Error(res.Error),
		Type:      res.Type,
		Retryable: res.Retryable,
		Errors:    res.Errors,
	}

	switch res.Type {
	case submission.TypeValidation:
		return http.StatusBadRequest, body
	case submission.TypeConfiguration:
		return http.StatusServiceUnavailable, body
	case submission.TypeAPI:
		return http.StatusBadGateway, body
	case submission.TypeNetwork:
		return http.StatusGatewayTimeout, body
	default:
		return http.StatusInternalServerError, body
	}
}
