// Package submission turns event suggestions and contact messages into
// email relay dispatches and reports the outcome as a Result.
package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"poeHub/internal/lib/datetime"
	"poeHub/internal/lib/logger/sl"
	"poeHub/internal/lib/sanitize"
	"poeHub/internal/lib/slug"
	"poeHub/internal/models"
	"poeHub/internal/relay"
	"poeHub/internal/suggestion"
)

const SenderName = "Event Suggestion Form"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Dispatcher
type Dispatcher interface {
	Send(ctx context.Context, serviceID, publicKey string, p relay.Payload) (*relay.Response, error)
}

// Meta is request context that is not part of the form itself.
type Meta struct {
	// SenderEmail overrides the email typed into the form when set.
	SenderEmail string
	PageURL     string
}

type Pipeline struct {
	log        *slog.Logger
	dispatcher Dispatcher
	creds      relay.Credentials
	template   relay.SuggestionTemplate
	loc        *time.Location
	validate   *validator.Validate

	now    func() time.Time
	newRef func() string
}

func New(log *slog.Logger, dispatcher Dispatcher, creds relay.Credentials, loc *time.Location) *Pipeline {
	return &Pipeline{
		log:        log,
		dispatcher: dispatcher,
		creds:      creds,
		template:   relay.NewSuggestionTemplate(creds),
		loc:        loc,
		validate:   validator.New(),
		now:        time.Now,
		newRef:     uuid.NewString,
	}
}

// Submit validates in, builds the publishable event record and mails it to
// the maintainers. It never panics; every failure is reported in the Result.
func (p *Pipeline) Submit(ctx context.Context, in models.EventSuggestionInput, meta Meta) (res Result) {
	const op = "submission.Pipeline.Submit"

	log := p.log.With(slog.String("op", op))

	s, err := suggestion.New(in, p.loc)
	if err != nil {
		var vErr *suggestion.ValidationError
		if errors.As(err, &vErr) {
			log.Info("suggestion rejected", slog.Int("errors", len(vErr.Result.Errors)))

			res = failure(TypeValidation, vErr.Error())
			res.Errors = vErr.Result.Errors

			return res
		}

		return failure(TypeUnknown, MsgUnknown)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("suggestion pipeline panicked", slog.Any("panic", r))
			res = failure(classifyPanic(r), messageFor(classifyPanic(r)))
		}
	}()

	valid := s.Input()

	name := sanitize.HTML(valid.Name)
	description := sanitize.HTML(valid.Description)
	id := slug.Generate(name)

	startDate := datetime.Normalize(datetime.Combine(valid.StartDate, valid.StartTime), s.Location())
	endDate := datetime.Normalize(datetime.Combine(valid.EndDate, valid.EndTime), s.Location())
	if startDate == "" || endDate == "" {
		return failure(TypeValidation, MsgInvalidDates)
	}

	record := models.Event{
		ID:             id,
		Name:           name,
		StartDate:      startDate,
		EndDate:        endDate,
		Game:           valid.Game,
		Type:           models.DefaultEventType,
		BannerImageURL: valid.BannerImageURL,
		Description:    description,
		DetailsLink:    valid.DetailsLink,
	}

	eventJSON, err := MarshalEvent(record)
	if err != nil {
		log.Error("failed to serialize event", sl.Err(err))
		return failure(TypeUnknown, MsgUnknown)
	}

	senderEmail := meta.SenderEmail
	if senderEmail == "" {
		senderEmail = valid.Email
	}

	payload := p.template(relay.Suggestion{
		FromName:    SenderName,
		FromEmail:   senderEmail,
		EventJSON:   eventJSON,
		PageURL:     meta.PageURL,
		SubmittedAt: p.now().UTC().Format(time.RFC3339),
	})

	res = p.dispatch(ctx, log, payload)
	if res.Success {
		res.EventID = id
		log.Info("event suggestion sent", slog.String("event_id", id), slog.String("reference", res.Reference))
	}

	return res
}

// SubmitContact validates and sends a contact dialog message.
func (p *Pipeline) SubmitContact(ctx context.Context, in models.ContactInput, meta Meta) (res Result) {
	const op = "submission.Pipeline.SubmitContact"

	log := p.log.With(slog.String("op", op))

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	if err := p.validate.Struct(in); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			res = failure(TypeValidation, "Please check the highlighted fields")
			res.Errors = contactFieldErrors(vErrs)

			return res
		}

		return failure(TypeUnknown, MsgUnknown)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("contact pipeline panicked", slog.Any("panic", r))
			res = failure(classifyPanic(r), messageFor(classifyPanic(r)))
		}
	}()

	name := in.Name
	if name == "" {
		name = "Anonymous"
	}

	subject := in.Subject
	if subject == "" {
		subject = "Contact form message"
	}

	message := sanitize.HTML(in.Message)
	if meta.PageURL != "" {
		message += "\n\nSent from " + meta.PageURL
	}

	res = p.dispatch(ctx, log, relay.ContactTemplatePayload{
		Template:  p.creds.ContactTemplateID,
		FromName:  sanitize.HTML(name),
		FromEmail: in.Email,
		Subject:   sanitize.HTML(subject),
		Message:   message,
	})
	if res.Success {
		log.Info("contact message sent", slog.String("reference", res.Reference))
	}

	return res
}

func (p *Pipeline) dispatch(ctx context.Context, log *slog.Logger, payload relay.Payload) Result {
	if err := p.creds.Check(payload.TemplateID()); err != nil {
		log.Error("email relay not configured", sl.Err(err))
		return failure(TypeConfiguration, MsgConfiguration)
	}

	resp, err := p.dispatcher.Send(ctx, p.creds.ServiceID, p.creds.PublicKey, payload)
	if err != nil {
		t := classify(err)
		log.Error("email relay dispatch failed", sl.Err(err), slog.String("type", string(t)))

		return failure(t, messageFor(t))
	}

	if resp == nil || resp.Status != http.StatusOK {
		status, text := 0, ""
		if resp != nil {
			status, text = resp.Status, resp.Text
		}
		log.Error("email relay rejected message", slog.Int("status", status), slog.String("text", text))

		return failure(TypeAPI, fmt.Sprintf("Email service returned an error (status %d). Please try again.", status))
	}

	return Result{
		Success:   true,
		Reference: p.newRef(),
	}
}

// MarshalEvent renders record as 2-space indented JSON, ready to be pasted
// into the published events file.
func MarshalEvent(record models.Event) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(record); err != nil {
		return "", fmt.Errorf("submission.MarshalEvent: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

var networkHints = []string{"network", "fetch", "connection", "timeout", "dial", "no such host"}

func classify(err error) ErrorType {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return TypeNetwork
	}

	msg := strings.ToLower(err.Error())
	for _, hint := range networkHints {
		if strings.Contains(msg, hint) {
			return TypeNetwork
		}
	}

	return TypeUnknown
}

func classifyPanic(r any) ErrorType {
	if err, ok := r.(error); ok {
		return classify(err)
	}

	return classify(fmt.Errorf("%v", r))
}

func messageFor(t ErrorType) string {
	if t == TypeNetwork {
		return MsgNetwork
	}

	return MsgUnknown
}

func contactFieldErrors(errs validator.ValidationErrors) []models.FieldError {
	out := make([]models.FieldError, 0, len(errs))

	for _, e := range errs {
		field := strings.ToLower(e.Field())

		var msg string
		switch e.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", e.Field())
		case "email":
			msg = "Please enter a valid email address"
		case "max":
			msg = fmt.Sprintf("%s must be %s characters or less", e.Field(), e.Param())
		default:
			msg = fmt.Sprintf("%s is not valid", e.Field())
		}

		out = append(out, models.FieldError{Field: field, Message: msg})
	}

	return out
}
