// Package support delivers contact-form messages. Delivery failures are
// logged and reported as ErrNotSubmitted; nothing is retried.
package support

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/rockstar_shop/internal/events"
	"github.com/Skotchmaster/rockstar_shop/internal/logging"
	"github.com/Skotchmaster/rockstar_shop/internal/metrics"
	"github.com/go-playground/validator"
	"golang.org/x/time/rate"
)

var (
	ErrInvalidForm  = errors.New("invalid support form")
	ErrNotSubmitted = errors.New("support request not submitted")
	ErrRateLimited  = errors.New("too many support requests")
)

type Form struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

// FormError lists every rejected field.
type FormError struct {
	Fields []string
}

func (e *FormError) Error() string {
	return ErrInvalidForm.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *FormError) Unwrap() error { return ErrInvalidForm }

type Sender interface {
	Send(ctx context.Context, f Form) error
}

type Service struct {
	sender   Sender
	limiter  *rate.Limiter
	validate *validator.Validate
	metrics  *metrics.Metrics
	events   events.Publisher
}

// NewService wires a sender. A nil limiter means unthrottled.
func NewService(sender Sender, limiter *rate.Limiter, m *metrics.Metrics, pub events.Publisher) *Service {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Service{
		sender:   sender,
		limiter:  limiter,
		validate: validator.New(),
		metrics:  m,
		events:   pub,
	}
}

func (s *Service) Submit(ctx context.Context, deviceID string, f Form) error {
	l := logging.FromContext(ctx).With("component", "support", "device", deviceID)

	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)

	if err := s.validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		l.Warn("support_failed", "status", 400, "reason", "validation")
		return &FormError{Fields: describe(verrs)}
	}

	if !s.limiter.Allow() {
		s.metrics.Support(ErrRateLimited)
		l.Warn("support_failed", "status", 429, "reason", "rate limited")
		return fmt.Errorf("%w: %w", ErrNotSubmitted, ErrRateLimited)
	}

	if err := s.sender.Send(ctx, f); err != nil {
		s.metrics.Support(err)
		l.Error("support_failed", "status", 502, "reason", "send", logging.Err(err))
		return fmt.Errorf("%w: %v", ErrNotSubmitted, err)
	}

	s.metrics.Support(nil)
	events.Emit(ctx, s.events, events.TopicSupport, deviceID, events.SupportSubmitted, map[string]any{
		"email": f.Email,
	})
	l.Info("support_submitted")
	return nil
}

func describe(errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.ActualTag() {
		case "required":
			out = append(out, fmt.Sprintf("field %s is a required field", field))
		case "email":
			out = append(out, fmt.Sprintf("field %s must be a valid email", field))
		case "max":
			out = append(out, fmt.Sprintf("field %s is too long", field))
		default:
			out = append(out, fmt.Sprintf("field %s is not valid", field))
		}
	}
	return out
}
