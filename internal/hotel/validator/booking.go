package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"innkeeper/pkg/logger"
	"innkeeper/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// BookingValidator checks booking requests before the engine touches any
// state. grace is how far in the past a start date may lie, so a same-day
// booking stays valid regardless of the caller's clock.
type BookingValidator struct {
	validate *validator.Validate
	grace    time.Duration
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger, grace time.Duration) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		grace:    grace,
		logger:   log,
	}
}

func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if strings.TrimSpace(req.ReservationID) == "" {
		return ValidationErrors{
			ValidationError{
				Field:   "ReservationID",
				Message: "reservation_id cannot be blank",
			},
		}
	}

	if req.StartDate.Before(time.Now().Add(-v.grace)) {
		return ValidationErrors{
			ValidationError{
				Field:   "StartDate",
				Message: "start_date cannot be in the past",
			},
		}
	}

	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
