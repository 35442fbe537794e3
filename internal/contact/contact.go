// Package contact models the page's contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// ErrNoSubmitter is returned when a form is sent with no delivery backend configured.
var ErrNoSubmitter = errors.New("contact: no submitter configured")

// Form is the data entered in the contact section.
type Form struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

// Submitter delivers a validated form.
type Submitter interface {
	Submit(ctx context.Context, form Form) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, form Form) error

func (fn SubmitterFunc) Submit(ctx context.Context, form Form) error {
	return fn(ctx, form)
}

var fieldOrder = []string{"name", "email", "message"}

var fieldMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Normalized returns the form with surrounding whitespace removed from every field.
func (f Form) Normalized() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate returns a *errors.ValidationError for the first failing field, checked in the
// order name, email, message.
func (f Form) Validate() error {
	fields := f.FieldErrors()
	for _, name := range fieldOrder {
		if msg, ok := fields[name]; ok {
			return folioerrors.NewValidationError(name, msg, nil)
		}
	}
	return nil
}

// FieldErrors maps each failing field (lower case) to a short message.
func (f Form) FieldErrors() map[string]string {
	out := make(map[string]string)

	err := validatorInstance().Struct(f.Normalized())
	if err == nil {
		return out
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		out["form"] = err.Error()
		return out
	}

	for _, fe := range ves {
		field := strings.ToLower(fe.Field())
		if _, seen := out[field]; seen {
			continue
		}
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
		}
		out[field] = msg
	}
	return out
}

// Send validates form and hands the normalized copy to submitter.
func Send(ctx context.Context, submitter Submitter, form Form) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if submitter == nil {
		return ErrNoSubmitter
	}
	if err := submitter.Submit(ctx, form.Normalized()); err != nil {
		return fmt.Errorf("send contact form: %w", err)
	}
	return nil
}
