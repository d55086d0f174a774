// Package forms binds and validates the dashboard admin forms.
package forms

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"publicdashboard/internal/service"
	"publicdashboard/internal/storage"
)

// Form field names.
const (
	FieldName        = "name"
	FieldComponentID = "component_id"
	FieldToken       = "token"
)

// ComponentLookup reports whether a component id is registered.
type ComponentLookup func(id string) bool

// DashboardForm is the create and modify form of a dashboard.
type DashboardForm struct {
	Name        string `form:"name" validate:"required,max=255"`
	ComponentID string `form:"component_id" validate:"required,max=100,component"`
}

// Errors collects the field errors of one submission.
type Errors []*service.ValidationError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (e Errors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, fe := range e {
		errs[i] = fe
	}
	return errs
}

// Messages returns one display line per field error.
func (e Errors) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + " " + fe.Message
	}
	return msgs
}

// Parse reads a DashboardForm from the request body.
func Parse(r *http.Request) (DashboardForm, error) {
	if err := r.ParseForm(); err != nil {
		return DashboardForm{}, fmt.Errorf("failed to parse form: %w", err)
	}
	return DashboardForm{
		Name:        strings.TrimSpace(r.PostForm.Get(FieldName)),
		ComponentID: strings.TrimSpace(r.PostForm.Get(FieldComponentID)),
	}, nil
}

// FromDashboard fills a form from a stored record.
func FromDashboard(d *storage.Dashboard) DashboardForm {
	if d == nil {
		return DashboardForm{}
	}
	return DashboardForm{Name: d.Name, ComponentID: d.ComponentID}
}

// Apply copies the form values onto d, leaving id and position alone.
func (f DashboardForm) Apply(d *storage.Dashboard) {
	d.Name = f.Name
	d.ComponentID = f.ComponentID
}

// Validator checks forms against their tags and the component registry.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator. known decides which component ids are accepted.
func NewValidator(known ComponentLookup) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("component", func(fl validator.FieldLevel) bool {
		return known(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate returns nil or an Errors value describing every invalid field.
func (v *Validator) Validate(form DashboardForm) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate form: %w", err)
	}

	errs := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &service.ValidationError{Field: fe.Field(), Message: message(fe)})
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "component":
		return fmt.Sprintf("%q is not a known component", fe.Value())
	default:
		return "is invalid"
	}
}
