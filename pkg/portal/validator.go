package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	Errors   map[string]any
	instance *validator.Validate
}

func GetDefaultValidator() *Validator {
	return MakeValidatorFrom(
		validator.New(
			validator.WithRequiredStructEnabled(),
		),
	)
}

func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	return &Validator{
		Errors:   make(map[string]any),
		instance: abstract,
	}
}

func (v *Validator) Passes(target any) (bool, error) {
	v.Errors = make(map[string]any)

	if err := v.instance.Struct(target); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return false, fmt.Errorf("validator: invalid target: %w", err)
		}

		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			for _, field := range fields {
				v.Errors[field.Namespace()] = v.describe(field)
			}
		}

		return false, fmt.Errorf("validator: the given data is invalid: %w", err)
	}

	return true, nil
}

func (v *Validator) Rejects(target any) (bool, error) {
	passes, err := v.Passes(target)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]any {
	return v.Errors
}

func (v *Validator) GetErrorsAsJson() string {
	raw, err := json.Marshal(v.Errors)
	if err != nil {
		return "{}"
	}

	return string(raw)
}

func (v *Validator) describe(field validator.FieldError) string {
	message := fmt.Sprintf("failed on [%s]", field.Tag())

	if param := strings.TrimSpace(field.Param()); param != "" {
		message += fmt.Sprintf(" with param [%s]", param)
	}

	return message
}

// Fork returns a validator that shares the underlying rules but keeps its own
// error bag, so concurrent requests do not see each other's errors.
func (v *Validator) Fork() *Validator {
	return MakeValidatorFrom(v.instance)
}
