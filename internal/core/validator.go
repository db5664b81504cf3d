package core

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"swimcast/internal/types"
)

// Validator wraps go-playground/validator with AppError translation so
// handlers get structured, client-safe validation failures.
type Validator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewValidator constructs a Validator with struct tag validation enabled.
func NewValidator(logger *slog.Logger) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &Validator{validate: v, logger: logger}
}

// ValidateStruct validates s against its struct tags. On failure it returns
// an AppError whose details map field names to the violated constraint.
func (v *Validator) ValidateStruct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		v.logger.Error("validator internal error", slog.String("error", err.Error()))
		return types.NewAppError(types.ErrCodeInternalUnexpected, "validation could not be performed", err)
	}

	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[fieldName(fe)] = constraintMessage(fe)
	}

	return types.NewAppErrorWithDetails(
		types.ErrCodeValidationInvalidPayload,
		"request payload failed validation",
		err,
		details,
	)
}

// Var validates a single value against a tag expression, for query and path
// parameters that have no struct tags.
func (v *Validator) Var(value any, tag string) error {
	return v.validate.Var(value, tag)
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace is Type.Field (possibly nested); drop the type prefix.
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	default:
		return fmt.Sprintf("failed constraint %q", fe.Tag())
	}
}
