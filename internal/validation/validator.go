// Package validation checks request payloads and turns rule violations into
// apperrors.ValidationError with one readable message per field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"bus_transport/internal/apperrors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// messages is keyed by "<json field>.<tag>".
var messages = map[string]string{
	"title.notblank":       "Title cannot be blank",
	"source.notblank":      "Source cannot be blank",
	"destination.notblank": "Destination cannot be blank",
	// bus_routes.stations is size:1000, which sqlite does not enforce
	"stations.max":         "Stations cannot exceed 1000 characters",
	"busNo.notblank":       "Bus number cannot be blank",
	"routeId.required":     "Route ID cannot be null",
}

func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
	})
	return validate
}

// Struct validates v against its `validate` tags. Rule violations come back
// as *apperrors.ValidationError; anything else is returned unchanged.
func Struct(v any) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &apperrors.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
}
