package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
	"vigil/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerTimezoneValidation accepts only identifiers the IANA timezone
// database can load. An empty value passes; combine with required when the
// field is mandatory.
func registerTimezoneValidation(field val.FieldLevel) bool {
	tzID, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if tzID == "" {
		return true
	}

	_, err := time.LoadLocation(tzID)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("tzid", registerTimezoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})

	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
