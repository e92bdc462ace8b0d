package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"shareit/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// notblank rejects strings made only of whitespace.
	if err := validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		return !isBlank(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Validate decodes a JSON body from r into data and validates it.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct reports the first failing field. A msg tag on that field replaces the generic text.
func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err, data)) //nolint:wrapcheck
	}

	return nil
}

// ValidateID fails with errors.400.id unless id is a UUID.
func ValidateID(id string) error {
	if err := uuid.Validate(id); err != nil {
		return failure.BadRequestFromString(MessageInvalidID) //nolint:wrapcheck
	}

	return nil
}
