package validator

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	val "github.com/go-playground/validator/v10"
)

const (
	MessageInvalidID = "errors.400.id"
	messageTag       = "msg"
)

var messages = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} must not be blank",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
}

func message(err error, data any) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		if key := tagMessage(data, valErr.StructNamespace(), valErr.Tag()); key != "" {
			return key
		}

		if text := messages[valErr.Tag()]; text != "" {
			text = strings.ReplaceAll(text, "{field}", valErr.Field())

			return strings.ReplaceAll(text, "{param}", valErr.Param())
		}
	}

	return valErrors.Error()
}

// tagMessage resolves the message of the field at namespace, e.g. "CreateUserRequest.Email".
// A msg_<rule> tag wins over the plain msg tag for that rule.
func tagMessage(data any, namespace, rule string) string {
	if data == nil {
		return ""
	}

	typ := reflect.TypeOf(data)

	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return ""
	}

	var tag string

	for _, part := range parts[1:] {
		for typ.Kind() == reflect.Pointer || typ.Kind() == reflect.Slice || typ.Kind() == reflect.Array {
			typ = typ.Elem()
		}

		if typ.Kind() != reflect.Struct {
			return ""
		}

		// Slice elements show up as Field[0].
		if idx := strings.IndexByte(part, '['); idx >= 0 {
			part = part[:idx]
		}

		field, ok := typ.FieldByName(part)
		if !ok {
			return ""
		}

		tag = field.Tag.Get(messageTag + "_" + rule)
		if tag == "" {
			tag = field.Tag.Get(messageTag)
		}

		typ = field.Type
	}

	return tag
}

func isBlank(value string) bool {
	return strings.IndexFunc(value, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
