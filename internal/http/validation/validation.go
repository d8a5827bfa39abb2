package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

// FromBindError converts a gin bind/validation error into a field->message
// map keyed by form tag. dst is the bound struct pointer, used to read tags.
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	// Other bind failures (type mismatch etc.)
	out["_"] = "Los datos del formulario no son válidos."
	return out
}

func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	tag := f.Tag.Get("form")
	if tag == "" {
		return strings.ToLower(structField)
	}
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "Este campo es obligatorio."
	case "required_if":
		return "Este campo es obligatorio."
	case "oneof":
		return "Valor no permitido."
	case "min":
		return "Debe tener al menos " + param + " caracteres."
	case "max":
		return "Debe tener como máximo " + param + " caracteres."
	default:
		return "Valor inválido."
	}
}

// Message flattens the map into the single all-or-nothing line surfaced
// above the form.
func (fe FieldErrors) Message() string {
	if len(fe) == 0 {
		return ""
	}
	for _, key := range []string{"address"} {
		if _, ok := fe[key]; ok && len(fe) == 1 {
			return "Por favor ingresa la dirección para el delivery"
		}
	}
	return "Por favor completa todos los campos obligatorios"
}
