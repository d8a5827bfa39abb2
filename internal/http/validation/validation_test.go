package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	FirstName string `form:"first_name" validate:"required"`
	Address   string `form:"address" validate:"required_if=Delivery delivery"`
	Delivery  string `form:"delivery_type" validate:"required,oneof=pickup delivery"`
}

func TestFromBindErrorMapsFormTags(t *testing.T) {
	v := validator.New()
	in := sampleForm{Delivery: "delivery"}
	err := v.Struct(in)
	require.Error(t, err)

	fe := FromBindError(err, &in)
	assert.Equal(t, "Este campo es obligatorio.", fe["first_name"])
	assert.Equal(t, "Este campo es obligatorio.", fe["address"])
}

func TestFromBindErrorNonValidation(t *testing.T) {
	fe := FromBindError(assert.AnError, &sampleForm{})
	assert.Equal(t, "Los datos del formulario no son válidos.", fe["_"])
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", FieldErrors{}.Message())
	assert.Equal(t, "Por favor ingresa la dirección para el delivery",
		FieldErrors{"address": "x"}.Message())
	assert.Equal(t, "Por favor completa todos los campos obligatorios",
		FieldErrors{"first_name": "x", "phone": "y"}.Message())
}
