package validation_test

import (
	"errors"
	"testing"

	"cvconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FullName    string `validate:"required"`
	Email       string `validate:"required,email"`
	Proficiency int    `validate:"gte=0,lte=5"`
}

func TestFieldErrors(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(sample{Email: "nope", Proficiency: 9})
	require.Error(t, err)

	fields := validation.FieldErrors(err)
	assert.Equal(t, "This field is required.", fields["full_name"])
	assert.Equal(t, "Enter a valid email address.", fields["email"])
	assert.Equal(t, "Ensure this value is less than or equal to 5.", fields["proficiency"])
}

func TestFieldErrorsNonValidator(t *testing.T) {
	fields := validation.FieldErrors(errors.New("boom"))
	assert.Equal(t, map[string]string{"detail": "boom"}, fields)
}
