// AngelaMos | 2026
// errors_test.go

package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username       string `validate:"required"`
	Password       string `validate:"required,min=8"`
	FirstName      string `validate:"required"`
	LastName       string `validate:"required"`
	PhoneNumber    string `validate:"required"`
	BillingAddress string `validate:"required"`
	Email          string `validate:"omitempty,email"`
}

func TestFormatValidationError_FieldOrderIsStable(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.Struct(signupForm{})
	require.Error(t, err)

	want := "username is required; password is required; " +
		"first_name is required; last_name is required; " +
		"phone_number is required; billing_address is required"

	// Same input, same message, every time.
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, FormatValidationError(err))
	}
}

func TestFormatValidationError_SingleField(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.Struct(signupForm{
		Username:       "clerk",
		Password:       "short",
		FirstName:      "Casey",
		LastName:       "Clerk",
		PhoneNumber:    "+15550100",
		BillingAddress: "7 Till Lane",
	})
	require.Error(t, err)

	assert.Equal(
		t,
		"password must be at least 8 characters",
		FormatValidationError(err),
	)
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Equal(
		t,
		"validation failed",
		FormatValidationError(assert.AnError),
	)
}
