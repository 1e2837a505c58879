package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,is-user-role"`
	Phone string `json:"phone" validate:"omitempty,is-phone-ve"`
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(&registerPayload{Email: "not-an-email", Role: "CLIENT"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Equal(t, "Invalid email format", vErr.Errors["email"])
}

func TestValidateStructValid(t *testing.T) {
	err := ValidateStruct(&registerPayload{Email: "a@b.com", Role: "PROFESSIONAL", Phone: "04141234567"})
	assert.NoError(t, err)
}

func TestUserRoleRule(t *testing.T) {
	for _, role := range []string{"CLIENT", "PROFESSIONAL", "ADMIN"} {
		assert.NoError(t, ValidateStruct(&registerPayload{Email: "a@b.com", Role: role}))
	}

	err := ValidateStruct(&registerPayload{Email: "a@b.com", Role: "client"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors["role"], "CLIENT")
}

func TestVenezuelanPhoneRule(t *testing.T) {
	valid := []string{"04141234567", "04241234567", "04121234567"}
	for _, phone := range valid {
		assert.NoError(t, ValidateStruct(&registerPayload{Email: "a@b.com", Role: "CLIENT", Phone: phone}), phone)
	}

	invalid := []string{"4141234567", "0414123456", "041412345678", "05141234567", "+584141234567"}
	for _, phone := range invalid {
		assert.Error(t, ValidateStruct(&registerPayload{Email: "a@b.com", Role: "CLIENT", Phone: phone}), phone)
	}
}

type cedulaPayload struct {
	Cedula string `json:"cedula" validate:"required,is-cedula"`
}

func TestCedulaRule(t *testing.T) {
	assert.NoError(t, ValidateStruct(&cedulaPayload{Cedula: "1234567"}))
	assert.NoError(t, ValidateStruct(&cedulaPayload{Cedula: "12345678"}))

	for _, cedula := range []string{"123456", "123456789", "V1234567", "1234567a"} {
		assert.Error(t, ValidateStruct(&cedulaPayload{Cedula: cedula}), cedula)
	}
}

type statusPayload struct {
	Transaction string `json:"transaction" validate:"omitempty,is-transaction-status"`
	Ticket      string `json:"ticket" validate:"omitempty,is-ticket-status"`
	Discount    string `json:"discount" validate:"omitempty,is-discount-type"`
}

func TestStatusRules(t *testing.T) {
	assert.NoError(t, ValidateStruct(&statusPayload{
		Transaction: "IN_PROGRESS",
		Ticket:      "PENDING_HUMAN_ASSIGNMENT",
		Discount:    "PERCENTAGE",
	}))

	assert.Error(t, ValidateStruct(&statusPayload{Transaction: "DONE"}))
	assert.Error(t, ValidateStruct(&statusPayload{Ticket: "OPEN"}))
	assert.Error(t, ValidateStruct(&statusPayload{Discount: "AMOUNT"}))
}
