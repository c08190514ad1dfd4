package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type leadForm struct {
	Name  string `json:"name" validate:"notblank,max=100"`
	Phone string `json:"phone" validate:"required,phone10"`
}

func TestCheck_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	fields, first := v.Check(&leadForm{Name: "   ", Phone: "12345"})
	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, PhoneMessage, fields["phone"])
	assert.Equal(t, "name is required", first)

	fields, first = v.Check(&leadForm{Name: "Asha", Phone: "9876543210"})
	assert.Nil(t, fields)
	assert.Empty(t, first)
}

func TestValidatePhone(t *testing.T) {
	for _, ok := range []string{"9876543210", "0000000000"} {
		assert.True(t, ValidatePhone(ok), ok)
	}
	for _, bad := range []string{"", "987654321", "98765432101", "98765-43210", "+919876543210", "98765 43210"} {
		assert.False(t, ValidatePhone(bad), bad)
	}
}

func TestValidatePassword(t *testing.T) {
	ok, errs := ValidatePassword("12345678")
	assert.False(t, ok)
	assert.Len(t, errs, 1)

	ok, errs = ValidatePassword("abc")
	assert.False(t, ok)
	assert.Len(t, errs, 1)

	ok, _ = ValidatePassword("counsel0r")
	assert.True(t, ok)
}
