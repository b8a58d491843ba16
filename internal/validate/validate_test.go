package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	for _, ok := range []string{"", "admin", "hr", "employee", " hr "} {
		_, got := Role(ok)
		assert.True(t, got, ok)
	}
	for _, bad := range []string{"ADMIN", "root", "manager"} {
		_, got := Role(bad)
		assert.False(t, got, bad)
	}
}

type sample struct {
	Email string  `json:"email" validate:"required,email"`
	Role  *string `json:"role" validate:"omitempty,role"`
}

func TestStruct(t *testing.T) {
	hr, root := "hr", "root"
	assert.NoError(t, Struct(sample{Email: "a@b.co", Role: &hr}))
	assert.NoError(t, Struct(sample{Email: "a@b.co"}))

	err := Struct(sample{Email: "nope", Role: &root})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "email failed email")
		assert.Contains(t, err.Error(), "role failed role")
	}
}
