package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupBody struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=100"`
}

func TestValidateStructOK(t *testing.T) {
	assert.NoError(t, ValidateStruct(signupBody{
		Username: "ana",
		Email:    "ana@example.com",
	}))
}

func TestValidateStructMessages(t *testing.T) {
	tests := []struct {
		name string
		body signupBody
		want string
	}{
		{
			"missing username",
			signupBody{Email: "ana@example.com"},
			"username must not be empty",
		},
		{
			"username too short",
			signupBody{Username: "ab", Email: "ana@example.com"},
			"username must have at least 3 characters",
		},
		{
			"bad email",
			signupBody{Username: "ana", Email: "not-an-email"},
			"email is not a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.body)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateStructJoinsAllFailures(t *testing.T) {
	err := ValidateStruct(signupBody{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username must not be empty")
	assert.Contains(t, err.Error(), "email must not be empty")
}

func TestValidateStructUsesJSONFieldNames(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	err := ValidateStruct(signupBody{Username: "ana", Email: "ana@example.com", FullName: string(long)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "full_name must have at most 100 characters")
	assert.NotContains(t, err.Error(), "FullName")
}
