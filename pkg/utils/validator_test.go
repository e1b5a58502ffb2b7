package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string  `json:"name" validate:"required,min=3"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Score int     `json:"score" validate:"gte=1,lte=5"`
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	bad := "nope"
	fields := ValidateStruct(sample{Name: "ab", Email: &bad, Score: 9})

	assert.Equal(t, map[string]string{
		"name":  "Minimum length is 3",
		"email": "Invalid email format",
		"score": "Must be at most 5",
	}, fields)
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Name: "alice", Score: 3}))
}

func TestFormatValidationErrors_IsSorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"title": "This field is required", "rating": "Must be at most 5"})
	assert.Equal(t, "rating: Must be at most 5; title: This field is required", got)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}
