package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Location string   `json:"location" validate:"required,branch"`
	Tags     []string `json:"tags" validate:"omitempty,dive,location"`
	Quantity int      `json:"quantity" validate:"min=1"`
}

func TestRequestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:    "chef@example.com",
		Location: "Thornhill",
		Tags:     []string{"Both"},
		Quantity: 2,
	})

	assert.NoError(t, err)
}

func TestRequestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Location: "Both", Tags: []string{"Downtown"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "location must be North York or Thornhill")
	assert.Contains(t, err.Error(), "tags[0] must be North York, Thornhill or Both")
	assert.Contains(t, err.Error(), "quantity must be at least 1")
}
