package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type checkoutForm struct {
	AssetID    string `validate:"required" label:"asset"`
	CheckoutTo string `validate:"required,max=64" label:"checkout to"`
	Note       string `validate:"max=128"`
}

func TestValidatePasses(t *testing.T) {
	cv := New()
	err := cv.Validate(checkoutForm{AssetID: "a-1", CheckoutTo: "Alice"})
	assert.NoError(t, err)
}

func TestValidateUsesLabelInMessage(t *testing.T) {
	cv := New()
	err := cv.Validate(checkoutForm{CheckoutTo: "Alice"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "asset")
	assert.Contains(t, err.Error(), "required")
}

func TestValidateFallsBackToFieldName(t *testing.T) {
	cv := New()
	err := cv.Validate(checkoutForm{AssetID: "a-1", CheckoutTo: "Alice", Note: string(make([]byte, 200))})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Note")
}
