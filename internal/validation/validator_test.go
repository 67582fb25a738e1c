package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/prepstock/prepstock-server/internal/errors"
	"github.com/prepstock/prepstock-server/internal/validation"
)

type addItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Section  string `json:"section" validate:"required,oneof=DEPOT STORE BAKERY OTHER"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

func TestValidate_Passes(t *testing.T) {
	v := validation.New()

	err := v.Validate(addItemRequest{Name: "HOT SAUCE", Section: "STORE", Quantity: 1})

	assert.NoError(t, err)
}

func TestValidate_ReturnsValidationErrorWithJSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(addItemRequest{Section: "PANTRY", Quantity: 0})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "section")
	assert.Contains(t, details, "quantity")
}
