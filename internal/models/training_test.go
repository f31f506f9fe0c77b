package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingOptionAcceptsStringAndObject(t *testing.T) {
	var options []PricingOption
	payload := `["Early Bird", {"name": "Group Rate", "price": 1200}, "Standard"]`

	require.NoError(t, json.Unmarshal([]byte(payload), &options))
	assert.Equal(t, []string{"Early Bird", "Group Rate", "Standard"}, NormalizePricingOptions(options))
}

func TestPricingOptionRejectsOtherShapes(t *testing.T) {
	var option PricingOption
	assert.Error(t, json.Unmarshal([]byte(`42`), &option))
}

func TestPricingOptionMarshalsAsString(t *testing.T) {
	out, err := json.Marshal([]PricingOption{{Name: "Standard"}})
	require.NoError(t, err)
	assert.JSONEq(t, `["Standard"]`, string(out))
}
