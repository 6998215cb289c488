// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/quantumbooks/internal/platform/apperr"
	"github.com/taibuivan/quantumbooks/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Java 101", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("title", tt.value)

			if tt.hasError {
				err := v.Err()
				require.Error(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, "title", ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Numbers covers Min and NonNegative at their boundaries.
*/
func TestValidator_Numbers(t *testing.T) {
	assert.False(t, (&validate.Validator{}).Min("quantity", 1, 1).HasErrors())
	assert.True(t, (&validate.Validator{}).Min("quantity", 0, 1).HasErrors())
	assert.True(t, (&validate.Validator{}).Min("quantity", -3, 1).HasErrors())

	assert.False(t, (&validate.Validator{}).NonNegative("price", 0).HasErrors())
	assert.False(t, (&validate.Validator{}).NonNegative("price", 99.5).HasErrors())
	assert.True(t, (&validate.Validator{}).NonNegative("price", -0.01).HasErrors())
}

/*
TestValidator_NonNegative_NonFinite verifies that NaN and infinities are rejected.
*/
func TestValidator_NonNegative_NonFinite(t *testing.T) {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := (&validate.Validator{}).NonNegative("price", value).Err()
		require.Error(t, err, "value %v", value)
		assert.Equal(t, "Must be a finite number", apperr.As(err).Details[0].Message)
	}
}

func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	v.OneOf("kind", "physical", "physical", "digital")
	assert.False(t, v.HasErrors())

	v.OneOf("kind", "vinyl", "physical", "digital")
	require.True(t, v.HasErrors())

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, "Must be one of: physical, digital", ae.Details[0].Message)
}

func TestValidator_Email(t *testing.T) {
	assert.False(t, (&validate.Validator{}).Email("email", "buyer@example.com").HasErrors())
	assert.True(t, (&validate.Validator{}).Email("email", "buyer@").HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	err := (&validate.Validator{}).
		Required("isbn", "").
		NonNegative("price", -1).
		Min("stock", -1, 0).
		Custom("year", true, "Must be a four digit year").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 4)
}
