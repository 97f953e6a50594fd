package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromotionValidateCode(t *testing.T) {
	promo, err := NewPromotion("WELCOME10", 10, "10% off", true)
	require.NoError(t, err)

	assert.True(t, promo.ValidateCode("WELCOME10"))
	assert.False(t, promo.ValidateCode("welcome10"))
	assert.False(t, promo.ValidateCode("OTHER"))

	promo.Active = false
	assert.False(t, promo.ValidateCode("WELCOME10"))
}

func TestPromotionApplyDiscount(t *testing.T) {
	promo, err := NewPromotion("WELCOME10", 10, "10% off", true)
	require.NoError(t, err)

	assert.Equal(t, 22.5, promo.ApplyDiscount(25.0))
	// 19.99 - 1.999 = 17.991, rounds to 17.99
	assert.Equal(t, 17.99, promo.ApplyDiscount(19.99))
}

func TestPromotionApplyDiscountInactivePassthrough(t *testing.T) {
	promo, err := NewPromotion("WELCOME10", 10, "10% off", false)
	require.NoError(t, err)

	assert.Equal(t, 25.0, promo.ApplyDiscount(25.0))
}

func TestPromotionUpdate(t *testing.T) {
	promo, err := NewPromotion("WELCOME10", 10, "10% off", true)
	require.NoError(t, err)

	newDiscount := 25.0
	require.NoError(t, promo.Update("SUMMER25", &newDiscount, "summer sale", true))
	assert.Equal(t, "SUMMER25", promo.Code)
	assert.Equal(t, 25.0, promo.Discount)

	// Nil discount keeps the current value.
	require.NoError(t, promo.Update("", nil, "", false))
	assert.Equal(t, "SUMMER25", promo.Code)
	assert.Equal(t, 25.0, promo.Discount)
	assert.False(t, promo.Active)

	bad := 101.0
	err = promo.Update("", &bad, "", true)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewPromotionValidation(t *testing.T) {
	_, err := NewPromotion("", 10, "desc", true)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPromotion("CODE", -1, "desc", true)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPromotion("CODE", 101, "desc", true)
	assert.ErrorIs(t, err, ErrValidation)
}
