package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountUsableWindow(t *testing.T) {
	now := time.Now()
	discount := Discount{
		Type:       DiscountTypePercent,
		Value:      10,
		ValidFrom:  now.Add(-time.Hour),
		ValidUntil: now.Add(time.Hour),
		IsActive:   true,
	}

	assert.True(t, discount.Usable(now))
	assert.False(t, discount.Usable(now.Add(-2*time.Hour)), "before the window")
	assert.False(t, discount.Usable(now.Add(2*time.Hour)), "after the window")

	discount.IsActive = false
	assert.False(t, discount.Usable(now), "inactive codes never apply")
}

func TestDiscountUsableLimit(t *testing.T) {
	discount := Discount{Type: DiscountTypeFixed, Value: 5, IsActive: true}

	assert.True(t, discount.Usable(time.Now()), "zero limit means unlimited")

	discount.UsageLimit = 3
	discount.UsageCount = 2
	assert.True(t, discount.Usable(time.Now()))

	discount.UsageCount = 3
	assert.False(t, discount.Usable(time.Now()), "exhausted codes stop applying")
}

func TestDiscountApply(t *testing.T) {
	percent := Discount{Type: DiscountTypePercent, Value: 25}
	assert.Equal(t, float64(75), percent.Apply(100))

	fixed := Discount{Type: DiscountTypeFixed, Value: 30}
	assert.Equal(t, float64(70), fixed.Apply(100))

	assert.Equal(t, float64(0), fixed.Apply(20), "a discount never drives the amount negative")
}
