package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCart_Totals(t *testing.T) {
	cart := Cart{Items: []LineItem{
		{Product: Product{ID: 1, Price: decimal.RequireFromString("9.99")}, Quantity: 2},
		{Product: Product{ID: 2, Price: decimal.RequireFromString("0.50")}, Quantity: 1},
	}}

	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, "20.48", cart.Subtotal().StringFixed(2))
	assert.False(t, cart.IsEmpty())

	item, ok := cart.Find(2)
	assert.True(t, ok)
	assert.Equal(t, 1, item.Quantity)

	_, ok = cart.Find(3)
	assert.False(t, ok)
}

func TestProduct_DiscountedPrice(t *testing.T) {
	p := Product{Price: decimal.NewFromInt(200), DiscountPercentage: decimal.RequireFromString("12.5")}

	assert.Equal(t, "175.00", p.DiscountedPrice().StringFixed(2))
}

func TestSession_Authenticated(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
	assert.False(t, AnonymousSession().Authenticated())
	assert.True(t, (&Session{AccessToken: "abc"}).Authenticated())
}
