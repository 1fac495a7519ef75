package entity

import "github.com/shopspring/decimal"

// Product is a read-only snapshot of an upstream catalog item.
type Product struct {
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	Rating             decimal.Decimal `json:"rating"`
	Stock              int             `json:"stock"`
	Brand              string          `json:"brand,omitempty"`
	Thumbnail          string          `json:"thumbnail"`
	Images             []string        `json:"images"`
}

var hundred = decimal.NewFromInt(100)

// DiscountedPrice returns price * (1 - discountPercentage/100).
func (p Product) DiscountedPrice() decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(p.DiscountPercentage.Div(hundred))

	return p.Price.Mul(factor)
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ProductPage is one page of a product listing as returned upstream.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
