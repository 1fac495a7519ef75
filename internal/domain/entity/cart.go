package entity

import "github.com/shopspring/decimal"

// LineItem is one product and its quantity within a cart.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price * quantity for the line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an ordered list of line items; insertion order is display order.
// At most one line exists per product id and every quantity is at least 1.
type Cart struct {
	Items []LineItem `json:"items"`
}

// TotalItems returns the sum of all quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

// Subtotal returns the sum of price * quantity over all lines.
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.Subtotal())
	}

	return sum
}

// Find returns the line for productID, if any.
func (c Cart) Find(productID int) (LineItem, bool) {
	for _, item := range c.Items {
		if item.Product.ID == productID {
			return item, true
		}
	}

	return LineItem{}, false
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
