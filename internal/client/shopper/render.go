package shopper

import (
	"fmt"
	"strings"

	"storefront/internal/client/catalog"
	"storefront/internal/domain/entity"
	"storefront/internal/util"
)

func renderBadge(c entity.Cart) string {
	n := c.TotalItems()
	if n == 1 {
		return "Cart: 1 item"
	}

	return fmt.Sprintf("Cart: %d items", n)
}

func renderCart(c entity.Cart) string {
	if c.IsEmpty() {
		return "Your cart is empty\n"
	}

	var b strings.Builder
	for _, item := range c.Items {
		fmt.Fprintf(&b, "%6d  %-40s %3d x %10s = %10s\n",
			item.Product.ID,
			truncate(item.Product.Title, 40),
			item.Quantity,
			util.FormatPrice(item.Product.Price),
			util.FormatPrice(item.Subtotal()),
		)
	}
	fmt.Fprintf(&b, "Subtotal: %s\n", util.FormatPrice(c.Subtotal()))

	return b.String()
}

func renderPage(page *entity.ProductPage, current int) string {
	var b strings.Builder
	if len(page.Products) == 0 {
		b.WriteString("No products found\n")
	}
	for _, p := range page.Products {
		fmt.Fprintf(&b, "%6d  %-40s %10s  %s\n", p.ID, truncate(p.Title, 40), util.FormatPrice(p.Price), stockLabel(p))
	}
	fmt.Fprintf(&b, "Page %d of %d (%d products)\n", current, catalog.TotalPages(page.Total), page.Total)

	return b.String()
}

func renderProduct(p *entity.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Title)
	if p.Brand != "" {
		fmt.Fprintf(&b, "Brand:    %s\n", p.Brand)
	}
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	if p.DiscountPercentage.IsPositive() {
		fmt.Fprintf(&b, "Price:    %s (was %s, %s%% off)\n",
			util.FormatPrice(p.DiscountedPrice()), util.FormatPrice(p.Price), p.DiscountPercentage.StringFixed(0))
	} else {
		fmt.Fprintf(&b, "Price:    %s\n", util.FormatPrice(p.Price))
	}
	fmt.Fprintf(&b, "Rating:   %s\n", p.Rating.StringFixed(1))
	fmt.Fprintf(&b, "Stock:    %s\n", stockLabel(*p))
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Description)
	}

	return b.String()
}

func stockLabel(p entity.Product) string {
	if !p.InStock() {
		return "out of stock"
	}

	return fmt.Sprintf("%d in stock", p.Stock)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
