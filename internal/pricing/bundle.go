// Package pricing derives bundle prices. Everything here is a pure
// function over its inputs.
package pricing

import "github.com/shopspring/decimal"

// discountRate is the flat bundle discount applied to the item sum.
var discountRate = decimal.NewFromFloat(0.10)

// LineItem is one priced entry in a bundle. By convention the first item
// is the anchor product and the rest are add-ons.
type LineItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Quote is the derived bundle price breakdown.
type Quote struct {
	Items                  []LineItem      `json:"items"`
	Total                  decimal.Decimal `json:"total"`
	Discount               decimal.Decimal `json:"discount"`
	BundlePrice            decimal.Decimal `json:"bundlePrice"`
	DisplayDiscountPercent int             `json:"displayDiscountPercent"`
}

// BundleQuote sums the item prices and applies the flat discount. An empty
// or zero-priced bundle quotes everything as zero, including the display
// percentage, rather than dividing by zero.
func BundleQuote(items []LineItem) Quote {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}

	discount := total.Mul(discountRate).Round(2)
	quote := Quote{
		Items:       items,
		Total:       total,
		Discount:    discount,
		BundlePrice: total.Sub(discount),
	}
	if total.IsPositive() {
		percent := discount.Div(total).Mul(decimal.NewFromInt(100)).Round(0)
		quote.DisplayDiscountPercent = int(percent.IntPart())
	}
	return quote
}
