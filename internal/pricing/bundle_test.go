package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(name, price string) LineItem {
	return LineItem{Name: name, Price: decimal.RequireFromString(price)}
}

func TestBundleQuoteAppliesFlatDiscount(t *testing.T) {
	t.Parallel()

	quote := BundleQuote([]LineItem{
		line("Main Product", "50.00"),
		line("Complementary Item 1", "20.00"),
		line("Complementary Item 2", "10.00"),
	})

	assert.True(t, quote.Total.Equal(decimal.RequireFromString("80.00")), "total = %s", quote.Total)
	assert.True(t, quote.Discount.Equal(decimal.RequireFromString("8.00")), "discount = %s", quote.Discount)
	assert.True(t, quote.BundlePrice.Equal(decimal.RequireFromString("72.00")), "bundle price = %s", quote.BundlePrice)
	assert.Equal(t, 10, quote.DisplayDiscountPercent)
}

func TestBundleQuoteEmptyListAvoidsDivisionByZero(t *testing.T) {
	t.Parallel()

	quote := BundleQuote(nil)

	assert.True(t, quote.Total.IsZero())
	assert.True(t, quote.Discount.IsZero())
	assert.True(t, quote.BundlePrice.IsZero())
	assert.Equal(t, 0, quote.DisplayDiscountPercent)
}

func TestBundleQuoteZeroPricedItemsAvoidDivisionByZero(t *testing.T) {
	t.Parallel()

	quote := BundleQuote([]LineItem{line("Freebie", "0"), line("Other Freebie", "0")})

	assert.True(t, quote.BundlePrice.IsZero())
	assert.Equal(t, 0, quote.DisplayDiscountPercent)
}

func TestBundleQuoteRoundsToCents(t *testing.T) {
	t.Parallel()

	quote := BundleQuote([]LineItem{line("Anchor", "49.99"), line("Add-on", "24.99")})

	assert.True(t, quote.Total.Equal(decimal.RequireFromString("74.98")), "total = %s", quote.Total)
	assert.True(t, quote.Discount.Equal(decimal.RequireFromString("7.50")), "discount = %s", quote.Discount)
	assert.True(t, quote.BundlePrice.Equal(decimal.RequireFromString("67.48")), "bundle price = %s", quote.BundlePrice)
	assert.Equal(t, 10, quote.DisplayDiscountPercent)
}

func TestBundleQuoteIsDeterministic(t *testing.T) {
	t.Parallel()

	items := []LineItem{line("Anchor", "59.99"), line("Add-on", "24.99")}
	first := BundleQuote(items)
	second := BundleQuote(items)

	assert.Equal(t, first, second)
}
