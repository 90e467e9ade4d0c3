package storekit

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestEncodeOmitsDefaults(t *testing.T) {
	assert.Equal(t, "", FilterParams{}.Encode())
	assert.Equal(t, "", FilterParams{Page: 1, Limit: DefaultLimit}.Encode())
}

func TestEncodePriceRangeAndPage(t *testing.T) {
	f := FilterParams{MinPrice: floatPtr(10), MaxPrice: floatPtr(50), Page: 2}

	v, err := url.ParseQuery(f.Encode())
	require.NoError(t, err)
	assert.Equal(t, "10", v.Get("minPrice"))
	assert.Equal(t, "50", v.Get("maxPrice"))
	assert.Equal(t, "2", v.Get("page"))
	assert.Len(t, v, 3)
}

func TestDecodePriceRangeAndPage(t *testing.T) {
	f := DecodeFilterParams("minPrice=10&maxPrice=50&page=2")

	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 10.0, *f.MinPrice)
	assert.Equal(t, 50.0, *f.MaxPrice)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
}

func TestRoundTrip(t *testing.T) {
	cases := []FilterParams{
		{Category: "cat-123", Page: 1, Limit: DefaultLimit},
		{Brand: "Acme", MinRating: floatPtr(4), Page: 3, Limit: DefaultLimit},
		{MinPrice: floatPtr(19.99), MaxPrice: floatPtr(99.5), InStock: true, Page: 1, Limit: DefaultLimit},
		{Category: "shoes", IsActive: true, Page: 2, Limit: 24},
	}

	for _, want := range cases {
		got := DecodeFilterParams(want.Encode())
		assert.Equal(t, want, got, "round trip of %q", want.Encode())
	}
}

func TestDecodeMalformedNumbers(t *testing.T) {
	f := DecodeFilterParams("minPrice=cheap&maxPrice=&minRating=lots&page=zero")

	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.MinRating)
	assert.Equal(t, 1, f.Page)
}

func TestDecodeNonFiniteNumbers(t *testing.T) {
	f := DecodeFilterParams("minPrice=NaN&maxPrice=Inf&minRating=-Inf")

	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.MinRating)

	f = DecodeFilterParams("maxPrice=%2BInf")
	assert.Nil(t, f.MaxPrice)

	// Absent fields stay absent through a round trip
	assert.Equal(t, "", DecodeFilterParams("minPrice=NaN").Encode())
}

func TestDecodeBooleanOnlyLiteralTrue(t *testing.T) {
	assert.False(t, DecodeFilterParams("inStock=false").InStock)
	assert.False(t, DecodeFilterParams("inStock=1").InStock)
	assert.False(t, DecodeFilterParams("inStock=TRUE").InStock)
	assert.True(t, DecodeFilterParams("inStock=true").InStock)

	assert.False(t, DecodeFilterParams("isActive=yes").IsActive)
	assert.True(t, DecodeFilterParams("isActive=true").IsActive)
}

func TestDecodePageDefaults(t *testing.T) {
	assert.Equal(t, 1, DecodeFilterParams("").Page)
	assert.Equal(t, 1, DecodeFilterParams("page=0").Page)
	assert.Equal(t, 1, DecodeFilterParams("page=-3").Page)
	assert.Equal(t, 7, DecodeFilterParams("page=7").Page)
}

func TestDecodeInvalidQueryString(t *testing.T) {
	f := DecodeFilterParams("%zz")

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
}

func TestWithSettersResetPage(t *testing.T) {
	base := FilterParams{Brand: "Acme", Page: 5, Limit: DefaultLimit}

	assert.Equal(t, 1, base.WithCategory("bags").Page)
	assert.Equal(t, 1, base.WithBrand("Other").Page)
	assert.Equal(t, 1, base.WithPriceRange(floatPtr(5), floatPtr(10)).Page)
	assert.Equal(t, 1, base.WithMinRating(4).Page)
	assert.Equal(t, 1, base.WithInStock(true).Page)

	// Moving pages keeps the filters intact.
	next := base.WithPage(6)
	assert.Equal(t, 6, next.Page)
	assert.Equal(t, "Acme", next.Brand)
	assert.Equal(t, 1, base.WithPage(0).Page)
}

func TestWithSettersDoNotMutateReceiver(t *testing.T) {
	base := FilterParams{Page: 4}
	_ = base.WithBrand("Acme")

	assert.Equal(t, 4, base.Page)
	assert.Empty(t, base.Brand)
}
