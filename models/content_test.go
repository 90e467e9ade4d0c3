package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSectionType(t *testing.T) {
	section, ok := ParseSectionType("best-sellers")
	assert.True(t, ok)
	assert.Equal(t, SectionBestSellers, section)

	section, ok = ParseSectionType("new-arrivals")
	assert.True(t, ok)
	assert.Equal(t, SectionNewArrivals, section)

	section, ok = ParseSectionType("trending")
	assert.True(t, ok)
	assert.Equal(t, SectionTrending, section)
}

func TestParseSectionTypeRejectsUnknownKeys(t *testing.T) {
	for _, key := range []string{"", "best_sellers", "Best-Sellers", "deals", "hero-banners"} {
		_, ok := ParseSectionType(key)
		assert.False(t, ok, "key %q should not resolve", key)
	}
}

func TestValidApplicationType(t *testing.T) {
	assert.True(t, ValidApplicationType(ApplicationDeveloper))
	assert.True(t, ValidApplicationType(ApplicationInvestor))
	assert.False(t, ValidApplicationType("partner"))
	assert.False(t, ValidApplicationType(""))
}
