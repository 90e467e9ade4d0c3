package storekit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCategories = []Category{
	{
		ID:   "cat-1",
		Name: "Electronics",
		Slug: "electronics",
		SubCategories: []Category{
			{ID: "cat-1a", Name: "Laptops", Slug: "laptops"},
			{ID: "cat-1b", Name: "Phones", Slug: "phones"},
		},
	},
	{ID: "cat-2", Name: "Apparel", Slug: "apparel"},
}

func TestResolveCategoryExactMatch(t *testing.T) {
	got := ResolveCategory(testCategories, "apparel")
	require.NotNil(t, got)
	assert.Equal(t, "cat-2", got.ID)
}

func TestResolveCategoryNormalization(t *testing.T) {
	// Case and a single leading slash must not affect resolution.
	for _, slug := range []string{"electronics", "/electronics", "ELECTRONICS", "/Electronics"} {
		got := ResolveCategory(testCategories, slug)
		require.NotNil(t, got, "slug %q", slug)
		assert.Equal(t, "cat-1", got.ID, "slug %q", slug)
	}

	plain := ResolveCategory(testCategories, "apparel")
	decorated := ResolveCategory(testCategories, "/"+strings.ToUpper("apparel"))
	assert.Equal(t, plain, decorated)
}

func TestResolveCategorySubcategory(t *testing.T) {
	got := ResolveCategory(testCategories, "/Laptops")
	require.NotNil(t, got)
	assert.Equal(t, "cat-1a", got.ID)
}

func TestResolveCategoryNoMatch(t *testing.T) {
	assert.Nil(t, ResolveCategory(testCategories, "furniture"))
	assert.Nil(t, ResolveCategory(testCategories, ""))
	assert.Nil(t, ResolveCategory(nil, "electronics"))
	assert.Nil(t, ResolveCategory([]Category{}, "electronics"))
}

func TestResolveCategoryFirstMatchWins(t *testing.T) {
	dupes := []Category{
		{ID: "first", Slug: "sale"},
		{ID: "second", Slug: "Sale"},
	}

	got := ResolveCategory(dupes, "sale")
	require.NotNil(t, got)
	assert.Equal(t, "first", got.ID)
}

func TestResolveCategoryParentBeforeSubcategory(t *testing.T) {
	shadowed := []Category{
		{ID: "parent-a", Slug: "other", SubCategories: []Category{{ID: "sub-sale", Slug: "sale"}}},
		{ID: "parent-sale", Slug: "sale"},
	}

	got := ResolveCategory(shadowed, "sale")
	require.NotNil(t, got)
	assert.Equal(t, "parent-sale", got.ID)
}
