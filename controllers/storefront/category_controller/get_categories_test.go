package category_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-commerce/velora-storefront/models"
)

func strPtr(s string) *string { return &s }

func TestBuildCategoryTree(t *testing.T) {
	flat := []models.StorefrontCategory{
		{ID: "c1", Name: "Electronics", Slug: "electronics", ProductCount: 0},
		{ID: "c2", Name: "Apparel", Slug: "apparel", ProductCount: 4},
		{ID: "c1a", Name: "Laptops", Slug: "laptops", ParentID: strPtr("c1"), ProductCount: 3},
		{ID: "c1b", Name: "Phones", Slug: "phones", ParentID: strPtr("c1"), ProductCount: 5},
	}

	parents := buildCategoryTree(flat)

	require.Len(t, parents, 2)
	assert.Equal(t, "c1", parents[0].ID)
	require.Len(t, parents[0].Subcategories, 2)
	// Parent counts roll up their children.
	assert.Equal(t, 8, parents[0].ProductCount)
	assert.Equal(t, "c2", parents[1].ID)
	assert.Empty(t, parents[1].Subcategories)
	assert.Equal(t, 4, parents[1].ProductCount)
}

func TestBuildCategoryTreeOrphanedChild(t *testing.T) {
	flat := []models.StorefrontCategory{
		{ID: "c1", Name: "Electronics", Slug: "electronics"},
		{ID: "x1", Name: "Ghost", Slug: "ghost", ParentID: strPtr("gone")},
	}

	parents := buildCategoryTree(flat)

	// A child pointing at a missing (e.g. inactive) parent is dropped rather
	// than surfaced as a top-level category.
	require.Len(t, parents, 1)
	assert.Equal(t, "c1", parents[0].ID)
}

func TestBuildCategoryTreeEmpty(t *testing.T) {
	assert.Empty(t, buildCategoryTree(nil))
}
