package storekit

import "strings"

// ResolveCategory maps a URL slug to a category from the fetched tree.
// Matching is case-insensitive and tolerates one leading "/" on either side.
// Parents are checked before subcategories and the first match wins; duplicate
// slugs are a backend data-quality problem, not resolved here.
//
// A nil result means "nothing to display yet": callers must not dispatch a
// catalog request for it, because an empty category id would fetch the whole
// store instead of one category.
func ResolveCategory(categories []Category, slug string) *Category {
	want := normalizeSlug(slug)
	if want == "" {
		return nil
	}

	for i := range categories {
		if normalizeSlug(categories[i].Slug) == want {
			return &categories[i]
		}
	}
	for i := range categories {
		subs := categories[i].SubCategories
		for j := range subs {
			if normalizeSlug(subs[j].Slug) == want {
				return &subs[j]
			}
		}
	}
	return nil
}

func normalizeSlug(slug string) string {
	slug = strings.TrimSpace(slug)
	slug = strings.TrimPrefix(slug, "/")
	return strings.ToLower(slug)
}
