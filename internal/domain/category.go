package domain

// Category is a storefront product category.
type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Categories is the fixed list of categories used across the storefront.
var Categories = []Category{
	{Name: "Fruits & Vegetables", Slug: "fruits-vegetables"},
	{Name: "Dairy & Eggs", Slug: "dairy-eggs"},
	{Name: "Rice & Grains", Slug: "rice-grains"},
	{Name: "Spices & Masalas", Slug: "spices-masalas"},
	{Name: "Oils & Ghee", Slug: "oils-ghee"},
	{Name: "Snacks & Sweets", Slug: "snacks-sweets"},
}

// CategoryNameFromSlug returns the display name for a category slug, or empty
// when unknown.
func CategoryNameFromSlug(slug string) string {
	for _, c := range Categories {
		if c.Slug == slug {
			return c.Name
		}
	}
	return ""
}

// CategorySlugFromName returns the slug for a category display name, or empty
// when unknown.
func CategorySlugFromName(name string) string {
	for _, c := range Categories {
		if c.Name == name {
			return c.Slug
		}
	}
	return ""
}
