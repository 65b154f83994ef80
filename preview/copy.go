package preview

import "github.com/ZacxDev/storefront/models"

// Copy is the category specific wording of the navigation, hero and grid.
type Copy struct {
	NavLabel     string
	CTA          string
	SectionTitle string
}

func CopyFor(c models.Category) Copy {
	switch c {
	case models.CategoryRestaurant:
		return Copy{NavLabel: "Menu", CTA: "View Our Menu", SectionTitle: "Our Menu"}
	case models.CategoryServices:
		return Copy{NavLabel: "Services", CTA: "Our Services", SectionTitle: "Our Services"}
	default:
		return Copy{NavLabel: "Products", CTA: "Shop Now", SectionTitle: "Featured Products"}
	}
}
