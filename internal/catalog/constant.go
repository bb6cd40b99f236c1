package catalog

const (
	DefaultName        = "The Good Table"
	DefaultAddress     = "123 Flavors Street, Gastronomic City"
	DefaultPhone       = "+1 123 456 7890"
	DefaultEmail       = "info@thegoodtable.com"
	DefaultEventsEmail = "events@thegoodtable.com"
	DefaultWebsite     = "www.thegoodtable.com"
	DefaultTimezone    = "Europe/Madrid"

	DefaultMaxPerSlot     = 5
	DefaultMaxPartySize   = 10
	DefaultMaxAdvanceDays = 30
	DefaultSlotMinutes    = 30
)

func defaultMenu() []Category {
	return []Category{
		{Name: "Starters", Items: []string{"Mediterranean salad", "Homemade croquettes", "Andalusian gazpacho", "Cheese board"}},
		{Name: "Main Courses", Items: []string{"Valencian paella", "Whiskey sirloin steak", "Cod confit", "Mushroom risotto"}},
		{Name: "Desserts", Items: []string{"Cheesecake", "Chocolate coulant", "Homemade tiramisu", "Lemon sorbet"}},
		{Name: "Drinks", Items: []string{"House wines", "Craft beers", "Soft drinks", "Special cocktails"}},
	}
}
