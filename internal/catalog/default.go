package catalog

// defaultCategories is the Bloons TD 6 tower roster.
var defaultCategories = []Category{
	{Name: "Primary", Items: []string{
		"Dart Monkey",
		"Boomerang Monkey",
		"Bomb Shooter",
		"Tack Shooter",
		"Ice Monkey",
		"Glue Gunner",
	}},
	{Name: "Military", Items: []string{
		"Sniper Monkey",
		"Monkey Sub",
		"Monkey Buccaneer",
		"Monkey Ace",
		"Heli Pilot",
		"Mortar Monkey",
		"Dartling Gunner",
	}},
	{Name: "Magic", Items: []string{
		"Wizard Monkey",
		"Super Monkey",
		"Ninja Monkey",
		"Alchemist",
		"Druid",
		"Mermonkey",
	}},
	{Name: "Support", Items: []string{
		"Banana Farm",
		"Spike Factory",
		"Monkey Village",
		"Engineer Monkey",
		"Beast Handler",
	}},
}

// Default returns the built-in tower catalog.
func Default() *Catalog {
	c, err := New(defaultCategories)
	if err != nil {
		panic("catalog: built-in data is invalid: " + err.Error())
	}
	return c
}
