package domain

type seedItem struct {
	name string
	par  float64
}

type seedCategory struct {
	section  Section
	category string
	items    []seedItem
}

// defaultSeed is the original paper checklist, carried over as-is.
var defaultSeed = []seedCategory{
	{SectionDepot, "FROZEN", []seedItem{
		{"MOZZARELLA STICKS", 5}, {"POTATO SKINS", 4}, {"TATER TOTS", 6},
		{"FRENCH FRIES", 10}, {"SWEET POTATO FRIES", 4}, {"SAUSAGE PATTY", 3},
		{"SAUSAGE LINKS", 3}, {"SWEET ITALIAN SAUSAGE", 2}, {"SHAVED STEAK", 8},
		{"HOLLANDAISE", 2}, {"BUTTERMILK BISCUITS", 5}, {"STRAWBERRIES", 4},
		{"BLUEBERRIES", 4},
	}},
	{SectionDepot, "SOUPS & CHOWDERS", []seedItem{
		{"HADDOCK CHOWDER", 2}, {"CLAM CHOWDER", 2}, {"CORN CHOWDER", 1},
		{"CHICKEN CORN CHOWDER", 1}, {"ALBONDIGAS (MEATBALL)", 1},
		{"BROCCOLI CHEDDAR", 2}, {"CHICKEN NOODLE", 2}, {"CHICKEN ORZO", 1},
		{"TURKEY GUMBO", 1}, {"SPLIT PEA", 1}, {"MINESTRONE", 1},
		{"POTATO BACON CHEDDAR", 2}, {"TOMATO FLORENTINE", 1},
		{"VEGETABLE BEEF BARLEY", 1},
	}},
	{SectionDepot, "REFRIGERATED", []seedItem{
		{"EGGS", 15}, {"MARGARINE", 10}, {"LIGHT CREAM", 12}, {"BUTTERCUPS", 2},
		{"CREAM CHEESE CUPS", 2}, {"WHIPPED CREAM", 4}, {"CHOPPED GARLIC", 2},
		{"HORSERADISH", 1}, {"TORTILLA WRAPS", 5},
	}},
	{SectionDepot, "MEAT & POULTRY", []seedItem{
		{"STEAK TIPS", 40}, {"GROUND BEEF", 20}, {"BEEF LIVER", 5},
		{"BACON", 15}, {"DELI HAM", 6}, {"PIT HAM", 4}, {"CHICKEN BREAST", 30},
		{"CHICKEN TENDERS", 25}, {"TURKEY WHOLE", 4},
	}},
	{SectionDepot, "CHEESES", []seedItem{
		{"AMERICAN", 10}, {"SWISS", 5}, {"MOZZARELLA", 8}, {"CHEDDAR", 6},
		{"FETA", 3}, {"GRATED PARMESAN", 4}, {"PEPPERJACK", 3},
	}},
	{SectionDepot, "VEGETABLES", []seedItem{
		{"BROCCOLI", 5}, {"CABBAGE", 3}, {"CARROTS", 2}, {"LEMONS", 2},
		{"LEAF LETTUCE", 4}, {"ICEBERG LETTUCE", 6}, {"ROMAINE", 6},
		{"MUSHROOMS", 4}, {"ONIONS", 3}, {"RED ONIONS", 2},
		{"GREEN PEPPERS", 3}, {"CHEF POTATOES", 10}, {"BAKED POTATOES", 5},
		{"SPINACH", 3}, {"TOMATOES", 5},
	}},
	{SectionStore, "GENERAL STORE", []seedItem{
		{"MILK", 6}, {"OJ", 4}, {"KIELBASA", 5}, {"EGG WHITES", 4},
		{"WHIPPED CREAM", 3}, {"HERSHEY SYRUP", 2}, {"SAUSAGE (GRAVY)", 4},
		{"BELL SEASONING", 1}, {"STRAWBERRIES", 2}, {"BLUEBERRIES", 2},
		{"ICEBERG LETTUCE", 4}, {"CHOCOLATE CHIPS", 2},
		{"PEANUT BUTTER CHIPS", 2}, {"RED ONIONS", 2}, {"BANANAS", 3},
		{"ROMAINE LETTUCE", 4},
	}},
	{SectionBakery, "BREADS & MUFFINS", []seedItem{
		{"WHITE", 10}, {"WHEAT", 10}, {"MARBLE RYE", 5}, {"RAISIN", 5},
		{"SOUR DOUGH", 5}, {"CHALLAH", 3}, {"ENGLISH", 10}, {"BAGELS", 4},
		{"BRIOCHE", 6}, {"SUB ROLLS", 5}, {"GF WRAPS", 2},
		{"BLUEBERRY MUFFIN", 4}, {"CORN MUFFIN", 4},
		{"COFFEE ROLLS (HEKKLA)", 3}, {"CROSSANTS", 3},
	}},
}

// DefaultCatalog returns the built-in seeded catalog used when no snapshot
// exists yet, or when the stored one cannot be read.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, block := range defaultSeed {
		cat := c.Section(block.section).ensureCategory(block.category)
		for _, s := range block.items {
			par := s.par
			cat.Items = append(cat.Items, Item{Name: s.name, Par: &par})
		}
	}
	return c
}
