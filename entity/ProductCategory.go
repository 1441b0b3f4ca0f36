package entity

// Categories are stored as plain strings; the closed set is enforced here,
// not by the database.
const (
	CategoryBuffet       = "buffet"
	CategoryBudgetMeals  = "budget_meals"
	CategoryBudgetSnacks = "budget_snacks"
	CategorySnacks       = "snacks"
	CategoryDrinks       = "drinks"
)

var ProductCategories = []string{
	CategoryBuffet,
	CategoryBudgetMeals,
	CategoryBudgetSnacks,
	CategorySnacks,
	CategoryDrinks,
}

func ValidProductCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}
