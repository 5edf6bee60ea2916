package expense

// Category represents the category of an expense
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryOthers         Category = "Others"
)

// Categories returns the fixed set of allowed expense categories.
// The same enumeration backs both validation and the selectable
// options surfaced to the presentation layer.
func Categories() []Category {
	return []Category{
		CategoryFoodDining,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTravel,
		CategoryPersonalCare,
		CategoryOthers,
	}
}

// IsValid checks if the category is one of the fixed set
func (c Category) IsValid() bool {
	switch c {
	case CategoryFoodDining, CategoryTransportation, CategoryShopping,
		CategoryEntertainment, CategoryBillsUtilities, CategoryHealthcare,
		CategoryEducation, CategoryTravel, CategoryPersonalCare, CategoryOthers:
		return true
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}
