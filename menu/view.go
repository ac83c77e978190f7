package menu

type FoodSizeView struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	IsNew bool    `json:"is_new"`
	Price float64 `json:"price"`
}

type ModifierOptionView struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ModifierGroup holds the options of one modifier category.
type ModifierGroup struct {
	CategoryID   uint                 `json:"category_id"`
	CategoryName string               `json:"category_name"`
	Options      []ModifierOptionView `json:"options"`
}

// FoodDetail is the denormalized view of a single food.
type FoodDetail struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	FoodTypeID     uint            `json:"food_type_id"`
	FoodTypeName   string          `json:"food_type_name"`
	Sizes          []FoodSizeView  `json:"sizes"`
	ModifierGroups []ModifierGroup `json:"modifier_groups"`
}

type FoodTypeGroup struct {
	FoodTypeID   uint         `json:"food_type_id"`
	FoodTypeName string       `json:"food_type_name"`
	Foods        []FoodDetail `json:"foods"`
}

type Menu struct {
	FoodTypes []FoodTypeGroup `json:"food_types"`
}
