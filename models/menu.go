package models

import "gorm.io/gorm"

type FoodType struct {
	gorm.Model
	Name string `json:"name" gorm:"size:255;not null"`
}

type Food struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description"`
	TypeID      uint   `json:"type_id" gorm:"not null;index"`
}

type FoodSize struct {
	gorm.Model
	Name     string  `json:"name" gorm:"size:255;not null"`
	ParentID uint    `json:"parent_id" gorm:"not null;index"`
	IsNew    bool    `json:"is_new" gorm:"not null;default:false"`
	Price    float64 `json:"price" gorm:"not null"`
}

// ModifierCategory groups add-ons such as sauces.
type ModifierCategory struct {
	gorm.Model
	Name string `json:"name" gorm:"size:255;not null"`
}

type ModifierOption struct {
	gorm.Model
	Name       string  `json:"name" gorm:"size:255;not null"`
	CategoryID uint    `json:"category_id" gorm:"not null;index"`
	Price      float64 `json:"price" gorm:"not null"`
}

// FoodModifierOption offers a modifier option for a food. A pair may appear
// only once.
type FoodModifierOption struct {
	gorm.Model
	FoodID           uint `json:"food_id" gorm:"not null;uniqueIndex:idx_food_modifier_option"`
	ModifierOptionID uint `json:"modifier_option_id" gorm:"not null;uniqueIndex:idx_food_modifier_option"`
}

// MenuEntry places a food on the menu. Lower priority levels sort first.
type MenuEntry struct {
	gorm.Model
	FoodID        uint   `json:"food_id" gorm:"not null;uniqueIndex"`
	PriorityLevel int    `json:"priority_level" gorm:"not null;default:0;index"`
	PriorityName  string `json:"priority_name" gorm:"size:255"`
}
