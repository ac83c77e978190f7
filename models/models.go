package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email     string `json:"email" gorm:"size:255;not null;uniqueIndex"`
	FirstName string `json:"first_name" gorm:"size:255"`
	LastName  string `json:"last_name" gorm:"size:255"`
	Password  string `json:"-" gorm:"not null"`
	IsAdmin   bool   `json:"is_admin" gorm:"not null;default:false"`
}

type Restaurant struct {
	gorm.Model
	Name string  `json:"name" gorm:"size:255;not null"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{}, &Restaurant{},
		&FoodType{}, &Food{}, &FoodSize{},
		&ModifierCategory{}, &ModifierOption{}, &FoodModifierOption{},
		&MenuEntry{},
		&OrderStatus{}, &Order{}, &OrderFood{}, &OrderFoodSize{}, &OrderModifierOption{},
	}
}
