package models

import "gorm.io/gorm"

const (
	OrderStatusPending  = "pending"
	OrderStatusCooking  = "cooking"
	OrderStatusDelivery = "delivery"
	OrderStatusFinished = "finished"
)

// OrderStatusNames lists the seeded statuses in lifecycle order.
var OrderStatusNames = []string{
	OrderStatusPending,
	OrderStatusCooking,
	OrderStatusDelivery,
	OrderStatusFinished,
}

type OrderStatus struct {
	gorm.Model
	Name string `json:"name" gorm:"size:64;not null;uniqueIndex"`
}

type Order struct {
	gorm.Model
	StatusID     uint    `json:"status_id" gorm:"not null;index"`
	IsPayed      bool    `json:"is_payed" gorm:"not null;default:false"`
	TotalSum     float64 `json:"total_sum" gorm:"not null;default:0"`
	UserID       uint    `json:"user_id" gorm:"index"`
	RestaurantID uint    `json:"restaurant_id" gorm:"index"`
}

type OrderFood struct {
	gorm.Model
	OrderID uint `json:"order_id" gorm:"not null;index"`
	FoodID  uint `json:"food_id" gorm:"not null"`
}

type OrderFoodSize struct {
	gorm.Model
	OrderID    uint `json:"order_id" gorm:"not null;index"`
	FoodSizeID uint `json:"food_size_id" gorm:"not null"`
}

type OrderModifierOption struct {
	gorm.Model
	OrderID          uint `json:"order_id" gorm:"not null;index"`
	ModifierOptionID uint `json:"modifier_option_id" gorm:"not null"`
}
