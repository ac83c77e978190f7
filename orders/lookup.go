package orders

import (
	"context"
	"time"

	"github.com/doinggreatt/appetit-backend/apperrors"
	"github.com/doinggreatt/appetit-backend/models"
)

type Reader interface {
	Order(ctx context.Context, id uint) (*models.Order, error)
	OrderStatus(ctx context.Context, id uint) (*models.OrderStatus, error)
	OrderLines(ctx context.Context, orderID uint) (foodIDs, sizeIDs, optionIDs []uint, err error)
}

type View struct {
	ID                uint      `json:"id"`
	Status            string    `json:"status"`
	IsPayed           bool      `json:"is_payed"`
	TotalSum          float64   `json:"total_sum"`
	UserID            uint      `json:"user_id"`
	RestaurantID      uint      `json:"restaurant_id"`
	FoodIDs           []uint    `json:"food_ids"`
	FoodSizeIDs       []uint    `json:"food_size_ids"`
	ModifierOptionIDs []uint    `json:"modifier_option_ids"`
	CreatedAt         time.Time `json:"created_at"`
}

// Get reads back a stored order.
func Get(ctx context.Context, r Reader, id uint) (*View, error) {
	order, err := r.Order(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, apperrors.Internal("load order", err)
	}
	status, err := r.OrderStatus(ctx, order.StatusID)
	if err != nil {
		return nil, apperrors.Internal("load order status", err)
	}
	foods, sizes, options, err := r.OrderLines(ctx, order.ID)
	if err != nil {
		return nil, apperrors.Internal("load order lines", err)
	}
	return &View{
		ID:                order.ID,
		Status:            status.Name,
		IsPayed:           order.IsPayed,
		TotalSum:          order.TotalSum,
		UserID:            order.UserID,
		RestaurantID:      order.RestaurantID,
		FoodIDs:           orEmpty(foods),
		FoodSizeIDs:       orEmpty(sizes),
		ModifierOptionIDs: orEmpty(options),
		CreatedAt:         order.CreatedAt,
	}, nil
}

func orEmpty(ids []uint) []uint {
	if ids == nil {
		return []uint{}
	}
	return ids
}
