package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/doinggreatt/appetit-backend/apperrors"
	"github.com/doinggreatt/appetit-backend/models"
)

// StatusIDByName resolves an order status. A missing status is reported as a
// NotFoundError with a zero id.
func (s *Store) StatusIDByName(ctx context.Context, name string) (uint, error) {
	var status models.OrderStatus
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.NotFound("order status "+name, 0)
	}
	if err != nil {
		return 0, err
	}
	return status.ID, nil
}

func (s *Store) OrderStatus(ctx context.Context, id uint) (*models.OrderStatus, error) {
	return fetchByID[models.OrderStatus](ctx, s.db, "order status", id)
}

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	return insert(ctx, s.db, "order", order)
}

func (s *Store) Order(ctx context.Context, id uint) (*models.Order, error) {
	return fetchByID[models.Order](ctx, s.db, "order", id)
}

func (s *Store) AddOrderFoods(ctx context.Context, orderID uint, foodIDs []uint) error {
	if len(foodIDs) == 0 {
		return nil
	}
	rows := make([]models.OrderFood, 0, len(foodIDs))
	for _, id := range foodIDs {
		rows = append(rows, models.OrderFood{OrderID: orderID, FoodID: id})
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

func (s *Store) AddOrderFoodSizes(ctx context.Context, orderID uint, sizeIDs []uint) error {
	if len(sizeIDs) == 0 {
		return nil
	}
	rows := make([]models.OrderFoodSize, 0, len(sizeIDs))
	for _, id := range sizeIDs {
		rows = append(rows, models.OrderFoodSize{OrderID: orderID, FoodSizeID: id})
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

func (s *Store) AddOrderModifierOptions(ctx context.Context, orderID uint, optionIDs []uint) error {
	if len(optionIDs) == 0 {
		return nil
	}
	rows := make([]models.OrderModifierOption, 0, len(optionIDs))
	for _, id := range optionIDs {
		rows = append(rows, models.OrderModifierOption{OrderID: orderID, ModifierOptionID: id})
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

type priceRow struct {
	ID    uint
	Price float64
}

// prices maps each found id to its unit price. Unknown ids are absent.
func prices(ctx context.Context, db *gorm.DB, model interface{}, ids []uint) (map[uint]float64, error) {
	out := make(map[uint]float64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []priceRow
	err := db.WithContext(ctx).Model(model).Select("id", "price").Where("id IN ?", ids).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r.Price
	}
	return out, nil
}

func (s *Store) FoodSizePrices(ctx context.Context, ids []uint) (map[uint]float64, error) {
	return prices(ctx, s.db, &models.FoodSize{}, ids)
}

func (s *Store) ModifierOptionPrices(ctx context.Context, ids []uint) (map[uint]float64, error) {
	return prices(ctx, s.db, &models.ModifierOption{}, ids)
}

func (s *Store) SetOrderTotal(ctx context.Context, orderID uint, total float64) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).Update("total_sum", total)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("set total: %w", apperrors.NotFound("order", orderID))
	}
	return nil
}

// OrderLines returns the ids an order references, in the order they were
// recorded.
func (s *Store) OrderLines(ctx context.Context, orderID uint) (foodIDs, sizeIDs, optionIDs []uint, err error) {
	db := s.db.WithContext(ctx)
	if err = db.Model(&models.OrderFood{}).Where("order_id = ?", orderID).Order("id").Pluck("food_id", &foodIDs).Error; err != nil {
		return nil, nil, nil, err
	}
	if err = db.Model(&models.OrderFoodSize{}).Where("order_id = ?", orderID).Order("id").Pluck("food_size_id", &sizeIDs).Error; err != nil {
		return nil, nil, nil, err
	}
	if err = db.Model(&models.OrderModifierOption{}).Where("order_id = ?", orderID).Order("id").Pluck("modifier_option_id", &optionIDs).Error; err != nil {
		return nil, nil, nil, err
	}
	return foodIDs, sizeIDs, optionIDs, nil
}
