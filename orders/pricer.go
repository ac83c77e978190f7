// Package orders creates orders and prices them from the catalog.
package orders

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/doinggreatt/appetit-backend/apperrors"
	"github.com/doinggreatt/appetit-backend/models"
	"github.com/doinggreatt/appetit-backend/store"
)

// Ledger is the storage an order is written through. All calls made by one
// PriceAndCreateOrder share a transaction.
type Ledger interface {
	StatusIDByName(ctx context.Context, name string) (uint, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	AddOrderFoods(ctx context.Context, orderID uint, foodIDs []uint) error
	AddOrderFoodSizes(ctx context.Context, orderID uint, sizeIDs []uint) error
	AddOrderModifierOptions(ctx context.Context, orderID uint, optionIDs []uint) error
	FoodSizePrices(ctx context.Context, ids []uint) (map[uint]float64, error)
	ModifierOptionPrices(ctx context.Context, ids []uint) (map[uint]float64, error)
	SetOrderTotal(ctx context.Context, orderID uint, total float64) error
}

// TxFunc runs fn inside one transaction, committing only when fn returns nil.
type TxFunc func(ctx context.Context, fn func(Ledger) error) error

// InStore runs order transactions on s.
func InStore(s *store.Store) TxFunc {
	return func(ctx context.Context, fn func(Ledger) error) error {
		return s.Transaction(ctx, func(tx *store.Store) error {
			return fn(tx)
		})
	}
}

type Request struct {
	UserID            uint   `json:"user_id"`
	RestaurantID      uint   `json:"restaurant_id"`
	FoodIDs           []uint `json:"food_ids"`
	FoodSizeIDs       []uint `json:"food_size_ids"`
	ModifierOptionIDs []uint `json:"modifier_option_ids"`
	IsPayed           bool   `json:"is_payed"`
}

type Result struct {
	OrderID uint `json:"id"`
}

type Pricer struct {
	inTx TxFunc
	log  zerolog.Logger
}

func NewPricer(inTx TxFunc, logger zerolog.Logger) *Pricer {
	return &Pricer{inTx: inTx, log: logger.With().Str("component", "orders").Logger()}
}

// Ready reports a ConfigurationError when the pending status is not seeded.
func (p *Pricer) Ready(ctx context.Context) error {
	return p.inTx(ctx, func(l Ledger) error {
		_, err := pendingStatus(ctx, l)
		return err
	})
}

// PriceAndCreateOrder records a pending order with its foods, sizes and
// modifier options and stores its total. Nothing is committed on failure.
func (p *Pricer) PriceAndCreateOrder(ctx context.Context, req Request) (*Result, error) {
	var orderID uint
	err := p.inTx(ctx, func(l Ledger) error {
		statusID, err := pendingStatus(ctx, l)
		if err != nil {
			return err
		}

		order := &models.Order{
			StatusID:     statusID,
			IsPayed:      req.IsPayed,
			UserID:       req.UserID,
			RestaurantID: req.RestaurantID,
		}
		if err := l.CreateOrder(ctx, order); err != nil {
			return err
		}
		if err := l.AddOrderFoods(ctx, order.ID, req.FoodIDs); err != nil {
			return err
		}
		if err := l.AddOrderFoodSizes(ctx, order.ID, req.FoodSizeIDs); err != nil {
			return err
		}
		if err := l.AddOrderModifierOptions(ctx, order.ID, req.ModifierOptionIDs); err != nil {
			return err
		}

		total, err := Total(ctx, l, req.FoodSizeIDs, req.ModifierOptionIDs)
		if err != nil {
			return err
		}
		if err := l.SetOrderTotal(ctx, order.ID, total); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, p.fail(ctx, err, req)
	}
	return &Result{OrderID: orderID}, nil
}

// Total sums the unit price of every listed size and option. A repeated id is
// charged each time; an id missing from the catalog adds nothing.
func Total(ctx context.Context, l Ledger, sizeIDs, optionIDs []uint) (float64, error) {
	sizePrices, err := l.FoodSizePrices(ctx, sizeIDs)
	if err != nil {
		return 0, err
	}
	optionPrices, err := l.ModifierOptionPrices(ctx, optionIDs)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, id := range sizeIDs {
		total += sizePrices[id]
	}
	for _, id := range optionIDs {
		total += optionPrices[id]
	}
	return total, nil
}

func pendingStatus(ctx context.Context, l Ledger) (uint, error) {
	id, err := l.StatusIDByName(ctx, models.OrderStatusPending)
	if apperrors.IsNotFound(err) {
		return 0, apperrors.Configuration("order status \"pending\" is not seeded")
	}
	return id, err
}

func (p *Pricer) fail(ctx context.Context, err error, req Request) error {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &p.log
	}

	var cfg *apperrors.ConfigurationError
	if errors.As(err, &cfg) {
		logger.Error().Err(err).Msg("cannot take orders until order statuses are seeded")
		return err
	}
	logger.Error().Err(err).
		Uint("user_id", req.UserID).
		Uint("restaurant_id", req.RestaurantID).
		Int("food_sizes", len(req.FoodSizeIDs)).
		Int("modifier_options", len(req.ModifierOptionIDs)).
		Msg("order creation rolled back")
	return apperrors.Internal("price and create order", err)
}
