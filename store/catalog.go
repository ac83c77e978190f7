package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/doinggreatt/appetit-backend/models"
)

func (s *Store) Food(ctx context.Context, id uint) (*models.Food, error) {
	return fetchByID[models.Food](ctx, s.db, "food", id)
}

func (s *Store) FoodType(ctx context.Context, id uint) (*models.FoodType, error) {
	return fetchByID[models.FoodType](ctx, s.db, "food type", id)
}

func (s *Store) ModifierCategory(ctx context.Context, id uint) (*models.ModifierCategory, error) {
	return fetchByID[models.ModifierCategory](ctx, s.db, "modifier category", id)
}

func (s *Store) FoodSizes(ctx context.Context, foodID uint) ([]models.FoodSize, error) {
	return fetchByParentID[models.FoodSize](ctx, s.db, "parent_id", foodID)
}

// FoodModifierOptions returns the bridge rows of a food in storage order.
func (s *Store) FoodModifierOptions(ctx context.Context, foodID uint) ([]models.FoodModifierOption, error) {
	return fetchByParentID[models.FoodModifierOption](ctx, s.db, "food_id", foodID)
}

func (s *Store) ModifierOptions(ctx context.Context, ids []uint) ([]models.ModifierOption, error) {
	return fetchByIDs[models.ModifierOption](ctx, s.db, ids)
}

func (s *Store) ModifierCategories(ctx context.Context, ids []uint) ([]models.ModifierCategory, error) {
	return fetchByIDs[models.ModifierCategory](ctx, s.db, ids)
}

func (s *Store) AllModifierOptions(ctx context.Context) ([]models.ModifierOption, error) {
	return fetchAll[models.ModifierOption](ctx, s.db)
}

func (s *Store) MenuEntries(ctx context.Context) ([]models.MenuEntry, error) {
	return fetchAll[models.MenuEntry](ctx, s.db)
}

// MenuEntryByFood returns nil, nil when the food is not on the menu.
func (s *Store) MenuEntryByFood(ctx context.Context, foodID uint) (*models.MenuEntry, error) {
	var entry models.MenuEntry
	err := s.db.WithContext(ctx).Where("food_id = ?", foodID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Store) CreateFoodType(ctx context.Context, ft *models.FoodType) error {
	return insert(ctx, s.db, "food type", ft)
}

func (s *Store) CreateModifierCategory(ctx context.Context, mc *models.ModifierCategory) error {
	return insert(ctx, s.db, "modifier category", mc)
}

func (s *Store) CreateModifierOption(ctx context.Context, mo *models.ModifierOption) error {
	return insert(ctx, s.db, "modifier option", mo)
}

func (s *Store) CreateMenuEntry(ctx context.Context, entry *models.MenuEntry) error {
	return insert(ctx, s.db, "menu entry", entry)
}

// CreateFood stores a food together with its sizes and the modifier options
// it offers, all or nothing.
func (s *Store) CreateFood(ctx context.Context, food *models.Food, sizes []models.FoodSize, optionIDs []uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if err := insert(ctx, tx.db, "food", food); err != nil {
			return err
		}
		for i := range sizes {
			sizes[i].ParentID = food.ID
			if err := insert(ctx, tx.db, "food size", &sizes[i]); err != nil {
				return err
			}
		}
		for _, optionID := range optionIDs {
			link := models.FoodModifierOption{FoodID: food.ID, ModifierOptionID: optionID}
			if err := insert(ctx, tx.db, "food modifier option", &link); err != nil {
				return err
			}
		}
		return nil
	})
}

// MissingIDs reports which of ids have no row of type T.
func MissingIDs[T any](ctx context.Context, s *Store, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint
	err := s.db.WithContext(ctx).Model(new(T)).Where("id IN ?", ids).Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	seen := make(map[uint]bool, len(found))
	for _, id := range found {
		seen[id] = true
	}
	var missing []uint
	for _, id := range ids {
		if !seen[id] {
			missing = append(missing, id)
			seen[id] = true
		}
	}
	return missing, nil
}

// MissingModifierOptions reports which option ids do not exist.
func (s *Store) MissingModifierOptions(ctx context.Context, ids []uint) ([]uint, error) {
	return MissingIDs[models.ModifierOption](ctx, s, ids)
}
