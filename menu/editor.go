package menu

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/doinggreatt/appetit-backend/apperrors"
	"github.com/doinggreatt/appetit-backend/models"
)

// Writer is the write side of the menu tables plus the reads needed to check
// references before writing.
type Writer interface {
	FoodType(ctx context.Context, id uint) (*models.FoodType, error)
	Food(ctx context.Context, id uint) (*models.Food, error)
	ModifierCategory(ctx context.Context, id uint) (*models.ModifierCategory, error)
	MenuEntryByFood(ctx context.Context, foodID uint) (*models.MenuEntry, error)
	MissingModifierOptions(ctx context.Context, ids []uint) ([]uint, error)

	CreateFoodType(ctx context.Context, ft *models.FoodType) error
	CreateModifierCategory(ctx context.Context, mc *models.ModifierCategory) error
	CreateModifierOption(ctx context.Context, mo *models.ModifierOption) error
	CreateFood(ctx context.Context, food *models.Food, sizes []models.FoodSize, optionIDs []uint) error
	CreateMenuEntry(ctx context.Context, entry *models.MenuEntry) error
}

type NewFoodSize struct {
	Name  string  `json:"name"`
	IsNew bool    `json:"is_new"`
	Price float64 `json:"price"`
}

type NewFood struct {
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	TypeID            uint          `json:"type_id"`
	Sizes             []NewFoodSize `json:"sizes"`
	ModifierOptionIDs []uint        `json:"modifier_option_ids"`
}

// Editor performs administrative catalog writes.
type Editor struct {
	w   Writer
	log zerolog.Logger
}

func NewEditor(w Writer, logger zerolog.Logger) *Editor {
	return &Editor{w: w, log: logger.With().Str("component", "menu-editor").Logger()}
}

func (e *Editor) CreateFoodType(ctx context.Context, name string) (*models.FoodType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}
	ft := &models.FoodType{Name: name}
	if err := e.w.CreateFoodType(ctx, ft); err != nil {
		return nil, e.fail("create food type", err)
	}
	return ft, nil
}

func (e *Editor) CreateModifierCategory(ctx context.Context, name string) (*models.ModifierCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}
	mc := &models.ModifierCategory{Name: name}
	if err := e.w.CreateModifierCategory(ctx, mc); err != nil {
		return nil, e.fail("create modifier category", err)
	}
	return mc, nil
}

func (e *Editor) CreateModifierOption(ctx context.Context, categoryID uint, name string, price float64) (*models.ModifierOption, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}
	if price < 0 {
		return nil, apperrors.Validation("price must not be negative")
	}
	if err := e.mustExist("modifier category", func() error {
		_, err := e.w.ModifierCategory(ctx, categoryID)
		return err
	}); err != nil {
		return nil, err
	}
	mo := &models.ModifierOption{Name: name, CategoryID: categoryID, Price: price}
	if err := e.w.CreateModifierOption(ctx, mo); err != nil {
		return nil, e.fail("create modifier option", err)
	}
	return mo, nil
}

// CreateFood stores a food with its sizes and offered modifier options.
func (e *Editor) CreateFood(ctx context.Context, in NewFood) (*models.Food, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}
	sizes := make([]models.FoodSize, 0, len(in.Sizes))
	for _, s := range in.Sizes {
		if strings.TrimSpace(s.Name) == "" {
			return nil, apperrors.Validation("size name is required")
		}
		if s.Price < 0 {
			return nil, apperrors.Validation("size %q: price must not be negative", s.Name)
		}
		sizes = append(sizes, models.FoodSize{Name: strings.TrimSpace(s.Name), IsNew: s.IsNew, Price: s.Price})
	}
	seen := make(map[uint]bool, len(in.ModifierOptionIDs))
	for _, id := range in.ModifierOptionIDs {
		if seen[id] {
			return nil, apperrors.Validation("modifier option %d listed twice", id)
		}
		seen[id] = true
	}

	if err := e.mustExist("food type", func() error {
		_, err := e.w.FoodType(ctx, in.TypeID)
		return err
	}); err != nil {
		return nil, err
	}
	missing, err := e.w.MissingModifierOptions(ctx, in.ModifierOptionIDs)
	if err != nil {
		return nil, e.fail("check modifier options", err)
	}
	if len(missing) > 0 {
		return nil, apperrors.Validation("modifier options %v do not exist", missing)
	}

	food := &models.Food{Name: name, Description: in.Description, TypeID: in.TypeID}
	if err := e.w.CreateFood(ctx, food, sizes, in.ModifierOptionIDs); err != nil {
		return nil, e.fail("create food", err)
	}
	return food, nil
}

// AddMenuEntry puts a food on the menu. A food can be listed once.
func (e *Editor) AddMenuEntry(ctx context.Context, foodID uint, priority int, priorityName string) (*models.MenuEntry, error) {
	if err := e.mustExist("food", func() error {
		_, err := e.w.Food(ctx, foodID)
		return err
	}); err != nil {
		return nil, err
	}
	existing, err := e.w.MenuEntryByFood(ctx, foodID)
	if err != nil {
		return nil, e.fail("check menu entry", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("food %d is already on the menu", foodID)
	}
	entry := &models.MenuEntry{FoodID: foodID, PriorityLevel: priority, PriorityName: priorityName}
	if err := e.w.CreateMenuEntry(ctx, entry); err != nil {
		return nil, e.fail("create menu entry", err)
	}
	return entry, nil
}

// mustExist turns a missing parent row into a validation error.
func (e *Editor) mustExist(what string, lookup func() error) error {
	err := lookup()
	switch {
	case err == nil:
		return nil
	case apperrors.IsNotFound(err):
		return apperrors.Validation("%s does not exist", what)
	default:
		return e.fail("look up "+what, err)
	}
}

// fail passes client errors through and wraps everything else.
func (e *Editor) fail(op string, err error) error {
	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) {
		return err
	}
	e.log.Error().Err(err).Str("op", op).Msg("catalog write failed")
	return apperrors.Internal(op, err)
}
