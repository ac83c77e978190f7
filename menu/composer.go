// Package menu turns the relational catalog into nested menu views and
// handles administrative catalog writes.
package menu

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/doinggreatt/appetit-backend/apperrors"
	"github.com/doinggreatt/appetit-backend/models"
)

// Catalog is the read side of the menu tables.
type Catalog interface {
	Food(ctx context.Context, id uint) (*models.Food, error)
	FoodType(ctx context.Context, id uint) (*models.FoodType, error)
	FoodSizes(ctx context.Context, foodID uint) ([]models.FoodSize, error)
	FoodModifierOptions(ctx context.Context, foodID uint) ([]models.FoodModifierOption, error)
	ModifierOptions(ctx context.Context, ids []uint) ([]models.ModifierOption, error)
	ModifierCategories(ctx context.Context, ids []uint) ([]models.ModifierCategory, error)
	AllModifierOptions(ctx context.Context) ([]models.ModifierOption, error)
	MenuEntries(ctx context.Context) ([]models.MenuEntry, error)
}

type Composer struct {
	catalog Catalog
	log     zerolog.Logger
}

func NewComposer(catalog Catalog, logger zerolog.Logger) *Composer {
	return &Composer{catalog: catalog, log: logger.With().Str("component", "menu").Logger()}
}

// resolvedOption is a modifier option joined with its category.
type resolvedOption struct {
	option   models.ModifierOption
	category models.ModifierCategory
}

// FoodDetail composes the view of one food. An unknown id yields a
// NotFoundError, any other failure an InternalError.
func (c *Composer) FoodDetail(ctx context.Context, foodID uint) (*FoodDetail, error) {
	detail, err := c.foodDetail(ctx, foodID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, c.internal(ctx, "compose food detail", err, foodID)
	}
	return detail, nil
}

func (c *Composer) foodDetail(ctx context.Context, foodID uint) (*FoodDetail, error) {
	food, err := c.catalog.Food(ctx, foodID)
	if err != nil {
		return nil, err
	}
	foodType, err := c.catalog.FoodType(ctx, food.TypeID)
	if err != nil {
		// a food pointing at a missing type is corrupt data, not a client error
		return nil, apperrors.Internal("load food type", err)
	}

	sizes, err := c.catalog.FoodSizes(ctx, foodID)
	if err != nil {
		return nil, err
	}
	sizeViews := make([]FoodSizeView, 0, len(sizes))
	for _, s := range sizes {
		sizeViews = append(sizeViews, FoodSizeView{ID: s.ID, Name: s.Name, IsNew: s.IsNew, Price: s.Price})
	}

	links, err := c.catalog.FoodModifierOptions(ctx, foodID)
	if err != nil {
		return nil, err
	}
	optionIDs := make([]uint, 0, len(links))
	for _, l := range links {
		optionIDs = append(optionIDs, l.ModifierOptionID)
	}
	options, err := c.resolveOptions(ctx, optionIDs)
	if err != nil {
		return nil, err
	}

	return &FoodDetail{
		ID:             food.ID,
		Name:           food.Name,
		Description:    food.Description,
		FoodTypeID:     foodType.ID,
		FoodTypeName:   foodType.Name,
		Sizes:          sizeViews,
		ModifierGroups: buildModifierGroups(options),
	}, nil
}

// resolveOptions looks up each option id and its category, keeping the order
// of ids. A dangling id fails the whole lookup.
func (c *Composer) resolveOptions(ctx context.Context, ids []uint) ([]resolvedOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	options, err := c.catalog.ModifierOptions(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.ModifierOption, len(options))
	categoryIDs := make([]uint, 0, len(options))
	for _, o := range options {
		byID[o.ID] = o
		categoryIDs = append(categoryIDs, o.CategoryID)
	}

	categories, err := c.catalog.ModifierCategories(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	categoryByID := make(map[uint]models.ModifierCategory, len(categories))
	for _, mc := range categories {
		categoryByID[mc.ID] = mc
	}

	out := make([]resolvedOption, 0, len(ids))
	for _, id := range ids {
		o, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("modifier option %d is referenced but missing", id)
		}
		mc, ok := categoryByID[o.CategoryID]
		if !ok {
			return nil, fmt.Errorf("modifier category %d of option %d is missing", o.CategoryID, id)
		}
		out = append(out, resolvedOption{option: o, category: mc})
	}
	return out, nil
}

func buildModifierGroups(options []resolvedOption) []ModifierGroup {
	keys, groups := groupFirstSeen(options, func(r resolvedOption) uint { return r.category.ID })
	out := make([]ModifierGroup, 0, len(keys))
	for i, members := range groups {
		g := ModifierGroup{
			CategoryID:   keys[i],
			CategoryName: members[0].category.Name,
			Options:      make([]ModifierOptionView, 0, len(members)),
		}
		for _, m := range members {
			g.Options = append(g.Options, ModifierOptionView{ID: m.option.ID, Name: m.option.Name, Price: m.option.Price})
		}
		out = append(out, g)
	}
	return out
}

// FullMenu composes every menu entry, ordered by ascending priority level and
// grouped by food type. Any failure, including an entry whose food is gone,
// fails the whole menu.
func (c *Composer) FullMenu(ctx context.Context) (*Menu, error) {
	entries, err := c.catalog.MenuEntries(ctx)
	if err != nil {
		return nil, c.internal(ctx, "load menu entries", err, 0)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PriorityLevel < entries[j].PriorityLevel
	})

	details := make([]FoodDetail, 0, len(entries))
	for _, e := range entries {
		d, err := c.foodDetail(ctx, e.FoodID)
		if err != nil {
			return nil, c.internal(ctx, "compose full menu", err, e.FoodID)
		}
		details = append(details, *d)
	}

	keys, groups := groupFirstSeen(details, func(d FoodDetail) uint { return d.FoodTypeID })
	menu := &Menu{FoodTypes: make([]FoodTypeGroup, 0, len(keys))}
	for i, foods := range groups {
		menu.FoodTypes = append(menu.FoodTypes, FoodTypeGroup{
			FoodTypeID:   keys[i],
			FoodTypeName: foods[0].FoodTypeName,
			Foods:        foods,
		})
	}
	return menu, nil
}

// ModifierGroups lists every modifier option grouped by category, independent
// of any food.
func (c *Composer) ModifierGroups(ctx context.Context) ([]ModifierGroup, error) {
	all, err := c.catalog.AllModifierOptions(ctx)
	if err != nil {
		return nil, c.internal(ctx, "load modifier options", err, 0)
	}
	ids := make([]uint, 0, len(all))
	for _, o := range all {
		ids = append(ids, o.ID)
	}
	resolved, err := c.resolveOptions(ctx, ids)
	if err != nil {
		return nil, c.internal(ctx, "resolve modifier options", err, 0)
	}
	return buildModifierGroups(resolved), nil
}

func (c *Composer) internal(ctx context.Context, op string, err error, foodID uint) error {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &c.log
	}
	ev := logger.Error().Err(err).Str("op", op)
	if foodID != 0 {
		ev = ev.Uint("food_id", foodID)
	}
	ev.Msg("menu composition failed")
	return apperrors.Internal(op, err)
}
