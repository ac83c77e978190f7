package menu

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doinggreatt/appetit-backend/apperrors"
	"github.com/doinggreatt/appetit-backend/models"
	"github.com/doinggreatt/appetit-backend/store"
)

func TestCreateFoodWithSizesAndModifiers(t *testing.T) {
	db := getTestDB(t)
	st := store.New(db)
	editor := NewEditor(st, zerolog.Nop())
	ctx := context.Background()

	ft, err := editor.CreateFoodType(ctx, "Pizza")
	require.NoError(t, err)
	sauces, err := editor.CreateModifierCategory(ctx, "Sauces")
	require.NoError(t, err)
	ranch, err := editor.CreateModifierOption(ctx, sauces.ID, "Ranch", 25)
	require.NoError(t, err)

	food, err := editor.CreateFood(ctx, NewFood{
		Name:   "Margherita",
		TypeID: ft.ID,
		Sizes: []NewFoodSize{
			{Name: "Small", Price: 100},
			{Name: "Large", Price: 250, IsNew: true},
		},
		ModifierOptionIDs: []uint{ranch.ID},
	})
	require.NoError(t, err)
	assert.NotZero(t, food.ID)

	detail, err := NewComposer(st, zerolog.Nop()).FoodDetail(ctx, food.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Sizes, 2)
	require.Len(t, detail.ModifierGroups, 1)
	assert.Equal(t, "Ranch", detail.ModifierGroups[0].Options[0].Name)
}

func TestCreateFoodRejectsBadInput(t *testing.T) {
	db := getTestDB(t)
	editor := NewEditor(store.New(db), zerolog.Nop())
	ctx := context.Background()

	ft, err := editor.CreateFoodType(ctx, "Pizza")
	require.NoError(t, err)
	sauces, err := editor.CreateModifierCategory(ctx, "Sauces")
	require.NoError(t, err)
	ranch, err := editor.CreateModifierOption(ctx, sauces.ID, "Ranch", 25)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   NewFood
	}{
		{"blank name", NewFood{Name: "  ", TypeID: ft.ID}},
		{"unknown food type", NewFood{Name: "Margherita", TypeID: 99}},
		{"negative size price", NewFood{Name: "Margherita", TypeID: ft.ID, Sizes: []NewFoodSize{{Name: "Small", Price: -1}}}},
		{"unnamed size", NewFood{Name: "Margherita", TypeID: ft.ID, Sizes: []NewFoodSize{{Price: 1}}}},
		{"duplicate option", NewFood{Name: "Margherita", TypeID: ft.ID, ModifierOptionIDs: []uint{ranch.ID, ranch.ID}}},
		{"unknown option", NewFood{Name: "Margherita", TypeID: ft.ID, ModifierOptionIDs: []uint{ranch.ID, 77}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := editor.CreateFood(ctx, tt.in)
			var invalid *apperrors.ValidationError
			assert.ErrorAs(t, err, &invalid)
		})
	}

	var count int64
	db.Model(&models.Food{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateModifierOptionNeedsCategory(t *testing.T) {
	db := getTestDB(t)
	editor := NewEditor(store.New(db), zerolog.Nop())

	_, err := editor.CreateModifierOption(context.Background(), 5, "Ranch", 25)
	var invalid *apperrors.ValidationError
	assert.ErrorAs(t, err, &invalid)
}

func TestAddMenuEntryOncePerFood(t *testing.T) {
	db := getTestDB(t)
	editor := NewEditor(store.New(db), zerolog.Nop())
	ctx := context.Background()

	ft, err := editor.CreateFoodType(ctx, "Pizza")
	require.NoError(t, err)
	food, err := editor.CreateFood(ctx, NewFood{Name: "Margherita", TypeID: ft.ID})
	require.NoError(t, err)

	entry, err := editor.AddMenuEntry(ctx, food.ID, 1, "top")
	require.NoError(t, err)
	assert.Equal(t, food.ID, entry.FoodID)

	_, err = editor.AddMenuEntry(ctx, food.ID, 2, "")
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)

	_, err = editor.AddMenuEntry(ctx, 404, 1, "")
	var invalid *apperrors.ValidationError
	assert.ErrorAs(t, err, &invalid)
}
