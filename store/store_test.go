package store

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/doinggreatt/appetit-backend/apperrors"
	"github.com/doinggreatt/appetit-backend/models"
)

func getTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestSeedLookupsIsIdempotent(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedLookups(ctx, db))
	require.NoError(t, SeedLookups(ctx, db))

	var statuses []models.OrderStatus
	require.NoError(t, db.Order("id").Find(&statuses).Error)
	require.Len(t, statuses, 4)
	assert.Equal(t, "pending", statuses[0].Name)
	assert.Equal(t, "finished", statuses[3].Name)

	id, err := New(db).StatusIDByName(ctx, "pending")
	require.NoError(t, err)
	assert.Equal(t, statuses[0].ID, id)
}

func TestStatusIDByNameMissing(t *testing.T) {
	db := getTestDB(t)
	_, err := New(db).StatusIDByName(context.Background(), "pending")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFetchByIDNotFound(t *testing.T) {
	db := getTestDB(t)
	_, err := New(db).Food(context.Background(), 3)
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "food", nf.Entity)
	assert.Equal(t, uint(3), nf.ID)
}

func TestFoodSizesInInsertionOrder(t *testing.T) {
	db := getTestDB(t)
	st := New(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.FoodSize{Name: "Large", ParentID: 1, Price: 250}).Error)
	require.NoError(t, db.Create(&models.FoodSize{Name: "Other", ParentID: 2, Price: 10}).Error)
	require.NoError(t, db.Create(&models.FoodSize{Name: "Small", ParentID: 1, Price: 100}).Error)

	sizes, err := st.FoodSizes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, sizes, 2)
	assert.Equal(t, "Large", sizes[0].Name)
	assert.Equal(t, "Small", sizes[1].Name)
}

func TestPricesSkipUnknownIDs(t *testing.T) {
	db := getTestDB(t)
	st := New(db)
	ctx := context.Background()

	small := models.FoodSize{Name: "Small", ParentID: 1, Price: 100}
	require.NoError(t, db.Create(&small).Error)

	got, err := st.FoodSizePrices(ctx, []uint{small.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, map[uint]float64{small.ID: 100}, got)

	got, err = st.ModifierOptionPrices(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateFoodRollsBackOnDuplicateModifier(t *testing.T) {
	db := getTestDB(t)
	st := New(db)
	ctx := context.Background()

	option := models.ModifierOption{Name: "Ranch", CategoryID: 1, Price: 25}
	require.NoError(t, db.Create(&option).Error)

	food := models.Food{Name: "Margherita", TypeID: 1}
	err := st.CreateFood(ctx, &food, []models.FoodSize{{Name: "Small", Price: 100}}, []uint{option.ID, option.ID})
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)

	var foods, sizes, links int64
	db.Model(&models.Food{}).Count(&foods)
	db.Model(&models.FoodSize{}).Count(&sizes)
	db.Model(&models.FoodModifierOption{}).Count(&links)
	assert.Zero(t, foods)
	assert.Zero(t, sizes)
	assert.Zero(t, links)
}

func TestMenuEntryUniquePerFood(t *testing.T) {
	db := getTestDB(t)
	st := New(db)
	ctx := context.Background()

	require.NoError(t, st.CreateMenuEntry(ctx, &models.MenuEntry{FoodID: 1, PriorityLevel: 1}))
	err := st.CreateMenuEntry(ctx, &models.MenuEntry{FoodID: 1, PriorityLevel: 2})
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)

	entry, err := st.MenuEntryByFood(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.PriorityLevel)

	entry, err = st.MenuEntryByFood(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestMissingModifierOptions(t *testing.T) {
	db := getTestDB(t)
	st := New(db)

	option := models.ModifierOption{Name: "Ranch", CategoryID: 1, Price: 25}
	require.NoError(t, db.Create(&option).Error)

	missing, err := st.MissingModifierOptions(context.Background(), []uint{option.ID, 8, 9, 8})
	require.NoError(t, err)
	assert.Equal(t, []uint{8, 9}, missing)
}

func TestOrderLinesAndTotal(t *testing.T) {
	db := getTestDB(t)
	st := New(db)
	ctx := context.Background()

	order := models.Order{StatusID: 1, UserID: 1}
	require.NoError(t, st.CreateOrder(ctx, &order))
	require.NoError(t, st.AddOrderFoods(ctx, order.ID, []uint{3, 3}))
	require.NoError(t, st.AddOrderFoodSizes(ctx, order.ID, []uint{7}))
	require.NoError(t, st.AddOrderModifierOptions(ctx, order.ID, nil))
	require.NoError(t, st.SetOrderTotal(ctx, order.ID, 42.5))

	foods, sizes, options, err := st.OrderLines(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 3}, foods)
	assert.Equal(t, []uint{7}, sizes)
	assert.Empty(t, options)

	stored, err := st.Order(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 42.5, stored.TotalSum)

	err = st.SetOrderTotal(ctx, 999, 1)
	assert.True(t, apperrors.IsNotFound(err))
}
