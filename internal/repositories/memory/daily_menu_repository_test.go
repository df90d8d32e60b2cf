package memory

import (
	"context"
	"testing"

	"github.com/platelunch/ordercore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMenu(t *testing.T, repo *DailyMenuRepository, qty int) {
	t.Helper()
	err := repo.Publish(context.Background(), &models.DailyMenu{
		ID:       "menu-1",
		StoreID:  "store-1",
		MenuDate: "2025-06-12",
		Items: []models.DailyMenuItem{
			{ID: "dmi-1", MenuID: "cat-1", Name: "Bento", UnitPrice: 12, StartingQuantity: qty, CurrentQuantity: qty},
		},
	})
	require.NoError(t, err)
}

func TestConditionalDecrement_Succeeds(t *testing.T) {
	repo := NewDailyMenuRepository()
	seedMenu(t, repo, 5)

	remaining, err := repo.ConditionalDecrement(context.Background(), "dmi-1", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	item, err := repo.GetItem(context.Background(), "dmi-1")
	require.NoError(t, err)
	assert.Equal(t, 2, item.CurrentQuantity)
	assert.True(t, item.IsAvailable)
}

func TestConditionalDecrement_ExactlyDrainsStock(t *testing.T) {
	repo := NewDailyMenuRepository()
	seedMenu(t, repo, 3)

	remaining, err := repo.ConditionalDecrement(context.Background(), "dmi-1", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	item, err := repo.GetItem(context.Background(), "dmi-1")
	require.NoError(t, err)
	assert.False(t, item.IsAvailable)
}

func TestConditionalDecrement_InsufficientStockMutatesNothing(t *testing.T) {
	repo := NewDailyMenuRepository()
	seedMenu(t, repo, 2)

	_, err := repo.ConditionalDecrement(context.Background(), "dmi-1", 3)

	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Remaining)

	item, err := repo.GetItem(context.Background(), "dmi-1")
	require.NoError(t, err)
	assert.Equal(t, 2, item.CurrentQuantity)
	assert.True(t, item.IsAvailable)
}

func TestConditionalDecrement_UnknownItem(t *testing.T) {
	repo := NewDailyMenuRepository()
	seedMenu(t, repo, 2)

	_, err := repo.ConditionalDecrement(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, models.ErrMenuItemNotFound)
}

func TestAddStock_RestoresAvailability(t *testing.T) {
	repo := NewDailyMenuRepository()
	seedMenu(t, repo, 1)

	_, err := repo.ConditionalDecrement(context.Background(), "dmi-1", 1)
	require.NoError(t, err)

	remaining, err := repo.AddStock(context.Background(), "dmi-1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, remaining)

	item, err := repo.GetItem(context.Background(), "dmi-1")
	require.NoError(t, err)
	assert.True(t, item.IsAvailable)
}

func TestGetByStoreAndDate_ReflectsLiveQuantities(t *testing.T) {
	repo := NewDailyMenuRepository()
	seedMenu(t, repo, 5)

	_, err := repo.ConditionalDecrement(context.Background(), "dmi-1", 2)
	require.NoError(t, err)

	menu, err := repo.GetByStoreAndDate(context.Background(), "store-1", "2025-06-12")
	require.NoError(t, err)
	require.Len(t, menu.Items, 1)
	assert.Equal(t, 3, menu.Items[0].CurrentQuantity)
}

func TestGetByStoreAndDate_Missing(t *testing.T) {
	repo := NewDailyMenuRepository()

	_, err := repo.GetByStoreAndDate(context.Background(), "store-1", "2025-06-12")
	assert.ErrorIs(t, err, models.ErrMenuNotFound)
}
