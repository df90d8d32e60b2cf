package inventory

import (
	"context"
	"sync"
	"testing"

	"github.com/platelunch/ordercore/internal/models"
	"github.com/platelunch/ordercore/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishMenu(t *testing.T, menus *memory.DailyMenuRepository, items ...models.DailyMenuItem) {
	t.Helper()
	menu := &models.DailyMenu{
		ID:       "menu-1",
		StoreID:  "store-1",
		MenuDate: "2025-06-12",
		Items:    items,
	}
	require.NoError(t, menus.Publish(context.Background(), menu))
}

func item(id string, qty int) models.DailyMenuItem {
	return models.DailyMenuItem{
		ID:               id,
		MenuID:           "cat-" + id,
		Name:             "Dish " + id,
		UnitPrice:        10,
		StartingQuantity: qty,
		CurrentQuantity:  qty,
	}
}

func TestReserveAll_DecrementsEveryLine(t *testing.T) {
	ctx := context.Background()
	menus := memory.NewDailyMenuRepository()
	publishMenu(t, menus, item("a", 5), item("b", 3))

	reserver := NewReserver(menus)
	err := reserver.ReserveAll(ctx, []models.OrderLine{
		{DailyMenuItemID: "a", Quantity: 2},
		{DailyMenuItemID: "b", Quantity: 3},
	})
	require.NoError(t, err)

	a, err := menus.GetItem(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 3, a.CurrentQuantity)
	assert.True(t, a.IsAvailable)

	b, err := menus.GetItem(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 0, b.CurrentQuantity)
	assert.False(t, b.IsAvailable)
}

func TestReserveAll_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	menus := memory.NewDailyMenuRepository()
	publishMenu(t, menus, item("a", 5), item("b", 5), item("c", 1))

	reserver := NewReserver(menus)
	err := reserver.ReserveAll(ctx, []models.OrderLine{
		{DailyMenuItemID: "a", Quantity: 2},
		{DailyMenuItemID: "b", Quantity: 1},
		{DailyMenuItemID: "c", Quantity: 2}, // only 1 left
	})

	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "c", stockErr.MenuItemID)
	assert.Equal(t, 2, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Remaining)

	// Earlier decrements must have been compensated.
	for id, want := range map[string]int{"a": 5, "b": 5, "c": 1} {
		got, err := menus.GetItem(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.CurrentQuantity, "item %s", id)
	}
}

func TestReserveAll_SkipsCatalogLines(t *testing.T) {
	ctx := context.Background()
	menus := memory.NewDailyMenuRepository()
	publishMenu(t, menus, item("a", 5))

	reserver := NewReserver(menus)
	err := reserver.ReserveAll(ctx, []models.OrderLine{
		{MenuID: "catalog-only", Quantity: 4},
	})
	require.NoError(t, err)

	a, err := menus.GetItem(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 5, a.CurrentQuantity)
}

func TestReserveAll_TwoConcurrentCallsOneWins(t *testing.T) {
	// startingQuantity 5, two concurrent reservations of 3: exactly one
	// succeeds and 2 units remain.
	ctx := context.Background()
	menus := memory.NewDailyMenuRepository()
	publishMenu(t, menus, item("a", 5))
	reserver := NewReserver(menus)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = reserver.ReserveAll(ctx, []models.OrderLine{{DailyMenuItemID: "a", Quantity: 3}})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, models.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, succeeded)

	a, err := menus.GetItem(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, a.CurrentQuantity)
}

func TestReserveAll_NoOversellUnderContention(t *testing.T) {
	const starting = 50
	const goroutines = 100

	ctx := context.Background()
	menus := memory.NewDailyMenuRepository()
	publishMenu(t, menus, item("a", starting))
	reserver := NewReserver(menus)

	var wg sync.WaitGroup
	results := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- reserver.ReserveAll(ctx, []models.OrderLine{{DailyMenuItemID: "a", Quantity: 1}})
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}

	a, err := menus.GetItem(ctx, "a")
	require.NoError(t, err)
	assert.LessOrEqual(t, succeeded, starting)
	// Conservation: units handed out plus units left equals units started.
	assert.Equal(t, starting, succeeded+a.CurrentQuantity)
}

func TestReleaseAll_ReturnsStock(t *testing.T) {
	ctx := context.Background()
	menus := memory.NewDailyMenuRepository()
	publishMenu(t, menus, item("a", 5))
	reserver := NewReserver(menus)

	require.NoError(t, reserver.ReserveAll(ctx, []models.OrderLine{{DailyMenuItemID: "a", Quantity: 5}}))
	a, err := menus.GetItem(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, 0, a.CurrentQuantity)
	require.False(t, a.IsAvailable)

	require.NoError(t, reserver.ReleaseAll(ctx, []models.OrderLine{{DailyMenuItemID: "a", Quantity: 5}}))
	a, err = menus.GetItem(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 5, a.CurrentQuantity)
	assert.True(t, a.IsAvailable)
}
