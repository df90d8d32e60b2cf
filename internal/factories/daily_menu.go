package factories

import (
	"math/rand"

	"github.com/lucsky/cuid"
	"github.com/platelunch/ordercore/internal/models"
)

type DailyMenuFactory struct{}

// CreateDailyMenu builds a published menu for the given store and date with
// itemCount dishes, each carrying up to maxQuantity units of stock.
func (df *DailyMenuFactory) CreateDailyMenu(storeID, menuDate string, itemCount, maxQuantity int) *models.DailyMenu {
	menu := &models.DailyMenu{
		ID:       cuid.New(),
		StoreID:  storeID,
		MenuDate: menuDate,
	}
	for i := 0; i < itemCount; i++ {
		qty := rand.Intn(maxQuantity) + 1
		menu.Items = append(menu.Items, models.DailyMenuItem{
			ID:               cuid.New(),
			DailyMenuID:      menu.ID,
			MenuID:           cuid.New(),
			Name:             generateRandomDishName(),
			UnitPrice:        fake.Float64(2, 5, 50),
			StartingQuantity: qty,
			CurrentQuantity:  qty,
			IsAvailable:      true,
		})
	}
	return menu
}

func generateRandomDishName() string {
	dishes := []string{
		"Margherita Pizza", "Chicken Tikka Masala", "Classic Cheeseburger",
		"Caesar Salad", "Pad Thai", "Spaghetti Carbonara", "Sushi Roll",
		"Falafel Wrap", "Beef Madras", "Greek Salad", "Ramen", "Tacos",
		"Vegetable Curry", "BBQ Ribs", "Mushroom Risotto", "Fried Rice",
	}
	return dishes[rand.Intn(len(dishes))]
}
