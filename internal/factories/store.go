package factories

import (
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/platelunch/ordercore/internal/models"
)

var fake = faker.New()

type StoreFactory struct{}

// CreateSchedule builds a store schedule with the platform defaults from
// config. The store id is fresh, so callers get an unclaimed store.
func (sf *StoreFactory) CreateSchedule(config *models.Config) *models.StoreSchedule {
	return &models.StoreSchedule{
		StoreID:            cuid.New(),
		BusinessStartTime:  config.DefaultBusinessStart,
		OrderCutoffTime:    config.DefaultOrderCutoff,
		AcceptanceOverride: models.AcceptanceCurrent,
		Timezone:           config.Timezone,
	}
}

// CreateCustomer builds plausible customer contact details for demo orders.
func (sf *StoreFactory) CreateCustomer() (name, phone string) {
	return fake.Person().Name(), fake.Phone().Number()
}
