package mockapi

import (
	"time"

	"github.com/shopspring/decimal"

	"foodbot-miniapp/internal/features/api"
	"foodbot-miniapp/internal/features/roles"
)

// seed fills the in-memory world with enough data to click through every
// dashboard. Credentials are development-only by construction.
func (s *Server) seed() {
	price := func(v string) decimal.Decimal {
		d, _ := decimal.NewFromString(v)
		return d
	}

	s.menu = []api.MenuItem{
		{
			ID: "doro-wat", Name: "Doro Wat", Description: "Chicken stew with berbere",
			Price: price("320.00"), Category: "mains", PrepTime: 25, Available: true,
			Extras:        []api.MenuExtra{{Name: "Extra injera", Price: price("25.00")}},
			Modifications: []string{"mild", "extra spicy"},
		},
		{
			ID: "shiro", Name: "Shiro", Description: "Spiced chickpea stew",
			Price: price("180.00"), Category: "mains", PrepTime: 15, Available: true,
		},
		{
			ID: "macchiato", Name: "Macchiato", Description: "Espresso with steamed milk",
			Price: price("60.00"), Category: "drinks", PrepTime: 5, Available: true,
		},
	}

	s.staff = []api.Staff{
		{ID: "1", Name: "Hanna", Role: roles.RoleKitchen, Phone: "+251911000001", Status: "active", LastActive: api.Time{Time: time.Now().UTC()}},
		{ID: "2", Name: "Dawit", Role: roles.RoleDelivery, Phone: "+251911000002", Status: "active", LastActive: api.Time{Time: time.Now().UTC()}},
	}

	s.accounts = map[string]staffAccount{
		"admin@foodbot.test":   {Password: "admin", Role: roles.RoleAdmin},
		"manager@foodbot.test": {Password: "manager", Role: roles.RoleManager},
		"kitchen@foodbot.test": {Password: "kitchen", Role: roles.RoleKitchen},
		"courier@foodbot.test": {Password: "courier", Role: roles.RoleDelivery},
	}

	s.settings = api.RestaurantSettings{
		Name:     "FoodBot Restaurant",
		Phone:    "+251911000000",
		Address:  "Bole, Addis Ababa",
		Currency: "ETB",
		Open:     true,
	}
}
