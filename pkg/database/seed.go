package database

import (
	"context"
	"log"

	"breakfastpos/internal/models"
	"breakfastpos/internal/repositories"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name  string
	price string
}

type seedCategory struct {
	name         string
	displayOrder int
	products     []seedProduct
}

var seedMenu = []seedCategory{
	{
		name:         "漢堡",
		displayOrder: 1,
		products: []seedProduct{
			{"起司蛋堡", "45"},
			{"卡啦雞腿堡", "65"},
		},
	},
	{
		name:         "蛋餅",
		displayOrder: 2,
		products: []seedProduct{
			{"原味蛋餅", "25"},
			{"玉米蛋餅", "35"},
		},
	},
	{
		name:         "飲料",
		displayOrder: 3,
		products: []seedProduct{
			{"大冰奶", "25"},
			{"研磨咖啡", "45"},
		},
	},
}

// SeedMenu loads the starter menu on an empty database. A non-empty category
// table means the shop has already been set up, so seeding is skipped.
func SeedMenu(ctx context.Context, categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) error {
	existing, err := categoryRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, sc := range seedMenu {
		category := models.NewCategory(sc.name, sc.displayOrder)
		if err := categoryRepo.Create(ctx, category); err != nil {
			return err
		}
		for _, sp := range sc.products {
			price, err := decimal.NewFromString(sp.price)
			if err != nil {
				return err
			}
			product := models.NewProduct(category.ID, sp.name, price)
			if err := productRepo.Create(ctx, product); err != nil {
				return err
			}
		}
	}

	log.Printf("Seeded starter menu: %d categories", len(seedMenu))
	return nil
}

// SeedAdminUser creates the initial admin account when no user with that
// username exists. hashFn is the password hashing function from the auth
// layer so this package stays free of crypto decisions.
func SeedAdminUser(ctx context.Context, userRepo repositories.UserRepository, username, password string, hashFn func(string) string) error {
	existing, err := userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	user := models.NewUser(username, hashFn(password), models.RoleAdmin)
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}

	log.Printf("Seeded admin user %q", username)
	return nil
}
