package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"cafe/internal/core/model"
)

// MinSeededItems is the menu size under which startup reseeds the catalog.
const MinSeededItems = 5

func (s *menuService) Seed(ctx context.Context, items []*model.MenuItem, minItems int64) (bool, error) {
	count, err := s.menuRepo.Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "count menu items")
	}
	if count >= minItems {
		zap.L().Info("menu already populated, skipping seed", zap.Int64("items", count))
		return false, nil
	}

	zap.L().Info("seeding menu", zap.Int64("existing", count), zap.Int("items", len(items)))
	if err := s.menuRepo.Replace(ctx, items); err != nil {
		return false, errors.Wrap(err, "seed menu")
	}
	s.invalidate(ctx)
	return true, nil
}

// DefaultMenu is the catalog a fresh installation starts with. Prices are in
// rupees.
func DefaultMenu() []*model.MenuItem {
	const (
		espresso   = "https://images.unsplash.com/photo-1510591509098-f4fdc6d0ff04?w=500"
		cappuccino = "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=500"
	)
	return []*model.MenuItem{
		model.NewMenuItem("Espresso Single", 120, "Coffee", espresso, "Rich and bold single shot of premium espresso."),
		model.NewMenuItem("Espresso Double", 180, "Coffee", espresso, "Double shot of our signature bold espresso."),
		model.NewMenuItem("Classic Cappuccino", 220, "Coffee", cappuccino, "Espresso with equal parts steamed milk and foam."),
		model.NewMenuItem("Cafe Latte", 240, "Coffee", "https://images.unsplash.com/photo-1593443320739-77f74952dabd?w=500", "Smooth espresso with steamed milk and a light layer of foam."),
		model.NewMenuItem("Vanilla Latte", 260, "Coffee", "https://images.unsplash.com/photo-1570968992193-96ab70c6524b?w=500", "Our classic latte infused with premium vanilla syrup."),
		model.NewMenuItem("Caramel Macchiato", 280, "Coffee", "https://images.unsplash.com/photo-1485808191679-5f8c7c860695?w=500", "Espresso with vanilla syrup, steamed milk and caramel drizzle."),
		model.NewMenuItem("Americano", 180, "Coffee", "https://images.unsplash.com/photo-1551030173-122f5236b58a?w=500", "Espresso shots topped with hot water."),
		model.NewMenuItem("Mocha", 280, "Coffee", "https://images.unsplash.com/photo-1578314675249-a6910f80cc4e?w=500", "Espresso with bittersweet mocha sauce and steamed milk."),
		model.NewMenuItem("Flat White", 230, "Coffee", "https://images.unsplash.com/photo-1577968897966-3d4325b36b61?w=500", "Espresso with microfoam steamed milk."),
		model.NewMenuItem("Hazelnut Latte", 270, "Coffee", "https://images.unsplash.com/photo-1620916297397-a4a5402a3c6c?w=500", "Warm and nutty hazelnut infused latte."),
	}
}
