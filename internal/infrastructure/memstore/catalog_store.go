package memstore

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fooddelivery/backend/internal/domain/catalog"
)

// CatalogStore serves the static mock catalog: the marketplace shop list
// and each shop's menu. It is read-only after construction.
type CatalogStore struct {
	shops    []*catalog.Shop
	products map[int64]map[int64]*catalog.Product // shopID -> productID -> product
}

// NewCatalogStore creates a catalog store seeded with the mock dataset
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		shops:    seedShops(),
		products: seedProducts(),
	}
}

// Shops returns the marketplace shop list
func (s *CatalogStore) Shops(ctx context.Context) ([]*catalog.Shop, error) {
	return s.shops, nil
}

// ShopProducts returns every product of one shop
func (s *CatalogStore) ShopProducts(ctx context.Context, shopID int64) ([]*catalog.Product, error) {
	menu, ok := s.products[shopID]
	if !ok {
		return nil, catalog.ErrShopNotFound
	}

	list := make([]*catalog.Product, 0, len(menu))
	for _, p := range menu {
		list = append(list, p)
	}
	return list, nil
}

// Product returns one product of one shop
func (s *CatalogStore) Product(ctx context.Context, shopID, productID int64) (*catalog.Product, error) {
	menu, ok := s.products[shopID]
	if !ok {
		return nil, catalog.ErrShopNotFound
	}

	p, ok := menu[productID]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

func seedShops() []*catalog.Shop {
	return []*catalog.Shop{
		{
			ID:                    1,
			Name:                  `Пиццерия "Доменико"`,
			Description:           "Italyan pitstsasi, pasta",
			Image:                 "/img/premium.jpg",
			Rating:                4.9,
			EstimatedDeliveryTime: "25-35",
			HasPromo:              true,
		},
		{
			ID:                    2,
			Name:                  "Бургер King",
			Description:           "Fastfood, burgerlar",
			Image:                 "/img/premium.jpg",
			Rating:                4.7,
			EstimatedDeliveryTime: "20-30",
			HasPromo:              false,
		},
		{
			ID:                    3,
			Name:                  "Milliy Ovqat",
			Description:           "Milliy taomlar, shurvalar",
			Image:                 "/img/premium.jpg",
			Rating:                4.8,
			EstimatedDeliveryTime: "30-45",
			HasPromo:              true,
		},
	}
}

func seedProducts() map[int64]map[int64]*catalog.Product {
	pizzeria := &catalog.ShopSummary{
		ID:                    1,
		Name:                  `Пиццерия "Доменико"`,
		Address:               "Toshkent shahar, Oloy ko'chasi",
		Description:           "Italyan pitstsasi, pasta",
		EstimatedDeliveryTime: "25-35",
		Image:                 "/img/premium.jpg",
	}
	burgers := &catalog.ShopSummary{
		ID:                    2,
		Name:                  "Бургер King",
		Address:               "Toshkent shahar, Amir Temur ko'chasi",
		Description:           "Fastfood, burgerlar",
		EstimatedDeliveryTime: "20-30",
		Image:                 "/img/premium.jpg",
	}

	pizzaCategory := &catalog.Category{ID: 1, Name: "Pizza"}
	pastaCategory := &catalog.Category{ID: 2, Name: "Pasta"}
	burgerCategory := &catalog.Category{ID: 3, Name: "Burgers"}
	sidesCategory := &catalog.Category{ID: 4, Name: "Sides"}

	return map[int64]map[int64]*catalog.Product{
		1: {
			101: {
				ID:          101,
				Name:        "Margarita Pizza",
				Description: "Klassik italyan pitstsasi pomidor, mozarella va bazilikon bilan",
				Price:       decimal.NewFromInt(35000),
				Weight:      350,
				Quantity:    100,
				ImageURL:    "/img/pizza1.jpg",
				PrepareTime: 15,
				Shop:        pizzeria,
				Category:    pizzaCategory,
			},
			102: {
				ID:          102,
				Name:        "Pepperoni Pizza",
				Description: "Pepperoni va mozarella bilan mazalli pitsa",
				Price:       decimal.NewFromInt(45000),
				Weight:      400,
				Quantity:    80,
				ImageURL:    "/img/pizza2.jpg",
				PrepareTime: 18,
				Shop:        pizzeria,
				Category:    pizzaCategory,
			},
			103: {
				ID:          103,
				Name:        "Spaghetti Carbonara",
				Description: "Klassik italyan pasta spagettini bilan",
				Price:       decimal.NewFromInt(32000),
				Weight:      300,
				Quantity:    60,
				ImageURL:    "/img/pasta1.jpg",
				PrepareTime: 20,
				Shop:        pizzeria,
				Category:    pastaCategory,
			},
		},
		2: {
			201: {
				ID:          201,
				Name:        "Cheeseburger",
				Description: "Klassik burger pishloq va marinada bilan",
				Price:       decimal.NewFromInt(25000),
				Weight:      250,
				Quantity:    120,
				ImageURL:    "/img/burger1.jpg",
				PrepareTime: 10,
				Shop:        burgers,
				Category:    burgerCategory,
			},
			202: {
				ID:          202,
				Name:        "Chicken Nuggets",
				Description: "Mazali tavuk nuggetlari",
				Price:       decimal.NewFromInt(18000),
				Weight:      200,
				Quantity:    150,
				ImageURL:    "/img/nuggets1.jpg",
				PrepareTime: 8,
				Shop:        burgers,
				Category:    sidesCategory,
			},
		},
	}
}
