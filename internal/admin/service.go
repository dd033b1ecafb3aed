package admin

import (
	"context"
	"sort"

	"loafer-be/internal/catalog"
	"loafer-be/internal/checkout"

	"github.com/shopspring/decimal"
)

// OrderSource is the slice of the checkout store the dashboard reads.
type OrderSource interface {
	ListOrders(ctx context.Context) ([]*checkout.Order, error)
}

// UserCounter reports how many accounts exist.
type UserCounter interface {
	Count(ctx context.Context) (int, error)
}

type Stats struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	OrderCount        int             `json:"order_count"`
	ProductCount      int             `json:"product_count"`
	CustomerCount     int             `json:"customer_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

type ProductSales struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type Service interface {
	Overview(ctx context.Context) (Stats, error)
	TopProducts(ctx context.Context, n int) ([]ProductSales, error)
}

type service struct {
	orders  OrderSource
	catalog catalog.Repository
	users   UserCounter
}

func NewService(orders OrderSource, catalogRepo catalog.Repository, users UserCounter) Service {
	return &service{orders: orders, catalog: catalogRepo, users: users}
}

func (s *service) Overview(ctx context.Context) (Stats, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return Stats{}, err
	}

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Totals.Total)
	}

	products, err := s.catalog.GetAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	customers, err := s.users.Count(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalRevenue:      revenue,
		OrderCount:        len(orders),
		ProductCount:      len(products),
		CustomerCount:     customers,
		AverageOrderValue: decimal.Zero,
	}
	if len(orders) > 0 {
		stats.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	return stats, nil
}

// TopProducts ranks products by units sold across all orders, revenue as
// the tie breaker.
func (s *service) TopProducts(ctx context.Context, n int) ([]ProductSales, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*ProductSales)
	for _, o := range orders {
		for _, item := range o.Items {
			ps, ok := byProduct[item.ProductID]
			if !ok {
				ps = &ProductSales{ProductID: item.ProductID, Name: item.Name, Revenue: decimal.Zero}
				byProduct[item.ProductID] = ps
			}
			ps.UnitsSold += item.Quantity
			ps.Revenue = ps.Revenue.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	ranked := make([]ProductSales, 0, len(byProduct))
	for _, ps := range byProduct {
		ranked = append(ranked, *ps)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].UnitsSold != ranked[j].UnitsSold {
			return ranked[i].UnitsSold > ranked[j].UnitsSold
		}
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}
