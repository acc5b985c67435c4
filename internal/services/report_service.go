package services

import (
	"sort"

	"cantina_backend/internal/models"
	"cantina_backend/internal/repositories"
	"cantina_backend/pkg/money"
)

// ReportService builds the admin-only aggregate views: inventory analysis and
// profit analysis. Both join the full order history against the catalog; cost
// records are optional and default to zero.
type ReportService interface {
	InventoryAnalysis() (*models.InventoryReport, error)
	ProfitAnalysis() (*models.ProfitReport, error)
}

type reportService struct {
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	costRepo    repositories.CostRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
	costRepo repositories.CostRepository,
) ReportService {
	return &reportService{productRepo: productRepo, orderRepo: orderRepo, costRepo: costRepo}
}

func (s *reportService) InventoryAnalysis() (*models.InventoryReport, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return BuildInventoryReport(products, orders), nil
}

func (s *reportService) ProfitAnalysis() (*models.ProfitReport, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	costs, err := s.costRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return BuildProfitReport(products, orders, costs), nil
}

// salesByProduct accumulates sold quantity and revenue per product id from
// the item snapshots of a set of orders.
func salesByProduct(orders []models.Order) map[string]*models.ProductSales {
	sales := make(map[string]*models.ProductSales)
	for _, order := range orders {
		for _, item := range order.Items {
			entry, ok := sales[item.ProductID]
			if !ok {
				entry = &models.ProductSales{ProductID: item.ProductID, ProductName: item.ProductName}
				sales[item.ProductID] = entry
			}
			entry.Quantity += item.Quantity
			entry.TotalValue = money.Sum([]float64{entry.TotalValue, item.Subtotal})
		}
	}
	return sales
}

// BuildInventoryReport is the pure inventory analysis over a product catalog
// and an order history. Remaining stock is read from the product record, the
// authoritative source; it is not derived from the orders. Rows are sorted by
// revenue, descending, with ties keeping catalog order (stable sort).
func BuildInventoryReport(products []models.Product, orders []models.Order) *models.InventoryReport {
	sales := salesByProduct(orders)

	report := &models.InventoryReport{Items: make([]models.ProductAnalysis, 0, len(products))}
	for _, product := range products {
		row := models.ProductAnalysis{
			Product:          product,
			RemainingStock:   product.CurrentQuantity,
			PotentialRevenue: money.ItemSubtotal(product.Price, product.InitialQuantity),
		}
		if s, ok := sales[product.ID]; ok {
			row.TotalSold = s.Quantity
			row.TotalRevenue = s.TotalValue
		}
		row.PercentSold = money.Percent(float64(row.TotalSold), float64(product.InitialQuantity))
		report.Items = append(report.Items, row)

		report.TotalInitialStock += product.InitialQuantity
		report.TotalSoldItems += row.TotalSold
		report.TotalRemainingStock += row.RemainingStock
		report.TotalRevenue = money.Sum([]float64{report.TotalRevenue, row.TotalRevenue})
		report.TotalPotentialRevenue = money.Sum([]float64{report.TotalPotentialRevenue, row.PotentialRevenue})
	}
	report.PercentSold = money.Percent(float64(report.TotalSoldItems), float64(report.TotalInitialStock))

	sort.SliceStable(report.Items, func(i, j int) bool {
		return report.Items[i].TotalRevenue > report.Items[j].TotalRevenue
	})
	return report
}

// BuildProfitReport is the pure profit analysis joining catalog, orders and
// cost records. Products without a cost record are costed at zero, which
// makes their margin come out at 100% of a positive price; that edge case is
// documented behavior. Rows are sorted by net profit, descending, stable.
func BuildProfitReport(products []models.Product, orders []models.Order, costs []models.ProductCost) *models.ProfitReport {
	sales := salesByProduct(orders)

	costByProduct := make(map[string]models.ProductCost, len(costs))
	for _, c := range costs {
		costByProduct[c.ProductID] = c
	}

	report := &models.ProfitReport{Items: make([]models.ProductProfit, 0, len(products))}
	for _, product := range products {
		row := models.ProductProfit{Product: product}
		if c, ok := costByProduct[product.ID]; ok {
			row.CostPrice = c.CostPrice
		}
		if s, ok := sales[product.ID]; ok {
			row.TotalSold = s.Quantity
			row.TotalRevenue = s.TotalValue
		}
		row.TotalCost = money.ItemSubtotal(row.CostPrice, row.TotalSold)
		row.NetProfit = money.Sum([]float64{row.TotalRevenue, -row.TotalCost})
		row.Margin = Margin(product.Price, row.CostPrice)
		report.Items = append(report.Items, row)

		report.TotalRevenue = money.Sum([]float64{report.TotalRevenue, row.TotalRevenue})
		report.TotalCost = money.Sum([]float64{report.TotalCost, row.TotalCost})
	}
	report.TotalNetProfit = money.Sum([]float64{report.TotalRevenue, -report.TotalCost})

	sort.SliceStable(report.Items, func(i, j int) bool {
		return report.Items[i].NetProfit > report.Items[j].NetProfit
	})
	return report
}
