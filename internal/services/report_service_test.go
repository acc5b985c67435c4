package services

import (
	"testing"

	"cantina_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInventoryReportEmptyOrders(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Coxinha", Price: 5.00, InitialQuantity: 10, CurrentQuantity: 10},
		{ID: "p2", Name: "Suco", Price: 2.50, InitialQuantity: 20, CurrentQuantity: 15},
	}

	report := BuildInventoryReport(products, nil)
	require.Len(t, report.Items, 2)

	for _, row := range report.Items {
		assert.Equal(t, 0, row.TotalSold)
		assert.Equal(t, 0.00, row.TotalRevenue)
		assert.Equal(t, row.Product.CurrentQuantity, row.RemainingStock)
	}
	// potential revenue = initial stock * price
	assert.Equal(t, 50.00, findAnalysis(t, report.Items, "p1").PotentialRevenue)
	assert.Equal(t, 50.00, findAnalysis(t, report.Items, "p2").PotentialRevenue)

	assert.Equal(t, 30, report.TotalInitialStock)
	assert.Equal(t, 0, report.TotalSoldItems)
	assert.Equal(t, 25, report.TotalRemainingStock)
	assert.Equal(t, 100.00, report.TotalPotentialRevenue)
	assert.Equal(t, 0.00, report.PercentSold)
}

func TestBuildInventoryReportAccumulatesAndSorts(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Coxinha", Price: 5.00, InitialQuantity: 10, CurrentQuantity: 5},
		{ID: "p2", Name: "Suco", Price: 2.50, InitialQuantity: 20, CurrentQuantity: 18},
		{ID: "p3", Name: "Pastel", Price: 6.00, InitialQuantity: 8, CurrentQuantity: 8},
	}
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "Coxinha", Quantity: 3, Price: 5.00, Subtotal: 15.00},
			{ProductID: "p2", ProductName: "Suco", Quantity: 2, Price: 2.50, Subtotal: 5.00},
		}},
		{Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "Coxinha", Quantity: 2, Price: 5.00, Subtotal: 10.00},
		}},
	}

	report := BuildInventoryReport(products, orders)
	require.Len(t, report.Items, 3)

	// Sorted by revenue, descending; zero-revenue rows keep catalog order.
	assert.Equal(t, "p1", report.Items[0].Product.ID)
	assert.Equal(t, 25.00, report.Items[0].TotalRevenue)
	assert.Equal(t, 5, report.Items[0].TotalSold)
	assert.Equal(t, 50.0, report.Items[0].PercentSold)
	assert.Equal(t, "p2", report.Items[1].Product.ID)
	assert.Equal(t, "p3", report.Items[2].Product.ID)

	// Remaining stock comes from the product record, not the orders.
	assert.Equal(t, 5, report.Items[0].RemainingStock)
	assert.Equal(t, 18, report.Items[1].RemainingStock)

	assert.Equal(t, 30.00, report.TotalRevenue)
	assert.Equal(t, 7, report.TotalSoldItems)
}

func TestBuildInventoryReportEmptyCatalog(t *testing.T) {
	report := BuildInventoryReport(nil, nil)
	assert.Empty(t, report.Items)
	assert.Equal(t, 0.00, report.TotalRevenue)
	assert.Equal(t, 0.00, report.PercentSold)
}

func TestBuildProfitReportDefaultsMissingCostToZero(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Coxinha", Price: 5.00, InitialQuantity: 10, CurrentQuantity: 5},
	}
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "Coxinha", Quantity: 5, Price: 5.00, Subtotal: 25.00},
		}},
	}

	report := BuildProfitReport(products, orders, nil)
	require.Len(t, report.Items, 1)

	row := report.Items[0]
	assert.Equal(t, 0.00, row.CostPrice)
	assert.Equal(t, 25.00, row.TotalRevenue)
	assert.Equal(t, 0.00, row.TotalCost)
	assert.Equal(t, 25.00, row.NetProfit)
	// Uncosted product on a positive price: margin is 100% by the formula.
	assert.Equal(t, 100.00, row.Margin)
}

func TestBuildProfitReportWithCosts(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Coxinha", Price: 5.00, InitialQuantity: 10, CurrentQuantity: 5},
		{ID: "p2", Name: "Suco", Price: 2.50, InitialQuantity: 20, CurrentQuantity: 16},
	}
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "Coxinha", Quantity: 5, Price: 5.00, Subtotal: 25.00},
			{ProductID: "p2", ProductName: "Suco", Quantity: 4, Price: 2.50, Subtotal: 10.00},
		}},
	}
	costs := []models.ProductCost{
		{ProductID: "p1", CostPrice: 2.00, SalePrice: 5.00, Margin: 60.0},
		{ProductID: "p2", CostPrice: 1.00, SalePrice: 2.50, Margin: 60.0},
	}

	report := BuildProfitReport(products, orders, costs)
	require.Len(t, report.Items, 2)

	// Sorted by net profit, descending.
	assert.Equal(t, "p1", report.Items[0].Product.ID)
	assert.Equal(t, 10.00, report.Items[0].TotalCost)
	assert.Equal(t, 15.00, report.Items[0].NetProfit)
	assert.Equal(t, 60.00, report.Items[0].Margin)

	assert.Equal(t, "p2", report.Items[1].Product.ID)
	assert.Equal(t, 4.00, report.Items[1].TotalCost)
	assert.Equal(t, 6.00, report.Items[1].NetProfit)

	assert.Equal(t, 35.00, report.TotalRevenue)
	assert.Equal(t, 14.00, report.TotalCost)
	assert.Equal(t, 21.00, report.TotalNetProfit)
}

func TestBuildProfitReportEmptyCatalog(t *testing.T) {
	report := BuildProfitReport(nil, nil, nil)
	assert.Empty(t, report.Items)
	assert.Equal(t, 0.00, report.TotalNetProfit)
}

func TestMarginGuardsZeroSalePrice(t *testing.T) {
	assert.Equal(t, 0.00, Margin(0, 2))
	assert.Equal(t, 0.00, Margin(-1, 2))
	assert.Equal(t, 60.00, Margin(5, 2))
	assert.Equal(t, 100.00, Margin(5, 0))
}

func findAnalysis(t *testing.T, items []models.ProductAnalysis, productID string) models.ProductAnalysis {
	t.Helper()
	for _, item := range items {
		if item.Product.ID == productID {
			return item
		}
	}
	t.Fatalf("product %s not found in analysis", productID)
	return models.ProductAnalysis{}
}
