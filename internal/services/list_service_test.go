package services

import (
	"testing"

	"cantina_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeTotalIsIdempotent(t *testing.T) {
	listRepo := newFakeListRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewListService(listRepo, orderRepo, nil)

	list := seedList(t, listRepo, "Feira")
	_, err := orderRepo.Create(nil, &models.Order{ListID: list.ID, ClientName: "A", TotalValue: 17.50})
	require.NoError(t, err)
	_, err = orderRepo.Create(nil, &models.Order{ListID: list.ID, ClientName: "B", TotalValue: 2.50})
	require.NoError(t, err)

	first, err := svc.RecomputeTotal(list.ID)
	require.NoError(t, err)
	second, err := svc.RecomputeTotal(list.ID)
	require.NoError(t, err)

	assert.Equal(t, 20.00, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 0, listRepo.updateTotalCalls, "pure recompute never writes")
}

func TestRefreshCachedTotalWritesBackOnlyWhenStale(t *testing.T) {
	listRepo := newFakeListRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewListService(listRepo, orderRepo, nil)

	list := seedList(t, listRepo, "Feira")
	_, err := orderRepo.Create(nil, &models.Order{ListID: list.ID, ClientName: "A", TotalValue: 17.50})
	require.NoError(t, err)

	// First refresh: the cached 0 is stale, one write-back.
	total, err := svc.RefreshCachedTotal(list.ID)
	require.NoError(t, err)
	assert.Equal(t, 17.50, total)
	assert.Equal(t, 1, listRepo.updateTotalCalls)

	// Second refresh on unchanged orders: no write.
	total, err = svc.RefreshCachedTotal(list.ID)
	require.NoError(t, err)
	assert.Equal(t, 17.50, total)
	assert.Equal(t, 1, listRepo.updateTotalCalls)

	stored, err := listRepo.GetByID(list.ID)
	require.NoError(t, err)
	assert.Equal(t, 17.50, stored.TotalValue)
}

func TestRefreshCachedTotalAfterOrderDeletion(t *testing.T) {
	listRepo := newFakeListRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewListService(listRepo, orderRepo, nil)

	list := seedList(t, listRepo, "Feira")
	id1, err := orderRepo.Create(nil, &models.Order{ListID: list.ID, ClientName: "A", TotalValue: 17.50})
	require.NoError(t, err)
	_, err = orderRepo.Create(nil, &models.Order{ListID: list.ID, ClientName: "B", TotalValue: 2.50})
	require.NoError(t, err)

	_, err = svc.RefreshCachedTotal(list.ID)
	require.NoError(t, err)

	// Deleting an order leaves the cache stale until the next refresh.
	require.NoError(t, orderRepo.Delete(nil, id1))
	total, err := svc.RefreshCachedTotal(list.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.50, total)
}

func TestProductSummaryAccumulatesAcrossOrders(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "Coxinha", Quantity: 3, Price: 5.00, Subtotal: 15.00},
			{ProductID: "p2", ProductName: "Suco", Quantity: 2, Price: 2.50, Subtotal: 5.00},
		}},
		{Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "Coxinha", Quantity: 1, Price: 5.00, Subtotal: 5.00},
		}},
	}

	summary := ProductSummary(orders)
	require.Len(t, summary, 2)

	// Discovery order is preserved.
	assert.Equal(t, "p1", summary[0].ProductID)
	assert.Equal(t, 4, summary[0].Quantity)
	assert.Equal(t, 20.00, summary[0].TotalValue)
	assert.Equal(t, "p2", summary[1].ProductID)
	assert.Equal(t, 2, summary[1].Quantity)
	assert.Equal(t, 5.00, summary[1].TotalValue)
}

func TestProductSummaryEmpty(t *testing.T) {
	assert.Empty(t, ProductSummary(nil))
	assert.Empty(t, ProductSummary([]models.Order{}))
}

func TestListStats(t *testing.T) {
	orders := []models.Order{
		{ClientPhone: "11999990000", TotalValue: 17.50, Items: []models.OrderItem{{Quantity: 3}, {Quantity: 2}}},
		{TotalValue: 2.50, Items: []models.OrderItem{{Quantity: 1}}},
	}

	stats := ListStats(orders)
	assert.Equal(t, 20.00, stats.TotalValue)
	assert.Equal(t, 2, stats.OrderCount)
	assert.Equal(t, 6, stats.TotalItems)
	assert.Equal(t, 10.00, stats.AverageOrder)
	assert.Equal(t, 1, stats.WithPhone)
}

func TestListStatsEmpty(t *testing.T) {
	stats := ListStats(nil)
	assert.Equal(t, 0.00, stats.TotalValue)
	assert.Equal(t, 0, stats.OrderCount)
	assert.Equal(t, 0.00, stats.AverageOrder)
}

func TestGetListDetailRefreshesCache(t *testing.T) {
	listRepo := newFakeListRepo()
	orderRepo := newFakeOrderRepo()
	svc := NewListService(listRepo, orderRepo, nil)

	list := seedList(t, listRepo, "Feira")
	_, err := orderRepo.Create(nil, &models.Order{ListID: list.ID, ClientName: "A", TotalValue: 12.00,
		Items: []models.OrderItem{{ProductID: "p1", ProductName: "Coxinha", Quantity: 2, Subtotal: 12.00}}})
	require.NoError(t, err)

	detail, err := svc.GetListDetail(list.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.00, detail.List.TotalValue)
	assert.Len(t, detail.Orders, 1)
	assert.Len(t, detail.ProductSummary, 1)
	assert.Equal(t, 1, detail.Stats.OrderCount)

	stored, err := listRepo.GetByID(list.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.00, stored.TotalValue, "cache healed on read")
}

func TestGetListDetailNotFound(t *testing.T) {
	svc := NewListService(newFakeListRepo(), newFakeOrderRepo(), nil)
	_, err := svc.GetListDetail("missing")
	assert.ErrorIs(t, err, ErrListNotFound)
}
