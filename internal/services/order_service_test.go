package services

import (
	"errors"
	"testing"

	"cantina_backend/internal/models"
	"cantina_backend/internal/repositories"
	"cantina_backend/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderService(t *testing.T, restockOnDelete bool) (OrderService, *fakeOrderRepo, *fakeProductRepo, *fakeListRepo) {
	t.Helper()
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	listRepo := newFakeListRepo()
	svc := NewOrderService(orderRepo, productRepo, listRepo, nil, restockOnDelete)
	return svc, orderRepo, productRepo, listRepo
}

func seedProduct(t *testing.T, repo *fakeProductRepo, name string, price float64, qty int) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: price, InitialQuantity: qty, CurrentQuantity: qty}
	_, err := repo.Create(nil, p)
	require.NoError(t, err)
	return p
}

func seedList(t *testing.T, repo *fakeListRepo, name string) *models.List {
	t.Helper()
	l := &models.List{Name: name, Date: "2024-09-07", CreatedBy: "maria@example.com"}
	_, err := repo.Create(nil, l)
	require.NoError(t, err)
	return l
}

func TestCreateOrderComputesSubtotalsAndTotal(t *testing.T) {
	svc, _, productRepo, listRepo := setupOrderService(t, false)
	coxinha := seedProduct(t, productRepo, "Coxinha", 5.00, 10)
	suco := seedProduct(t, productRepo, "Suco", 2.50, 10)
	list := seedList(t, listRepo, "Feira")

	order, err := svc.CreateOrder(CreateOrderRequest{
		ListID:     list.ID,
		ClientName: "Maria",
		Items: []CreateOrderItemRequest{
			{ProductID: coxinha.ID, Quantity: 3},
			{ProductID: suco.ID, Quantity: 2},
		},
		CreatedBy: "maria@example.com",
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, 15.00, order.Items[0].Subtotal)
	assert.Equal(t, 5.00, order.Items[1].Subtotal)
	assert.Equal(t, 20.00, order.TotalValue)

	// The total is exactly the sum of per-item subtotals, each rounded to
	// 2 decimals individually.
	subtotals := []float64{}
	for _, item := range order.Items {
		assert.Equal(t, money.ItemSubtotal(item.Price, item.Quantity), item.Subtotal)
		subtotals = append(subtotals, item.Subtotal)
	}
	assert.Equal(t, money.Sum(subtotals), order.TotalValue)
}

func TestCreateOrderSnapshotsNameAndPrice(t *testing.T) {
	svc, orderRepo, productRepo, listRepo := setupOrderService(t, false)
	p := seedProduct(t, productRepo, "Brigadeiro", 2.50, 20)
	list := seedList(t, listRepo, "Feira")

	order, err := svc.CreateOrder(CreateOrderRequest{
		ListID:     list.ID,
		ClientName: "Ana",
		Items:      []CreateOrderItemRequest{{ProductID: p.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	// Edit the product afterwards; the stored order must keep its snapshot.
	newName := "Brigadeiro Gourmet"
	newPrice := 4.00
	require.NoError(t, productRepo.Update(nil, p.ID, models.ProductUpdate{Name: &newName, Price: &newPrice}))

	stored, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brigadeiro", stored.Items[0].ProductName)
	assert.Equal(t, 2.50, stored.Items[0].Price)
	assert.Equal(t, 10.00, stored.Items[0].Subtotal)
}

func TestCreateOrderDecrementsStock(t *testing.T) {
	svc, _, productRepo, listRepo := setupOrderService(t, false)
	p := seedProduct(t, productRepo, "Coxinha", 5.00, 10)
	list := seedList(t, listRepo, "Feira")

	_, err := svc.CreateOrder(CreateOrderRequest{
		ListID:     list.ID,
		ClientName: "Maria",
		Items:      []CreateOrderItemRequest{{ProductID: p.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	stored, err := productRepo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.CurrentQuantity)
}

func TestCreateOrderStockFloorsAtZero(t *testing.T) {
	// Documented floor-clamp policy: two sequential single-unit orders
	// against one remaining unit both succeed, and stock ends at exactly
	// zero, never negative. The second order is an oversell that the
	// engine clamps rather than rejects.
	svc, orderRepo, productRepo, listRepo := setupOrderService(t, false)
	p := seedProduct(t, productRepo, "Pastel", 6.00, 1)
	list := seedList(t, listRepo, "Feira")

	for i := 0; i < 2; i++ {
		_, err := svc.CreateOrder(CreateOrderRequest{
			ListID:     list.ID,
			ClientName: "Cliente",
			Items:      []CreateOrderItemRequest{{ProductID: p.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	stored, err := productRepo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.CurrentQuantity)
	assert.GreaterOrEqual(t, stored.CurrentQuantity, 0)

	orders, err := orderRepo.GetByList(list.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2, "both orders are recorded even though the second oversold")
}

func TestCreateOrderSwallowsStockUpdateFailure(t *testing.T) {
	// Asymmetric error policy: the order write is primary, the stock
	// decrement is secondary. A failing decrement must not lose the order.
	svc, orderRepo, productRepo, listRepo := setupOrderService(t, false)
	p := seedProduct(t, productRepo, "Coxinha", 5.00, 10)
	list := seedList(t, listRepo, "Feira")
	productRepo.adjustErr[p.ID] = errors.New("store unavailable")

	order, err := svc.CreateOrder(CreateOrderRequest{
		ListID:     list.ID,
		ClientName: "Maria",
		Items:      []CreateOrderItemRequest{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = orderRepo.GetByID(order.ID)
	assert.NoError(t, err, "order must remain recorded")

	stored, err := productRepo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.CurrentQuantity, "stock untouched after swallowed failure")
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _, productRepo, listRepo := setupOrderService(t, false)
	p := seedProduct(t, productRepo, "Coxinha", 5.00, 10)
	list := seedList(t, listRepo, "Feira")

	_, err := svc.CreateOrder(CreateOrderRequest{ListID: list.ID, ClientName: "", Items: []CreateOrderItemRequest{{ProductID: p.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateOrder(CreateOrderRequest{ListID: list.ID, ClientName: "Maria", Items: nil})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateOrder(CreateOrderRequest{ListID: list.ID, ClientName: "Maria", Items: []CreateOrderItemRequest{{ProductID: p.ID, Quantity: 0}}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateOrder(CreateOrderRequest{ListID: "missing", ClientName: "Maria", Items: []CreateOrderItemRequest{{ProductID: p.ID, Quantity: 1}}})
	assert.ErrorIs(t, err, ErrListNotFound)

	_, err = svc.CreateOrder(CreateOrderRequest{ListID: list.ID, ClientName: "Maria", Items: []CreateOrderItemRequest{{ProductID: "missing", Quantity: 1}}})
	assert.ErrorIs(t, err, ErrProductNotFound)

	// No stock moved for any rejected order.
	stored, err := productRepo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.CurrentQuantity)
}

func TestDeleteOrderDoesNotRestockByDefault(t *testing.T) {
	svc, orderRepo, productRepo, listRepo := setupOrderService(t, false)
	p := seedProduct(t, productRepo, "Coxinha", 5.00, 10)
	list := seedList(t, listRepo, "Feira")

	order, err := svc.CreateOrder(CreateOrderRequest{
		ListID:     list.ID,
		ClientName: "Maria",
		Items:      []CreateOrderItemRequest{{ProductID: p.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(order.ID))

	orders, err := orderRepo.GetByList(list.ID)
	require.NoError(t, err)
	assert.Empty(t, orders, "deleted order gone from list queries")

	stored, err := productRepo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.CurrentQuantity, "stock stays consumed")
}

func TestDeleteOrderRestocksWhenEnabled(t *testing.T) {
	svc, _, productRepo, listRepo := setupOrderService(t, true)
	p := seedProduct(t, productRepo, "Coxinha", 5.00, 10)
	list := seedList(t, listRepo, "Feira")

	order, err := svc.CreateOrder(CreateOrderRequest{
		ListID:     list.ID,
		ClientName: "Maria",
		Items:      []CreateOrderItemRequest{{ProductID: p.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(order.ID))

	stored, err := productRepo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.CurrentQuantity)
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc, _, _, _ := setupOrderService(t, false)
	err := svc.DeleteOrder("missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.NotErrorIs(t, err, repositories.ErrNotFound, "repository sentinel stays internal")
}
