package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbazessaqkhan/jktfeed/models"
)

func placeOrder(t *testing.T, st *Store, input CreateOrderInput) *models.Order {
	t.Helper()
	if input.CustomerName == "" {
		input.CustomerName = "Bashir Ahmad"
	}
	if input.CustomerEmail == "" {
		input.CustomerEmail = "bashir@example.com"
	}
	order, err := st.CreateOrder(input)
	require.NoError(t, err)
	return order
}

func TestCreateOrder(t *testing.T) {
	st := newTestStore(t)
	p1 := seedProduct(t, st, "JKT-S-20", "1450.00", 10)
	p2 := seedProduct(t, st, "JKT-K-45", "2100.00", 5)

	order := placeOrder(t, st, CreateOrderInput{
		Items: []OrderLineInput{
			{ProductID: p1.ProductID, Quantity: 3},
			{ProductID: p2.ProductID, Quantity: 1},
		},
	})

	assert.NotEmpty(t, order.OrderNo)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	require.Len(t, order.Items, 2)

	// Total is computed server-side from catalog prices
	want := decimal.RequireFromString("1450.00").Mul(decimal.NewFromInt(3)).
		Add(decimal.RequireFromString("2100.00"))
	assert.True(t, order.TotalAmount.Equal(want), "total %s, want %s", order.TotalAmount, want)

	// Unit price is frozen on the order item
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("1450.00")))

	// Stock decremented
	got1, err := st.GetProduct(p1.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 7, got1.StockQuantity)
	got2, err := st.GetProduct(p2.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 4, got2.StockQuantity)

	// Exactly one outgoing ledger movement per line, referencing the order
	movements, total, err := st.ListInventoryMovements(&p1.ProductID, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementOut, movements[0].MovementType)
	assert.Equal(t, 3, movements[0].Quantity)
	require.NotNil(t, movements[0].ReferenceID)
	assert.Equal(t, order.OrderID, *movements[0].ReferenceID)
}

func TestCreateOrderClearsCart(t *testing.T) {
	st := newTestStore(t)
	p := seedProduct(t, st, "JKT-S-20", "1450.00", 10)

	_, err := st.AddToCart("sess-1", p.ProductID, 2)
	require.NoError(t, err)

	placeOrder(t, st, CreateOrderInput{
		SessionID: "sess-1",
		Items:     []OrderLineInput{{ProductID: p.ProductID, Quantity: 2}},
	})

	cart, err := st.GetCart("sess-1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCreateOrderInsufficientStockRollsBack(t *testing.T) {
	st := newTestStore(t)
	p1 := seedProduct(t, st, "JKT-S-20", "1450.00", 10)
	p2 := seedProduct(t, st, "JKT-K-45", "2100.00", 2)

	_, err := st.CreateOrder(CreateOrderInput{
		CustomerName:  "Bashir Ahmad",
		CustomerEmail: "bashir@example.com",
		Items: []OrderLineInput{
			{ProductID: p1.ProductID, Quantity: 3},
			{ProductID: p2.ProductID, Quantity: 5}, // over stock
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// The first line's decrement was rolled back with everything else
	got, err := st.GetProduct(p1.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.StockQuantity)

	orders, total, err := st.ListOrders("", 1, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, orders)

	_, count, err := st.ListInventoryMovements(nil, 1, 50)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateOrderValidation(t *testing.T) {
	st := newTestStore(t)
	p := seedProduct(t, st, "JKT-S-20", "1450.00", 10)

	_, err := st.CreateOrder(CreateOrderInput{CustomerName: "x", CustomerEmail: "x@example.com"})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = st.CreateOrder(CreateOrderInput{
		CustomerName:  "x",
		CustomerEmail: "x@example.com",
		Items:         []OrderLineInput{{ProductID: p.ProductID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = st.CreateOrder(CreateOrderInput{
		CustomerName:  "x",
		CustomerEmail: "x@example.com",
		Items:         []OrderLineInput{{ProductID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderStatusTransitions(t *testing.T) {
	st := newTestStore(t)
	p := seedProduct(t, st, "JKT-S-20", "1450.00", 10)

	order := placeOrder(t, st, CreateOrderInput{
		Items: []OrderLineInput{{ProductID: p.ProductID, Quantity: 1}},
	})

	// Skipping confirmed is rejected
	_, err := st.UpdateOrderStatus(order.OrderID, models.OrderStatusShipped)
	require.ErrorIs(t, err, ErrInvalidTransition)

	for _, status := range []string{
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		updated, err := st.UpdateOrderStatus(order.OrderID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// Delivered is terminal
	_, err = st.UpdateOrderStatus(order.OrderID, models.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = st.UpdateOrderStatus(order.OrderID, "lost")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelOrderRestocks(t *testing.T) {
	st := newTestStore(t)
	p := seedProduct(t, st, "JKT-S-20", "1450.00", 10)

	order := placeOrder(t, st, CreateOrderInput{
		Items: []OrderLineInput{{ProductID: p.ProductID, Quantity: 4}},
	})

	got, err := st.GetProduct(p.ProductID)
	require.NoError(t, err)
	require.Equal(t, 6, got.StockQuantity)

	cancelled, err := st.UpdateOrderStatus(order.OrderID, models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	got, err = st.GetProduct(p.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.StockQuantity)

	// The restock left an incoming ledger movement next to the outgoing one
	movements, total, err := st.ListInventoryMovements(&p.ProductID, 1, 50)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	types := []string{movements[0].MovementType, movements[1].MovementType}
	assert.Contains(t, types, models.MovementOut)
	assert.Contains(t, types, models.MovementIn)
}

func TestListOrders(t *testing.T) {
	st := newTestStore(t)
	p := seedProduct(t, st, "JKT-S-20", "1450.00", 100)

	for i := 0; i < 3; i++ {
		placeOrder(t, st, CreateOrderInput{
			Items: []OrderLineInput{{ProductID: p.ProductID, Quantity: 1}},
		})
	}
	confirmed := placeOrder(t, st, CreateOrderInput{
		Items: []OrderLineInput{{ProductID: p.ProductID, Quantity: 1}},
	})
	_, err := st.UpdateOrderStatus(confirmed.OrderID, models.OrderStatusConfirmed)
	require.NoError(t, err)

	all, total, err := st.ListOrders("", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, all, 2)

	byStatus, total, err := st.ListOrders(models.OrderStatusConfirmed, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byStatus, 1)
	assert.Equal(t, confirmed.OrderID, byStatus[0].OrderID)
}

func TestUpdateOrderPayment(t *testing.T) {
	st := newTestStore(t)
	p := seedProduct(t, st, "JKT-S-20", "1450.00", 10)

	order := placeOrder(t, st, CreateOrderInput{
		Items: []OrderLineInput{{ProductID: p.ProductID, Quantity: 1}},
	})

	method := "bank transfer"
	updated, err := st.UpdateOrderPayment(order.OrderID, models.PaymentStatusPaid, &method)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)
	require.NotNil(t, updated.PaymentMethod)
	assert.Equal(t, "bank transfer", *updated.PaymentMethod)

	_, err = st.UpdateOrderPayment(999, models.PaymentStatusPaid, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(models.OrderStatusPending, models.OrderStatusConfirmed))
	assert.True(t, CanTransition(models.OrderStatusConfirmed, models.OrderStatusCancelled))
	assert.False(t, CanTransition(models.OrderStatusShipped, models.OrderStatusCancelled))
	assert.False(t, CanTransition(models.OrderStatusCancelled, models.OrderStatusPending))
	assert.False(t, CanTransition("lost", models.OrderStatusPending))
}
