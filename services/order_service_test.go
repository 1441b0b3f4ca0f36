package services

import (
	"testing"

	"campuseats/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderSingleLine(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	vendor := seedUser(t, db, entity.RoleVendor)
	store := seedStore(t, db, vendor)
	product := seedProduct(t, db, store, "Siomai Rice", "50.00", true)
	buyer := seedUser(t, db, entity.RoleCustomer)

	order, err := svc.Create(buyer.ID, &CreateOrderReq{
		StoreID: store.ID,
		Items: []OrderItemIn{
			{ProductID: product.ID, Quantity: 3, Type: entity.ItemTypeOrder, Price: decimal.RequireFromString("50.00")},
		},
	})
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("150.00")), "subtotal = %s", order.Subtotal)
	assert.True(t, order.ServiceFee.IsZero(), "service fee defaults to zero")
	assert.True(t, order.Total.Equal(order.Subtotal), "total = subtotal + 0")
	assert.Equal(t, entity.StatusPreparing, order.Status)
	assert.Equal(t, entity.OrderTypeOrder, order.Type)
	assert.Equal(t, entity.PaymentCash, order.PaymentMethod)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, item.Total.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, "Siomai Rice", item.ProductName)
	assert.Equal(t, product.ID, item.Product.ID)
}

func TestCreateOrderMultiLineSubtotal(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	vendor := seedUser(t, db, entity.RoleVendor)
	store := seedStore(t, db, vendor)
	rice := seedProduct(t, db, store, "Rice Meal", "65.50", true)
	juice := seedProduct(t, db, store, "Juice", "20.00", true)
	buyer := seedUser(t, db, entity.RoleCustomer)

	order, err := svc.Create(buyer.ID, &CreateOrderReq{
		StoreID: store.ID,
		Items: []OrderItemIn{
			{ProductID: rice.ID, Quantity: 2, Type: entity.ItemTypeOrder},
			{ProductID: juice.ID, Quantity: 3, Type: entity.ItemTypeReserve},
		},
	})
	require.NoError(t, err)

	// 2*65.50 + 3*20.00
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("191.00")), "subtotal = %s", order.Subtotal)
	require.Len(t, order.Items, 2)
}

func TestCreateOrderIgnoresClientPrice(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	vendor := seedUser(t, db, entity.RoleVendor)
	store := seedStore(t, db, vendor)
	product := seedProduct(t, db, store, "Buffet Plate", "120.00", true)
	buyer := seedUser(t, db, entity.RoleCustomer)

	// client claims the item costs one peso
	order, err := svc.Create(buyer.ID, &CreateOrderReq{
		StoreID: store.ID,
		Items: []OrderItemIn{
			{ProductID: product.ID, Quantity: 1, Type: entity.ItemTypeOrder, Price: decimal.RequireFromString("1.00")},
		},
	})
	require.NoError(t, err)

	assert.True(t, order.Total.Equal(decimal.RequireFromString("120.00")), "catalog price wins over client echo")
}

func TestCreateOrderPriceSnapshotImmutable(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	vendor := seedUser(t, db, entity.RoleVendor)
	store := seedStore(t, db, vendor)
	product := seedProduct(t, db, store, "Snack Pack", "30.00", true)
	buyer := seedUser(t, db, entity.RoleCustomer)

	order, err := svc.Create(buyer.ID, &CreateOrderReq{
		StoreID: store.ID,
		Items: []OrderItemIn{
			{ProductID: product.ID, Quantity: 2, Type: entity.ItemTypeOrder},
		},
	})
	require.NoError(t, err)

	// raise the catalog price after the sale
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("99.00")).Error)

	var item entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&item).Error)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, item.Total.Equal(decimal.RequireFromString("60.00")))
}

func TestCreateOrderProductFromOtherStore(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	vendorA := seedUser(t, db, entity.RoleVendor)
	storeA := seedStore(t, db, vendorA)
	vendorB := seedUser(t, db, entity.RoleVendor)
	storeB := seedStore(t, db, vendorB)
	foreign := seedProduct(t, db, storeB, "Foreign Dish", "45.00", true)
	buyer := seedUser(t, db, entity.RoleCustomer)

	_, err := svc.Create(buyer.ID, &CreateOrderReq{
		StoreID: storeA.ID,
		Items: []OrderItemIn{
			{ProductID: foreign.ID, Quantity: 1, Type: entity.ItemTypeOrder},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}), "no order row on failure")
	assert.EqualValues(t, 0, countRows(t, db, &entity.OrderItem{}), "no item rows on failure")
}

func TestCreateOrderUnavailableProductRejectsWholeOrder(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	vendor := seedUser(t, db, entity.RoleVendor)
	store := seedStore(t, db, vendor)
	good := seedProduct(t, db, store, "Good Snack", "25.00", true)
	soldOut := seedProduct(t, db, store, "Sold Out Meal", "80.00", false)
	buyer := seedUser(t, db, entity.RoleCustomer)

	_, err := svc.Create(buyer.ID, &CreateOrderReq{
		StoreID: store.ID,
		Items: []OrderItemIn{
			{ProductID: good.ID, Quantity: 2, Type: entity.ItemTypeOrder},
			{ProductID: soldOut.ID, Quantity: 1, Type: entity.ItemTypeOrder},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Sold Out Meal", "error names the product")

	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}), "all-or-nothing")
	assert.EqualValues(t, 0, countRows(t, db, &entity.OrderItem{}))
}

func TestCreateOrderUnknownStore(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	buyer := seedUser(t, db, entity.RoleCustomer)

	_, err := svc.Create(buyer.ID, &CreateOrderReq{
		StoreID: 9999,
		Items:   []OrderItemIn{{ProductID: 1, Quantity: 1, Type: entity.ItemTypeOrder}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderReservationType(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	vendor := seedUser(t, db, entity.RoleVendor)
	store := seedStore(t, db, vendor)
	product := seedProduct(t, db, store, "Party Tray", "500.00", true)
	buyer := seedUser(t, db, entity.RoleCustomer)

	order, err := svc.Create(buyer.ID, &CreateOrderReq{
		StoreID: store.ID,
		Type:    entity.OrderTypeReservation,
		Items: []OrderItemIn{
			{ProductID: product.ID, Quantity: 1, Type: entity.ItemTypeReserve},
		},
	})
	require.NoError(t, err)

	// the requested type is honored, not forced to "order"
	assert.Equal(t, entity.OrderTypeReservation, order.Type)
	assert.Equal(t, entity.ItemTypeReserve, order.Items[0].Type)
}

func TestListForVendorAndUserNewestFirst(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	vendor := seedUser(t, db, entity.RoleVendor)
	store := seedStore(t, db, vendor)
	product := seedProduct(t, db, store, "Meal", "50.00", true)
	buyer := seedUser(t, db, entity.RoleCustomer)

	first, err := svc.Create(buyer.ID, &CreateOrderReq{
		StoreID: store.ID,
		Items:   []OrderItemIn{{ProductID: product.ID, Quantity: 1, Type: entity.ItemTypeOrder}},
	})
	require.NoError(t, err)
	second, err := svc.Create(buyer.ID, &CreateOrderReq{
		StoreID: store.ID,
		Items:   []OrderItemIn{{ProductID: product.ID, Quantity: 2, Type: entity.ItemTypeOrder}},
	})
	require.NoError(t, err)

	// nudge ordering since both rows share a timestamp at sqlite resolution
	require.NoError(t, db.Exec(
		"UPDATE orders SET created_at = datetime(created_at, '+1 second') WHERE id = ?", second.ID,
	).Error)

	vendorOrders, err := svc.ListForVendor(vendor.ID)
	require.NoError(t, err)
	require.Len(t, vendorOrders, 2)
	assert.Equal(t, second.ID, vendorOrders[0].ID)
	assert.Equal(t, first.ID, vendorOrders[1].ID)
	assert.Equal(t, buyer.ID, vendorOrders[0].User.ID, "purchaser preloaded for vendor view")

	userOrders, err := svc.ListForUser(buyer.ID)
	require.NoError(t, err)
	require.Len(t, userOrders, 2)
	assert.Equal(t, store.ID, userOrders[0].Store.ID, "store preloaded for customer view")

	// a vendor with no store gets NotFound
	stranger := seedUser(t, db, entity.RoleVendor)
	_, err = svc.ListForVendor(stranger.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatistics(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	vendor := seedUser(t, db, entity.RoleVendor)
	store := seedStore(t, db, vendor)
	product := seedProduct(t, db, store, "Meal", "100.00", true)
	buyer := seedUser(t, db, entity.RoleCustomer)

	mk := func(qty int) *entity.Order {
		o, err := svc.Create(buyer.ID, &CreateOrderReq{
			StoreID: store.ID,
			Items:   []OrderItemIn{{ProductID: product.ID, Quantity: qty, Type: entity.ItemTypeOrder}},
		})
		require.NoError(t, err)
		return o
	}

	mk(1)              // preparing, 100
	ready := mk(2)     // -> ready, 200
	cancelled := mk(3) // -> cancelled, excluded from revenue
	done := mk(1)      // -> delivered, 100

	_, err := svc.UpdateStatus(vendor.ID, ready.ID, entity.StatusReady)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(vendor.ID, cancelled.ID, entity.StatusCancelled)
	require.NoError(t, err)
	for _, status := range []string{entity.StatusReady, entity.StatusPickedUp, entity.StatusDelivered} {
		_, err = svc.UpdateStatus(vendor.ID, done.ID, status)
		require.NoError(t, err)
	}

	stats, err := svc.StatisticsForVendor(vendor.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalOrders)
	assert.EqualValues(t, 2, stats.PendingOrders, "preparing + ready")
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("400.00")),
		"revenue excludes cancelled, got %s", stats.TotalRevenue)
}
