package order_test

import (
	"testing"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()

	burger, err := order.NewItem(kernel.NewUUID(), 2, "no onions")
	require.NoError(t, err)
	soda, err := order.NewItem(kernel.NewUUID(), 1, "")
	require.NoError(t, err)

	return []order.Item{burger, soda}
}

func TestNewItem(t *testing.T) {
	t.Run("should create item with notes", func(t *testing.T) {
		menuItemID := kernel.NewUUID()

		item, err := order.NewItem(menuItemID, 3, "extra cheese")

		require.NoError(t, err)
		assert.True(t, item.MenuItemID().IsEqual(menuItemID))
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "extra cheese", item.Notes())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -100} {
			_, err := order.NewItem(kernel.NewUUID(), quantity, "")

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject zero-value menu item id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.NewItem(zero, 1, "")
		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in paid status", func(t *testing.T) {
		id := kernel.NewUUID()
		waiterID := kernel.NewUUID()
		items := testItems(t)

		o, err := order.NewOrder(id, 5, waiterID, 42.50, items)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, 5, o.TableNumber())
		assert.True(t, o.WaiterID().IsEqual(waiterID))
		assert.Nil(t, o.CashierID())
		assert.InDelta(t, 42.50, o.CashReceived(), 0.001)
		assert.Equal(t, order.Paid, o.Status())
		assert.Len(t, o.Items(), 2)
		assert.True(t, o.IsOpen())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
		require.NoError(t, o.Validate())
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), 5, kernel.NewUUID(), 10, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("should reject non-positive table number", func(t *testing.T) {
		for _, tableNumber := range []int{0, -3} {
			_, err := order.NewOrder(kernel.NewUUID(), tableNumber, kernel.NewUUID(), 10, testItems(t))

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject negative cash received", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), 5, kernel.NewUUID(), -0.01, testItems(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero-value ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewOrder(zero, 5, kernel.NewUUID(), 10, testItems(t))
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), 5, zero, 10, testItems(t))
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero-value order is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should walk the full chain recording the actor", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 7, kernel.NewUUID(), 25, testItems(t))
		require.NoError(t, err)
		cashierID := kernel.NewUUID()

		require.NoError(t, o.Advance(order.InPrep, cashierID))
		assert.Equal(t, order.InPrep, o.Status())
		require.NotNil(t, o.CashierID())
		assert.True(t, o.CashierID().IsEqual(cashierID))

		managerID := kernel.NewUUID()
		require.NoError(t, o.Advance(order.Ready, managerID))
		assert.True(t, o.CashierID().IsEqual(managerID))

		require.NoError(t, o.Advance(order.Served, managerID))
		assert.Equal(t, order.Served, o.Status())
		assert.False(t, o.IsOpen())
	})

	t.Run("should reject skipping a state and leave order untouched", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 7, kernel.NewUUID(), 25, testItems(t))
		require.NoError(t, err)

		err = o.Advance(order.Ready, kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Paid, o.Status())
		assert.Nil(t, o.CashierID())
	})

	t.Run("should reject advancing a served order", func(t *testing.T) {
		o := servedOrder(t)

		err := o.Advance(order.Served, kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Served, o.Status())
	})

	t.Run("should reject zero-value actor", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 7, kernel.NewUUID(), 25, testItems(t))
		require.NoError(t, err)

		var zero kernel.UUID
		err = o.Advance(order.InPrep, zero)

		require.Error(t, err)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("statuses observed are a prefix of the chain", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 7, kernel.NewUUID(), 25, testItems(t))
		require.NoError(t, err)
		actor := kernel.NewUUID()

		observed := []order.Status{o.Status()}
		for {
			next, nextErr := o.Status().Next()
			if nextErr != nil {
				break
			}
			require.NoError(t, o.Advance(next, actor))
			observed = append(observed, o.Status())
		}

		assert.Equal(t, []order.Status{order.Paid, order.InPrep, order.Ready, order.Served}, observed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore all fields", func(t *testing.T) {
		id := kernel.NewUUID()
		waiterID := kernel.NewUUID()
		cashierID := kernel.NewUUID()
		createdAt := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
		items := testItems(t)

		o, err := order.RestoreOrder(id, 9, waiterID, &cashierID, 13.37, order.Ready, createdAt, items)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, 9, o.TableNumber())
		assert.Equal(t, order.Ready, o.Status())
		assert.True(t, o.CashierID().IsEqual(cashierID))
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Len(t, o.Items(), 2)
		require.NoError(t, o.Validate())
	})

	t.Run("should reject undefined status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), 9, kernel.NewUUID(), nil, 10, order.UnknownStatus, time.Now(), testItems(t))

		require.Error(t, err)
	})
}

func servedOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), 7, kernel.NewUUID(), 25, testItems(t))
	require.NoError(t, err)
	actor := kernel.NewUUID()
	require.NoError(t, o.Advance(order.InPrep, actor))
	require.NoError(t, o.Advance(order.Ready, actor))
	require.NoError(t, o.Advance(order.Served, actor))
	return o
}
