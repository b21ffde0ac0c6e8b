package services_test

import (
	"testing"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/table"
	"tableside/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenOrder(t *testing.T, tableNumber int) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), tableNumber, kernel.NewUUID(), 10, []order.Item{item})
	require.NoError(t, err)
	return o
}

func newServedOrder(t *testing.T, tableNumber int) *order.Order {
	t.Helper()

	o := newOpenOrder(t, tableNumber)
	actor := kernel.NewUUID()
	require.NoError(t, o.Advance(order.InPrep, actor))
	require.NoError(t, o.Advance(order.Ready, actor))
	require.NoError(t, o.Advance(order.Served, actor))
	return o
}

func TestOccupancyTracker_OnOrderCreated(t *testing.T) {
	tracker := services.NewOccupancyTracker()

	t.Run("should occupy a free table", func(t *testing.T) {
		tbl, err := table.NewTable(5, "")
		require.NoError(t, err)

		require.NoError(t, tracker.OnOrderCreated(tbl))

		assert.True(t, tbl.IsOccupied())
	})

	t.Run("should keep an occupied table occupied", func(t *testing.T) {
		tbl, err := table.RestoreTable(5, "", table.Occupied)
		require.NoError(t, err)

		require.NoError(t, tracker.OnOrderCreated(tbl))

		assert.True(t, tbl.IsOccupied())
	})

	t.Run("should reject an unconstructed table", func(t *testing.T) {
		require.Error(t, tracker.OnOrderCreated(nil))
	})
}

func TestOccupancyTracker_OnOrderServed(t *testing.T) {
	tracker := services.NewOccupancyTracker()

	t.Run("should free the table when no order remains", func(t *testing.T) {
		tbl, err := table.RestoreTable(7, "", table.Occupied)
		require.NoError(t, err)

		require.NoError(t, tracker.OnOrderServed(tbl, nil))

		assert.False(t, tbl.IsOccupied())
	})

	t.Run("should free the table when only served orders remain", func(t *testing.T) {
		tbl, err := table.RestoreTable(7, "", table.Occupied)
		require.NoError(t, err)
		remaining := []*order.Order{newServedOrder(t, 7), newServedOrder(t, 7)}

		require.NoError(t, tracker.OnOrderServed(tbl, remaining))

		assert.False(t, tbl.IsOccupied())
	})

	t.Run("should keep the table occupied while another order is open", func(t *testing.T) {
		tbl, err := table.RestoreTable(7, "", table.Occupied)
		require.NoError(t, err)
		remaining := []*order.Order{newServedOrder(t, 7), newOpenOrder(t, 7)}

		require.NoError(t, tracker.OnOrderServed(tbl, remaining))

		assert.True(t, tbl.IsOccupied())
	})

	t.Run("should re-occupy a table wrongly marked free", func(t *testing.T) {
		tbl, err := table.NewTable(7, "")
		require.NoError(t, err)

		require.NoError(t, tracker.OnOrderServed(tbl, []*order.Order{newOpenOrder(t, 7)}))

		assert.True(t, tbl.IsOccupied())
	})

	t.Run("should reject an unconstructed order in the set", func(t *testing.T) {
		tbl, err := table.RestoreTable(7, "", table.Occupied)
		require.NoError(t, err)

		err = tracker.OnOrderServed(tbl, []*order.Order{{}})

		require.Error(t, err)
		assert.True(t, tbl.IsOccupied())
	})
}
