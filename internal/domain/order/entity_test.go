package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	l := NewLine(7, nil, "Remera básica", 3, 1000, 100)

	assert.Equal(t, uint(7), l.ProductID)
	assert.Nil(t, l.VariantID)
	assert.Equal(t, "Remera básica", l.ProductName)
	assert.Equal(t, int64(3000), l.Subtotal)
	assert.Equal(t, int64(2700), l.Total)
}

func TestNewOrder_Totals(t *testing.T) {
	lines := []Line{
		NewLine(1, nil, "Remera", 2, 1000, 100),
		NewLine(2, nil, "Pantalón", 1, 5000, 0),
	}
	o := NewOrder("ORD-20260101-0001", 42, lines, Address{Province: "Buenos Aires"}, 2500)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, int64(7000), o.Subtotal)
	assert.Equal(t, int64(200), o.TotalDiscount)
	assert.Equal(t, int64(2500), o.ShippingCost)
	assert.Equal(t, o.Subtotal-o.TotalDiscount+o.ShippingCost, o.Total)
	assert.Equal(t, int64(9300), o.Total)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("enviada")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, s)

	_, err = ParseStatus("inexistente")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestOrder_Cancel(t *testing.T) {
	now := time.Now()

	t.Run("pending and paid can cancel", func(t *testing.T) {
		for _, status := range []Status{StatusPending, StatusPaid} {
			o := &Order{Status: status}
			require.True(t, o.CanCancel())
			require.NoError(t, o.MarkCancelled(now))
			assert.Equal(t, StatusCancelled, o.Status)
		}
	})

	t.Run("shipped and beyond cannot", func(t *testing.T) {
		for _, status := range []Status{StatusShipped, StatusDelivered, StatusCancelled, StatusReturned} {
			o := &Order{Status: status}
			assert.False(t, o.CanCancel())
			err := o.MarkCancelled(now)
			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.Equal(t, status, o.Status)
		}
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	o := &Order{Status: StatusPending}
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	o.MarkPaid("tx-123", first)

	assert.Equal(t, StatusPaid, o.Status)
	assert.Equal(t, "tx-123", o.TransactionID)
	require.NotNil(t, o.PaidAt)
	assert.Equal(t, first, *o.PaidAt)

	// A second call updates the transaction but keeps the original stamp.
	o.MarkPaid("tx-456", first.Add(time.Hour))
	assert.Equal(t, "tx-456", o.TransactionID)
	assert.Equal(t, first, *o.PaidAt)
}

func TestOrder_MarkShippedAndDelivered(t *testing.T) {
	now := time.Now()
	o := &Order{Status: StatusPaid}

	o.MarkShipped("Andreani", "TRK-001", now)
	assert.Equal(t, StatusShipped, o.Status)
	assert.Equal(t, "Andreani", o.Carrier)
	assert.Equal(t, "TRK-001", o.TrackingCode)
	require.NotNil(t, o.ShippedAt)

	o.MarkDelivered(now)
	assert.Equal(t, StatusDelivered, o.Status)
	require.NotNil(t, o.DeliveredAt)
}

func TestOrder_IsOwnedBy(t *testing.T) {
	o := &Order{UserID: 10}
	assert.True(t, o.IsOwnedBy(10))
	assert.False(t, o.IsOwnedBy(11))
}
