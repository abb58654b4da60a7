package order

import (
	"fmt"
	"time"
)

// FormatOrderNumber builds the human-readable order number for the given UTC
// day and daily sequence, e.g. ORD-20250101-0001.
//
// The sequence comes from counting the day's existing orders plus one. Two
// checkouts racing on the same day can observe the same count; the unique
// index on the column then fails the later transaction. There is no retry.
func FormatOrderNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("ORD-%s-%04d", day.UTC().Format("20060102"), seq)
}
