package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a parsed bank export row, normalized across sources.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = money out, positive = money in
	Balance     decimal.Decimal // running balance, zero when the source omits it
}

// Marker identifies the last transaction already present in the destination
// ledger. Rows at or before the matching row are skipped on import.
type Marker struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

// Matches reports whether t is the marker's transaction. Dates compare by
// calendar day only; sources carry timestamps, the destination ledger doesn't.
func (m Marker) Matches(t Transaction) bool {
	my, mm, md := m.Date.Date()
	ty, tm, td := t.Date.Date()
	if my != ty || mm != tm || md != td {
		return false
	}
	return m.Amount.Equal(t.Amount) && m.Description == t.Description
}
