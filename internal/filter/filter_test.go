package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txconvert-dev/txconvert/internal/model"
)

func txn(date string, desc string, amount string) model.Transaction {
	d, err := time.Parse("2006-01-02 15:04:05", date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		Date:        d,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
	}
}

func marker(date string, desc string, amount string) model.Marker {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Marker{Date: d, Description: desc, Amount: decimal.RequireFromString(amount)}
}

func TestAfterMarker_CutsAtMatch(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-01-01 09:00:00", "Coffee", "-5.00"),
		txn("2024-01-02 10:00:00", "Salary", "2000.00"),
	}

	out, matched := AfterMarker(txns, marker("2024-01-01", "Coffee", "-5.00"))
	assert.True(t, matched)
	require.Len(t, out, 1)
	assert.Equal(t, "Salary", out[0].Description)
}

func TestAfterMarker_NoMatchReturnsAll(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-01-01 09:00:00", "Coffee", "-5.00"),
		txn("2024-01-02 10:00:00", "Salary", "2000.00"),
	}

	out, matched := AfterMarker(txns, marker("2024-01-01", "Tea", "-5.00"))
	assert.False(t, matched)
	assert.Equal(t, txns, out)
}

func TestAfterMarker_MatchesLastOccurrence(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-01-01 09:00:00", "Coffee", "-5.00"),
		txn("2024-01-01 17:00:00", "Coffee", "-5.00"),
		txn("2024-01-02 10:00:00", "Salary", "2000.00"),
	}

	out, matched := AfterMarker(txns, marker("2024-01-01", "Coffee", "-5.00"))
	assert.True(t, matched)
	require.Len(t, out, 1)
	assert.Equal(t, "Salary", out[0].Description)
}

func TestAfterMarker_MatchOnLastRow(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-01-01 09:00:00", "Coffee", "-5.00"),
	}

	out, matched := AfterMarker(txns, marker("2024-01-01", "Coffee", "-5.00"))
	assert.True(t, matched)
	assert.Empty(t, out)
}

func TestAfterMarker_PreservesOrder(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-01-01 09:00:00", "A", "-1.00"),
		txn("2024-01-02 09:00:00", "B", "-2.00"),
		txn("2024-01-03 09:00:00", "C", "-3.00"),
		txn("2024-01-04 09:00:00", "D", "-4.00"),
	}

	out, matched := AfterMarker(txns, marker("2024-01-02", "B", "-2.00"))
	assert.True(t, matched)
	require.Len(t, out, 2)
	assert.Equal(t, "C", out[0].Description)
	assert.Equal(t, "D", out[1].Description)
}

func TestAfterMarker_AmountMustMatch(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-01-01 09:00:00", "Coffee", "-5.00"),
	}

	_, matched := AfterMarker(txns, marker("2024-01-01", "Coffee", "-5.01"))
	assert.False(t, matched)
}

func TestFromDate_DropsAtOrBefore(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-01-01 09:00:00", "old", "-1.00"),
		txn("2024-01-05 00:00:00", "boundary", "-2.00"),
		txn("2024-01-05 00:00:01", "new", "-3.00"),
	}

	cutoff, err := time.Parse("2006-01-02", "2024-01-05")
	require.NoError(t, err)

	out := FromDate(txns, cutoff)
	require.Len(t, out, 1)
	assert.Equal(t, "new", out[0].Description)
}

func TestFromDate_ZeroKeepsAll(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-01-01 09:00:00", "A", "-1.00"),
	}
	assert.Equal(t, txns, FromDate(txns, time.Time{}))
}
