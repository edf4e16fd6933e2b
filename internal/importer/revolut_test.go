package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevolutParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/revolut.csv")
	require.NoError(t, err)

	p := &RevolutParser{}
	txns, err := p.Parse(strings.NewReader(string(data)), Options{})
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "Lunch with client", txns[0].Description)
	assert.Equal(t, "-24.50", txns[0].Amount.StringFixed(2))

	// Commas are stripped from descriptions.
	assert.Equal(t, "Refund store", txns[1].Description)
	assert.Equal(t, "15.00", txns[1].Amount.StringFixed(2))
}

func TestRevolutParser_SkipsNonCompleted(t *testing.T) {
	data, err := os.ReadFile("../../testdata/revolut.csv")
	require.NoError(t, err)

	p := &RevolutParser{}
	txns, err := p.Parse(strings.NewReader(string(data)), Options{})
	require.NoError(t, err)

	for _, txn := range txns {
		assert.NotEqual(t, "Reverted payment", txn.Description)
	}
}

func TestRevolutParser_Reimbursement(t *testing.T) {
	data, err := os.ReadFile("../../testdata/revolut.csv")
	require.NoError(t, err)

	p := &RevolutParser{}
	txns, err := p.Parse(strings.NewReader(string(data)), Options{Reimbursement: true})
	require.NoError(t, err)
	require.Len(t, txns, 2)

	// Refunds are dropped, expenses flip sign.
	assert.Equal(t, "Lunch with client", txns[0].Description)
	assert.Equal(t, "24.50", txns[0].Amount.StringFixed(2))

	// Half-away-from-zero rounding to two decimals.
	assert.Equal(t, "Taxi", txns[1].Description)
	assert.Equal(t, "12.35", txns[1].Amount.StringFixed(2))
}

func TestRevolutParser_HeaderMismatch(t *testing.T) {
	csv := "Completed Date,Description,Amount\n2024-02-01 12:00:00,Lunch,-24.50\n"
	p := &RevolutParser{}
	_, err := p.Parse(strings.NewReader(csv), Options{})
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestRevolutParser_Format(t *testing.T) {
	p := &RevolutParser{}
	assert.Equal(t, "revolut", p.Format())
}
