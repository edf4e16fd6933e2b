package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWiseParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/wise.csv")
	require.NoError(t, err)

	p := &WiseParser{}
	txns, err := p.Parse(strings.NewReader(string(data)), Options{})
	require.NoError(t, err)
	require.Len(t, txns, 2)

	// Outgoing: after-fees amount plus fee, negated.
	assert.Equal(t, "Sent to Acme Supplier", txns[0].Description)
	assert.Equal(t, "-503.21", txns[0].Amount.StringFixed(2))

	// Incoming keeps the sign.
	assert.Equal(t, "Received from Client GmbH", txns[1].Description)
	assert.Equal(t, "1000.00", txns[1].Amount.StringFixed(2))
}

func TestWiseParser_BadDirection(t *testing.T) {
	csv := "Created on,Source amount (after fees),Source fee amount,Direction,Source name,Target name\n" +
		"2024-04-01 10:00:00,500.00,3.21,SIDEWAYS,A,B\n"
	p := &WiseParser{}
	_, err := p.Parse(strings.NewReader(csv), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected transfer direction")
}

func TestWiseParser_HeaderMismatch(t *testing.T) {
	csv := "Created on,Amount,Direction\n2024-04-01 10:00:00,500.00,IN\n"
	p := &WiseParser{}
	_, err := p.Parse(strings.NewReader(csv), Options{})
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestWiseParser_Format(t *testing.T) {
	p := &WiseParser{}
	assert.Equal(t, "wise", p.Format())
}
