package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrenxieParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/currenxie.csv")
	require.NoError(t, err)

	p := &CurrenxieParser{}
	txns, err := p.Parse(strings.NewReader(string(data)), Options{})
	require.NoError(t, err)
	require.Len(t, txns, 2)

	// Reference is folded into the description.
	assert.Equal(t, "Invoice payment - INV-1042", txns[0].Description)
	assert.Equal(t, "2500.00", txns[0].Amount.StringFixed(2))

	// No reference: description alone.
	assert.Equal(t, "Bank fee", txns[1].Description)
	assert.Equal(t, "-25.00", txns[1].Amount.StringFixed(2))
}

func TestCurrenxieParser_DateParsing(t *testing.T) {
	data, err := os.ReadFile("../../testdata/currenxie.csv")
	require.NoError(t, err)

	p := &CurrenxieParser{}
	txns, err := p.Parse(strings.NewReader(string(data)), Options{})
	require.NoError(t, err)

	// Month-first dates.
	assert.Equal(t, 2024, txns[0].Date.Year())
	assert.Equal(t, 1, int(txns[0].Date.Month()))
	assert.Equal(t, 31, txns[0].Date.Day())
}

func TestCurrenxieParser_Format(t *testing.T) {
	p := &CurrenxieParser{}
	assert.Equal(t, "currenxie", p.Format())
}
