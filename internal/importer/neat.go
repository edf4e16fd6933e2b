package importer

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// NeatParser parses Neat business account exports.
type NeatParser struct{}

const (
	neatDateFormat = "2006-01-02 15:04:05"
	neatColDate    = "Transaction Date"
	neatColDesc    = "Description"
	neatColAmount  = "Transaction Amount"
)

// Format returns the parser name.
func (p *NeatParser) Format() string { return "neat" }

// Parse reads a Neat CSV and returns Transactions.
func (p *NeatParser) Parse(r io.Reader, _ Options) ([]model.Transaction, error) {
	h, rows, err := readTable(r, 0, neatColDate, neatColDesc, neatColAmount)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, row := range rows {
		date, err := time.Parse(neatDateFormat, h.get(row, neatColDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, h.get(row, neatColDate), err)
		}
		amount, err := decimal.NewFromString(h.get(row, neatColAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, h.get(row, neatColAmount), err)
		}
		txns = append(txns, model.Transaction{
			Date:        date,
			Description: h.get(row, neatColDesc),
			Amount:      amount,
		})
	}
	return txns, nil
}
