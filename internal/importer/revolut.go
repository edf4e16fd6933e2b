package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// RevolutParser parses Revolut account statement exports.
type RevolutParser struct{}

const (
	revolutDateFormat = "2006-01-02 15:04:05"
	revolutColDate    = "Completed Date"
	revolutColDesc    = "Description"
	revolutColAmount  = "Amount"
	revolutColState   = "State"

	revolutStateCompleted = "COMPLETED"
)

// Format returns the parser name.
func (p *RevolutParser) Format() string { return "revolut" }

// Parse reads a Revolut CSV and returns Transactions. Rows that never
// completed (reverted, pending) are dropped.
func (p *RevolutParser) Parse(r io.Reader, opts Options) ([]model.Transaction, error) {
	h, rows, err := readTable(r, 0, revolutColDate, revolutColDesc, revolutColAmount, revolutColState)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, row := range rows {
		// Non-completed rows have no completed date, so check state first.
		if h.get(row, revolutColState) != revolutStateCompleted {
			continue
		}

		date, err := time.Parse(revolutDateFormat, h.get(row, revolutColDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, h.get(row, revolutColDate), err)
		}
		amount, err := decimal.NewFromString(h.get(row, revolutColAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, h.get(row, revolutColAmount), err)
		}

		if opts.Reimbursement {
			// Refunds don't belong on a reimbursement account.
			if amount.IsPositive() {
				continue
			}
			amount = amount.Round(2).Neg()
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: strings.ReplaceAll(h.get(row, revolutColDesc), ",", ""),
			Amount:      amount,
		})
	}
	return txns, nil
}
