package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// StarlingParser parses Starling Bank statement exports (Latin-1 encoded).
type StarlingParser struct{}

const (
	starlingDateFormat = "02/01/2006"
	starlingColDate    = "Date"
	starlingColCparty  = "Counter Party"
	starlingColRef     = "Reference"
	starlingColAmount  = "Amount (GBP)"
	starlingColBalance = "Balance (GBP)" // optional
)

// Format returns the parser name.
func (p *StarlingParser) Format() string { return "starling" }

// Parse reads a Starling CSV and returns Transactions.
func (p *StarlingParser) Parse(r io.Reader, opts Options) ([]model.Transaction, error) {
	h, rows, err := readTable(latin1Reader(r), 0,
		starlingColDate, starlingColCparty, starlingColRef, starlingColAmount)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, row := range rows {
		date, err := time.Parse(starlingDateFormat, h.get(row, starlingColDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, h.get(row, starlingColDate), err)
		}
		amount, err := decimal.NewFromString(h.get(row, starlingColAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, h.get(row, starlingColAmount), err)
		}

		cparty := h.get(row, starlingColCparty)
		ref := h.get(row, starlingColRef)
		desc := cparty
		if !strings.EqualFold(cparty, ref) {
			desc = fmt.Sprintf("%s (to: %s)", ref, cparty)
		}

		if opts.Reimbursement {
			if amount.IsPositive() {
				continue
			}
			amount = amount.Round(2).Neg()
		}

		txn := model.Transaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
		}
		if raw := h.get(row, starlingColBalance); raw != "" {
			balance, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing balance %q: %w", i+2, raw, err)
			}
			txn.Balance = balance
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
