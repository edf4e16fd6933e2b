package importer

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// WiseParser parses Wise transfer history exports.
type WiseParser struct{}

const (
	wiseDateFormat = "2006-01-02 15:04:05"
	wiseColDate    = "Created on"
	wiseColAmount  = "Source amount (after fees)"
	wiseColFees    = "Source fee amount"
	wiseColDir     = "Direction"
	wiseColSource  = "Source name"
	wiseColTarget  = "Target name"

	wiseDirIn  = "IN"
	wiseDirOut = "OUT"
)

// Format returns the parser name.
func (p *WiseParser) Format() string { return "wise" }

// Parse reads a Wise CSV and returns Transactions. The gross amount is the
// after-fees amount plus the fee, so the books see what actually left the
// account.
func (p *WiseParser) Parse(r io.Reader, _ Options) ([]model.Transaction, error) {
	h, rows, err := readTable(r, 0,
		wiseColDate, wiseColAmount, wiseColFees, wiseColDir, wiseColSource, wiseColTarget)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, row := range rows {
		date, err := time.Parse(wiseDateFormat, h.get(row, wiseColDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, h.get(row, wiseColDate), err)
		}
		afterFees, err := decimal.NewFromString(h.get(row, wiseColAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, h.get(row, wiseColAmount), err)
		}
		fees, err := decimal.NewFromString(h.get(row, wiseColFees))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing fee %q: %w", i+2, h.get(row, wiseColFees), err)
		}

		amount := afterFees.Add(fees.Round(2))

		var desc string
		switch h.get(row, wiseColDir) {
		case wiseDirIn:
			desc = "Received from " + h.get(row, wiseColSource)
		case wiseDirOut:
			amount = amount.Neg()
			desc = "Sent to " + h.get(row, wiseColTarget)
		default:
			return nil, fmt.Errorf("row %d: unexpected transfer direction %q", i+2, h.get(row, wiseColDir))
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
		})
	}
	return txns, nil
}
