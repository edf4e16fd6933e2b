package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// PayoneerParser parses Payoneer transaction exports. Payoneer writes a UTF-8
// BOM, which is stripped before parsing.
type PayoneerParser struct{}

const (
	payoneerDateFormat = "02 Jan, 2006"
	payoneerColDate    = "Date"
	payoneerColDesc    = "Description"
	payoneerColAmount  = "Amount"
)

// Format returns the parser name.
func (p *PayoneerParser) Format() string { return "payoneer" }

// Parse reads a Payoneer CSV and returns Transactions.
func (p *PayoneerParser) Parse(r io.Reader, _ Options) ([]model.Transaction, error) {
	h, rows, err := readTable(bomReader(r), 0, payoneerColDate, payoneerColDesc, payoneerColAmount)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, row := range rows {
		date, err := time.Parse(payoneerDateFormat, h.get(row, payoneerColDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, h.get(row, payoneerColDate), err)
		}

		// Payoneer uses thousands separators; the destinations don't want them.
		raw := strings.ReplaceAll(h.get(row, payoneerColAmount), ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, raw, err)
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: strings.ReplaceAll(h.get(row, payoneerColDesc), ",", ""),
			Amount:      amount,
		})
	}
	return txns, nil
}
