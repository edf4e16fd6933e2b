package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// CurrenxieParser parses Currenxie global account exports.
type CurrenxieParser struct{}

const (
	currenxieDateFormat = "01/02/2006"
	currenxieColDate    = "*Date"
	currenxieColAmount  = "*Amount"
	currenxieColDesc    = "Description"
	currenxieColRef     = "Reference"
)

// Format returns the parser name.
func (p *CurrenxieParser) Format() string { return "currenxie" }

// Parse reads a Currenxie CSV and returns Transactions.
func (p *CurrenxieParser) Parse(r io.Reader, _ Options) ([]model.Transaction, error) {
	h, rows, err := readTable(r, 0, currenxieColDate, currenxieColAmount, currenxieColDesc, currenxieColRef)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, row := range rows {
		date, err := time.Parse(currenxieDateFormat, h.get(row, currenxieColDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, h.get(row, currenxieColDate), err)
		}
		amount, err := decimal.NewFromString(h.get(row, currenxieColAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, h.get(row, currenxieColAmount), err)
		}

		desc := h.get(row, currenxieColDesc)
		if ref := h.get(row, currenxieColRef); ref != "" {
			desc = strings.TrimSpace(desc + " - " + ref)
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
		})
	}
	return txns, nil
}
