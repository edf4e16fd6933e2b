package importer

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// AirwallexParser parses Airwallex balance activity exports.
type AirwallexParser struct{}

const (
	// Airwallex prepends account metadata above the real header.
	airwallexPreamble = 5

	airwallexDateFormat = "2006-01-02 15:04:05"
	airwallexColDate    = "Created At"
	airwallexColAmount  = "Net Amount"
	airwallexColType    = "Type"
	airwallexColRemit   = "Remitter Name"
	airwallexColBenef   = "Beneficiary Bank Account Name"

	airwallexTypeDeposit = "Deposit"
	airwallexTypeFee     = "Fee"
	airwallexTypePayout  = "Payout"
)

// Format returns the parser name.
func (p *AirwallexParser) Format() string { return "airwallex" }

// Parse reads an Airwallex CSV and returns Transactions.
func (p *AirwallexParser) Parse(r io.Reader, _ Options) ([]model.Transaction, error) {
	body, err := skipLines(r, airwallexPreamble)
	if err != nil {
		return nil, err
	}

	h, rows, err := readTable(body, 0,
		airwallexColDate, airwallexColAmount, airwallexColType, airwallexColRemit, airwallexColBenef)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, row := range rows {
		rowNum := i + airwallexPreamble + 2

		date, err := time.Parse(airwallexDateFormat, h.get(row, airwallexColDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", rowNum, h.get(row, airwallexColDate), err)
		}
		amount, err := decimal.NewFromString(h.get(row, airwallexColAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", rowNum, h.get(row, airwallexColAmount), err)
		}

		desc := h.get(row, airwallexColType)
		switch desc {
		case airwallexTypeDeposit:
			desc += " from " + h.get(row, airwallexColRemit)
		case airwallexTypePayout:
			desc += " to " + h.get(row, airwallexColBenef)
		case airwallexTypeFee:
		default:
			return nil, fmt.Errorf("row %d: unknown transaction type %q", rowNum, desc)
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
		})
	}
	return txns, nil
}
