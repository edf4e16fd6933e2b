package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// ErsteParser parses Erste Bank statement exports. The file is Windows-1252
// encoded, semicolon separated, and carries one junk line above the header.
type ErsteParser struct{}

const (
	erstePreamble   = 1
	ersteDateFormat = "02.01.2006"

	ersteColDate  = "Datum izvršenja"     // execution date
	ersteColDesc  = "Opis plaæanja, kurs" // payment description
	ersteColIn    = "Uplate"              // incoming transfers
	ersteColOut   = "Isplate"             // outgoing payments
	ersteColBenef = "Primalac"            // counterparty
)

// Format returns the parser name.
func (p *ErsteParser) Format() string { return "erstebank" }

// Parse reads an Erste Bank CSV and returns Transactions.
func (p *ErsteParser) Parse(r io.Reader, _ Options) ([]model.Transaction, error) {
	body, err := skipLines(windows1252Reader(r), erstePreamble)
	if err != nil {
		return nil, err
	}

	h, rows, err := readTable(body, ';',
		ersteColDate, ersteColDesc, ersteColIn, ersteColOut, ersteColBenef)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, row := range rows {
		rowNum := i + erstePreamble + 2

		date, err := time.Parse(ersteDateFormat, h.get(row, ersteColDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", rowNum, h.get(row, ersteColDate), err)
		}

		desc := h.get(row, ersteColDesc)
		inbound := ersteNumber(h.get(row, ersteColIn))
		outbound := ersteNumber(h.get(row, ersteColOut))
		benef := h.get(row, ersteColBenef)

		var raw string
		switch {
		case inbound != "" && outbound != "":
			return nil, fmt.Errorf("row %d: both incoming and outgoing amounts set for %q", rowNum, desc)
		case inbound != "":
			raw = inbound
			if benef != "" {
				desc += " from " + benef
			}
		default:
			raw = "-" + outbound
			if benef != "" {
				desc += " to " + benef
			}
		}

		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", rowNum, raw, err)
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
		})
	}
	return txns, nil
}

// ersteNumber converts "1.234,56" to "1234.56".
func ersteNumber(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, ",", ".")
}
