package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// ErrHeaderMismatch indicates the file's header row lacks columns the source
// format requires.
var ErrHeaderMismatch = errors.New("header does not match expected columns")

// Options tweaks parsing for sources that support it.
type Options struct {
	// Reimbursement drops refund rows (positive amounts) and flips the sign
	// of the rest. Only honored by sources exported from reimbursement
	// accounts (revolut, starling).
	Reimbursement bool
}

// Parser converts one bank's CSV export into Transactions.
type Parser interface {
	Parse(r io.Reader, opts Options) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
	order   []string
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
	r.order = append(r.order, key)
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns registered format names in registration order.
func (r *Registry) Formats() []string {
	return append([]string(nil), r.order...)
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&NeatParser{})
	r.Register(&AirwallexParser{})
	r.Register(&ErsteParser{})
	r.Register(&RevolutParser{})
	r.Register(&StarlingParser{})
	r.Register(&WiseParser{})
	r.Register(&PayoneerParser{})
	r.Register(&CurrenxieParser{})
	return r
}

// header maps trimmed column names to their index in the header row.
type header map[string]int

// readTable reads a whole CSV table and splits off the header row. Column
// names listed in required must all be present.
func readTable(r io.Reader, comma rune, required ...string) (header, [][]string, error) {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: file has no header row", ErrHeaderMismatch)
	}

	h := make(header, len(records[0]))
	for i, name := range records[0] {
		h[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range required {
		if _, ok := h[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: missing %s", ErrHeaderMismatch, strings.Join(missing, ", "))
	}
	return h, records[1:], nil
}

// get returns the trimmed value of the named column, or "" when the row is
// short (ragged rows happen in real exports).
func (h header) get(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// skipLines discards the first n lines of r. Some exports prepend junk above
// the real header.
func skipLines(r io.Reader, n int) (io.Reader, error) {
	br := bufio.NewReader(r)
	for i := 0; i < n; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: fewer than %d lines", ErrHeaderMismatch, n+1)
			}
			return nil, fmt.Errorf("skipping preamble: %w", err)
		}
	}
	return br, nil
}
