// Package exporter renders transactions into the destination ledger's CSV
// schema and writes them to a fresh file.
package exporter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// ErrDestinationExists indicates the output path is already occupied.
// Existing files are never overwritten.
var ErrDestinationExists = errors.New("destination file already exists")

// Writer renders transactions for one destination platform.
type Writer interface {
	Render(txns []model.Transaction) ([]byte, error)
	Format() string
}

// Registry holds named writers.
type Registry struct {
	writers map[string]Writer
	order   []string
}

// NewRegistry creates an empty writer registry.
func NewRegistry() *Registry {
	return &Registry{writers: make(map[string]Writer)}
}

// Register adds a writer. Panics on duplicate format.
func (r *Registry) Register(w Writer) {
	key := strings.ToLower(w.Format())
	if _, ok := r.writers[key]; ok {
		panic("duplicate writer format: " + key)
	}
	r.writers[key] = w
	r.order = append(r.order, key)
}

// Get returns the writer for format, or nil.
func (r *Registry) Get(format string) Writer {
	return r.writers[strings.ToLower(format)]
}

// Formats returns registered format names in registration order.
func (r *Registry) Formats() []string {
	return append([]string(nil), r.order...)
}

// DefaultRegistry returns a registry with all built-in writers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&WaveWriter{})
	r.Register(&FreeAgentWriter{})
	return r
}

// Header is the destination CSV header, for the platforms that want one.
const Header = "date,amount,description"

const (
	numFields  = 3
	dateFormat = "2006-01-02"
	colDate    = 0
	colAmount  = 1
	colDesc    = 2
)

// MarshalTransaction converts a Transaction to a destination CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = t.Date.Format(dateFormat)
	row[colAmount] = t.Amount.StringFixed(2)
	row[colDesc] = t.Description
	return row
}

// render serializes rows, optionally preceded by the header.
func render(txns []model.Transaction, withHeader bool) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if withHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}
	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CreateNew writes data to path, failing with ErrDestinationExists when the
// path is occupied. The content is fully rendered before this is called, so a
// failed run never leaves a partial file behind.
func CreateNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrDestinationExists, path)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
