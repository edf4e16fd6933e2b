// Package convert runs the statement conversion pipeline: read the source
// export, drop already-imported rows, render and write the destination file.
// One forward pass, everything in memory, any failure aborts the run.
package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/txconvert-dev/txconvert/internal/exporter"
	"github.com/txconvert-dev/txconvert/internal/filter"
	"github.com/txconvert-dev/txconvert/internal/importer"
	"github.com/txconvert-dev/txconvert/internal/model"
)

// ErrSourceNotFound indicates the source export path does not exist.
var ErrSourceNotFound = errors.New("source file not found")

// ErrUnknownFormat indicates a source or target name with no registered codec.
var ErrUnknownFormat = errors.New("unknown format")

// Options configures a single conversion run. Built once at the CLI boundary;
// the pipeline itself holds no global state.
type Options struct {
	SourcePath string
	DestPath   string // empty = derive from SourcePath
	Source     string // importer format name
	Target     string // exporter format name

	Reimbursement bool
	From          time.Time     // drop rows at or before this instant, zero = keep all
	Marker        *model.Marker // last imported transaction, nil = no duplicate cut
	RequireMarker bool          // error instead of warn when the marker is absent

	Logger *log.Logger
}

// Result reports what a conversion run did.
type Result struct {
	Read     int
	Written  int
	DestPath string
}

// Service runs conversions against fixed importer and exporter registries.
type Service struct {
	parsers *importer.Registry
	writers *exporter.Registry
}

// NewService creates a conversion Service.
func NewService(parsers *importer.Registry, writers *exporter.Registry) *Service {
	return &Service{parsers: parsers, writers: writers}
}

// DefaultService returns a Service over the built-in formats.
func DefaultService() *Service {
	return NewService(importer.DefaultRegistry(), exporter.DefaultRegistry())
}

// Run executes one conversion. The destination file is created only after the
// full output is rendered in memory, so no failure leaves a partial file.
func (s *Service) Run(opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	parser := s.parsers.Get(opts.Source)
	if parser == nil {
		return Result{}, fmt.Errorf("%w: source %q", ErrUnknownFormat, opts.Source)
	}
	writer := s.writers.Get(opts.Target)
	if writer == nil {
		return Result{}, fmt.Errorf("%w: target %q", ErrUnknownFormat, opts.Target)
	}

	f, err := os.Open(opts.SourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrSourceNotFound, opts.SourcePath)
		}
		return Result{}, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	txns, err := parser.Parse(f, importer.Options{Reimbursement: opts.Reimbursement})
	if err != nil {
		return Result{}, fmt.Errorf("parsing %s: %w", opts.SourcePath, err)
	}
	read := len(txns)

	txns = filter.FromDate(txns, opts.From)
	if opts.Marker != nil {
		var matched bool
		txns, matched = filter.AfterMarker(txns, *opts.Marker)
		if !matched {
			if opts.RequireMarker {
				return Result{}, filter.ErrMarkerNotFound
			}
			logger.Warn("last-imported marker not found, importing all rows",
				"date", opts.Marker.Date.Format("2006-01-02"),
				"amount", opts.Marker.Amount.StringFixed(2),
				"description", opts.Marker.Description)
		}
	}

	data, err := writer.Render(txns)
	if err != nil {
		return Result{}, fmt.Errorf("rendering %s output: %w", opts.Target, err)
	}

	dest := opts.DestPath
	if dest == "" {
		dest = DerivedPath(opts.SourcePath, opts.Source, opts.Target)
	}
	if err := exporter.CreateNew(dest, data); err != nil {
		return Result{}, err
	}

	logger.Debug("conversion complete", "read", read, "written", len(txns), "dest", dest)
	return Result{Read: read, Written: len(txns), DestPath: dest}, nil
}

// DerivedPath returns the default destination path next to the source file,
// e.g. statement.csv -> statement_CONVERTED_NEAT_TO_WAVE.csv.
func DerivedPath(sourcePath, source, target string) string {
	dir := filepath.Dir(sourcePath)
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	name := fmt.Sprintf("%s_CONVERTED_%s_TO_%s%s",
		stem, strings.ToUpper(source), strings.ToUpper(target), ext)
	return filepath.Join(dir, name)
}
