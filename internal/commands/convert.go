package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/txconvert-dev/txconvert/internal/config"
	"github.com/txconvert-dev/txconvert/internal/convert"
	"github.com/txconvert-dev/txconvert/internal/model"
)

const flagDateFormat = "2006-01-02"

// reimbursementSources are exports of reimbursement accounts; they must be
// converted in reimbursement mode, and only to wave.
var reimbursementSources = map[string]bool{
	"revolut":  true,
	"starling": true,
}

func newConvertCommand() *cobra.Command {
	var (
		sourcePath    string
		source        string
		target        string
		outPath       string
		reimbursement bool
		fromDate      string
		markerDate    string
		markerAmount  string
		markerDesc    string
		requireMarker bool
		configPath    string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a bank export into the destination CSV format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(cmd.ErrOrStderr())
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Flags override config.
			if !cmd.Flags().Changed("target") && cfg.Target != "" {
				target = cfg.Target
			}
			if !cmd.Flags().Changed("reimbursement") {
				reimbursement = cfg.Reimbursement
			}
			if !cmd.Flags().Changed("require-marker") {
				requireMarker = cfg.RequireMarker
			}

			opts := convert.Options{
				SourcePath:    sourcePath,
				DestPath:      outPath,
				Source:        source,
				Target:        target,
				Reimbursement: reimbursement,
				RequireMarker: requireMarker,
				Logger:        logger,
			}

			if err := validateReimbursement(source, target, reimbursement); err != nil {
				return err
			}

			if fromDate != "" {
				from, err := time.Parse(flagDateFormat, fromDate)
				if err != nil {
					return fmt.Errorf("parsing --from %q: %w", fromDate, err)
				}
				opts.From = from
			}

			marker, err := resolveMarker(cfg, markerDate, markerAmount, markerDesc)
			if err != nil {
				return err
			}
			opts.Marker = marker

			result, err := convert.DefaultService().Run(opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Done. Converted %d of %d rows to\n%s\n",
				result.Written, result.Read, result.DestPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourcePath, "path", "", "path of the export to convert (required)")
	_ = cmd.MarkFlagRequired("path")
	cmd.Flags().StringVar(&source, "source", "", "source format, see 'txconvert formats' (required)")
	_ = cmd.MarkFlagRequired("source")
	cmd.Flags().StringVar(&target, "target", "wave", "target platform")
	cmd.Flags().StringVar(&outPath, "out", "", "destination path (default: derived from --path)")
	cmd.Flags().BoolVar(&reimbursement, "reimbursement", false, "source is a reimbursement account")
	cmd.Flags().StringVar(&fromDate, "from", "", "only convert rows after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&markerDate, "marker-date", "", "date of the last imported transaction (YYYY-MM-DD)")
	cmd.Flags().StringVar(&markerAmount, "marker-amount", "", "amount of the last imported transaction")
	cmd.Flags().StringVar(&markerDesc, "marker-description", "", "description of the last imported transaction")
	cmd.Flags().BoolVar(&requireMarker, "require-marker", false, "fail when the marker is not found in the source")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a txconvert.yaml with defaults")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}

// validateReimbursement mirrors the account rules: reimbursement account
// exports must be flagged, and the flag only makes sense for those sources
// going to wave.
func validateReimbursement(source, target string, reimbursement bool) error {
	if reimbursementSources[source] && !reimbursement {
		return fmt.Errorf("source %q requires --reimbursement", source)
	}
	if reimbursement && (!reimbursementSources[source] || target != "wave") {
		return fmt.Errorf("--reimbursement is only valid for revolut/starling sources with the wave target")
	}
	return nil
}

// resolveMarker builds the duplicate-cut marker from flags, falling back to
// config. The three flag parts must be given together.
func resolveMarker(cfg *config.Config, date, amount, desc string) (*model.Marker, error) {
	set := 0
	for _, v := range []string{date, amount, desc} {
		if v != "" {
			set++
		}
	}
	switch {
	case set == 0:
		if cfg.Marker == nil {
			return nil, nil
		}
		m, err := cfg.Marker.ResolveMarker()
		if err != nil {
			return nil, err
		}
		return &m, nil
	case set < 3:
		return nil, fmt.Errorf("--marker-date, --marker-amount and --marker-description must be given together")
	}

	d, err := time.Parse(flagDateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("parsing --marker-date %q: %w", date, err)
	}
	a, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parsing --marker-amount %q: %w", amount, err)
	}
	return &model.Marker{Date: d, Amount: a, Description: desc}, nil
}
