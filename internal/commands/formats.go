package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/txconvert-dev/txconvert/internal/exporter"
	"github.com/txconvert-dev/txconvert/internal/importer"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported source and target formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sources: %s\n", strings.Join(importer.DefaultRegistry().Formats(), ", "))
			fmt.Printf("targets: %s\n", strings.Join(exporter.DefaultRegistry().Formats(), ", "))
		},
	}
}
