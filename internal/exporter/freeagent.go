package exporter

import "github.com/txconvert-dev/txconvert/internal/model"

// FreeAgentWriter renders the FreeAgent statement upload format. Same columns
// as Wave, but FreeAgent rejects files with a header row.
type FreeAgentWriter struct{}

// Format returns the writer name.
func (w *FreeAgentWriter) Format() string { return "freeagent" }

// Render serializes transactions without a header.
func (w *FreeAgentWriter) Render(txns []model.Transaction) ([]byte, error) {
	return render(txns, false)
}
