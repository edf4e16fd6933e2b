package exporter

import "github.com/txconvert-dev/txconvert/internal/model"

// WaveWriter renders the Wave accounting upload format.
type WaveWriter struct{}

// Format returns the writer name.
func (w *WaveWriter) Format() string { return "wave" }

// Render serializes transactions with the header row Wave expects.
func (w *WaveWriter) Render(txns []model.Transaction) ([]byte, error) {
	return render(txns, true)
}
