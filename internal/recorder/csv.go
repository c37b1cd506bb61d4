package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"newsig/internal/signal"
)

var csvHeader = []string{"timestamp", "headline", "sentiment", "direction", "confidence", "reason"}

// CSVRecorder appends rows to a flat CSV log. Each Append opens, writes and
// closes the file, so no handle outlives the call and existing contents are
// never rewritten. The header row is written only when the file is new or
// empty, so separate process runs share one header.
type CSVRecorder struct {
	path string
	now  func() time.Time
}

func NewCSVRecorder(path string) (*CSVRecorder, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("signal log path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create signal log dir: %w", err)
		}
	}
	return &CSVRecorder{path: path, now: time.Now}, nil
}

func (r *CSVRecorder) Append(headline string, sig signal.Signal) error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open signal log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat signal log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("write signal log header: %w", err)
		}
	}
	row := []string{
		r.now().UTC().Format(time.RFC3339),
		headline,
		sig.Sentiment,
		sig.Direction,
		formatConfidence(sig.Confidence),
		sig.Reason,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write signal log row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush signal log: %w", err)
	}
	return nil
}

func (r *CSVRecorder) Close() error { return nil }

func formatConfidence(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
