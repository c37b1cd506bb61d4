package recorder

import "newsig/internal/signal"

// Recorder appends one durable row per validated signal.
type Recorder interface {
	Append(headline string, sig signal.Signal) error
	Close() error
}

// NoopRecorder drops every record. Used when persistence is disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (*NoopRecorder) Append(string, signal.Signal) error { return nil }
func (*NoopRecorder) Close() error                       { return nil }
