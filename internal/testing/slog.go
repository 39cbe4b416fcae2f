package testing

import (
	"context"
	"log/slog"
	"sync"
)

// DiagnosticRecorder is a slog.Handler that keeps every record it handles so
// tests can assert on the diagnostics an extraction produced
type DiagnosticRecorder struct {
	mu       sync.Mutex
	records  []slog.Record
	minLevel slog.Leveler
}

// NewDiagnosticRecorder returns a recorder that keeps records at Debug level
// and above
func NewDiagnosticRecorder() *DiagnosticRecorder {
	var minLevel slog.LevelVar
	minLevel.Set(slog.LevelDebug)
	return &DiagnosticRecorder{
		minLevel: &minLevel,
	}
}

// Logger returns a slog.Logger writing to the recorder
func (h *DiagnosticRecorder) Logger() *slog.Logger {
	return slog.New(h)
}

// Records returns the records handled so far
func (h *DiagnosticRecorder) Records() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]slog.Record, len(h.records))
	copy(res, h.records)
	return res
}

// Messages returns the messages of the records handled so far
func (h *DiagnosticRecorder) Messages() []string {
	recs := h.Records()
	res := make([]string, len(recs))
	for i, r := range recs {
		res[i] = r.Message
	}
	return res
}

// Attr returns the string value of the named attribute of the most recent
// record, and whether it was present
func (h *DiagnosticRecorder) Attr(name string) (string, bool) {
	recs := h.Records()
	if len(recs) == 0 {
		return "", false
	}
	var res string
	var found bool
	recs[len(recs)-1].Attrs(func(a slog.Attr) bool {
		if a.Key == name {
			res, found = a.Value.String(), true
			return false
		}
		return true
	})
	return res, found
}

func (h *DiagnosticRecorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel.Level()
}

func (h *DiagnosticRecorder) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *DiagnosticRecorder) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *DiagnosticRecorder) WithGroup(_ string) slog.Handler {
	return h
}
