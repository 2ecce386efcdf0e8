package sampler

import (
	"fmt"
	"log/slog"
)

// Diagnostics receives coding errors: faults that indicate a bug in the
// calling code or its configuration, not a recoverable runtime
// condition. Reporting one never aborts the operation, the caller
// degrades to an absent resource instead.
type Diagnostics interface {
	CodingErrorf(format string, args ...any)
}

type slogDiagnostics struct{}

func (slogDiagnostics) CodingErrorf(format string, args ...any) {
	slog.Error("Coding error", slog.String("error", fmt.Sprintf(format, args...)))
}
