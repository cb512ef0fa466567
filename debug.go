package shimmer

import (
	"fmt"
	"os"
)

// debugEnabled gates host-layer diagnostics. The evaluator itself never
// logs: degenerate numeric input produces defined degenerate output instead.
var debugEnabled bool

// SetDebug enables or disables diagnostic warnings on stderr. Warnings cover
// host bookkeeping anomalies only (slot exhaustion, dropped builder adds,
// preset fallbacks), never per-frame evaluation.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// debugWarnf prints a formatted warning to stderr when debug mode is on.
func debugWarnf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[shimmer] warning: "+format+"\n", args...)
}
