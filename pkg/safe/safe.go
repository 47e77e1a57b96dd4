package safe

import (
	"log/slog"
	"runtime/debug"
	"strings"
)

// Run executes fn and logs any panic with a formatted stack trace
func Run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered",
				slog.Any("recover", r),
				slog.String("component", "safe.Run"),
				slog.String("stack", StackTrace(3)),
			)
		}
	}()

	fn()
}

// StackTrace returns a formatted stack trace, skipping the first skipFrames frames
func StackTrace(skipFrames int) string {
	stackStr := string(debug.Stack())
	lines := strings.Split(stackStr, "\n")

	var formatted []string
	formatted = append(formatted, "Stack trace:")

	startIdx := skipFrames
	if startIdx < len(lines) {
		// The first line is just "goroutine X [running]:"
		if startIdx == 0 && len(lines) > 0 {
			formatted = append(formatted, "  "+lines[0])
			startIdx = 1
		}

		for i := startIdx; i < len(lines) && i < startIdx+20; i++ {
			line := strings.TrimSpace(lines[i])
			if line != "" {
				formatted = append(formatted, "  "+line)
			}
		}

		if len(lines) > startIdx+20 {
			formatted = append(formatted, "  ... (truncated)")
		}
	}

	return strings.Join(formatted, "\n")
}
