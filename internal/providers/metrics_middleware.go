package providers

import (
	"time"

	"likability/internal/structures"
)

// MetricsMiddleware wraps a command handler with per-command counters and
// duration observation.
func MetricsMiddleware(metrics MetricsProviderInterface, next structures.CommandHandler) structures.CommandHandler {
	return func(req *structures.CommandRequest) string {
		start := time.Now()

		reply := next(req)

		metrics.IncCommands(req.Command)
		metrics.ObserveCommandDuration(req.Command, time.Since(start))
		return reply
	}
}
