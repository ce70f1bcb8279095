package slog

import (
	"log/slog"

	"github.com/fwojciec/crosscheck"
)

// StateLogger returns a listener that logs every orchestrator transition.
// Failures are logged with the stage and underlying cause; the user-facing
// message stays static.
func StateLogger(logger *slog.Logger) func(crosscheck.State) {
	return func(s crosscheck.State) {
		switch s.Status {
		case crosscheck.StatusFailed:
			logger.Info("query failed",
				"query", s.Query,
				"stage", s.Stage,
				"err", s.Err,
			)
		case crosscheck.StatusReady:
			var conflicts int
			if s.Report != nil {
				conflicts = len(s.Report.Conflicts)
			}
			logger.Info("query ready",
				"query", s.Query,
				"web", len(s.WebResults),
				"threads", len(s.Threads),
				"conflicts", conflicts,
			)
		default:
			logger.Info("query state",
				"query", s.Query,
				"status", s.Status.String(),
			)
		}
	}
}
