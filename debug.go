package tether

import (
	"log/slog"
	"os"
	"time"
)

// frameStats holds per-phase timings. Only logged when Scene.debug is true.
type frameStats struct {
	hitTime    time.Duration
	dragTime   time.Duration
	itemTime   time.Duration
	followTime time.Duration
}

// NewDebugLogger returns a text logger on stderr at debug level, suitable for
// SetLogger together with SetDebugMode.
func NewDebugLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// debugLog emits one record per frame with cursor, hit, and drag counts.
func (s *Scene) debugLog(snap *Snapshot, in FrameInput, stats frameStats) {
	hits := 0
	for _, g := range snap.Groups() {
		hits += len(snap.Hits(g))
	}
	dragging := 0
	for _, ds := range s.reg.dragState {
		if ds != nil {
			dragging++
		}
	}
	total := stats.hitTime + stats.dragTime + stats.itemTime + stats.followTime
	s.logger.Debug("frame",
		slog.Uint64("frame", snap.Frame),
		slog.Int("groups", len(snap.cursors)),
		slog.Int("hits", hits),
		slog.Int("dragging", dragging),
		slog.Int("drops", len(s.drops)),
		slog.Bool("pressed", in.Pressed),
		slog.Group("time",
			slog.Duration("hit", stats.hitTime),
			slog.Duration("drag", stats.dragTime),
			slog.Duration("item", stats.itemTime),
			slog.Duration("follow", stats.followTime),
			slog.Duration("total", total),
		),
	)
}
