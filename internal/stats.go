package internal

import (
	"context"
	"sync/atomic"
	"time"
)

type Stats struct {
	l *Logger

	opCount    atomic.Uint64
	errorCount atomic.Uint64
}

func NewStats(l *Logger) *Stats {
	return &Stats{
		l: l,
	}
}

func (s *Stats) RunStats(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			opCount := s.opCount.Load()
			errorCount := s.errorCount.Load()

			if opCount == 0 && errorCount == 0 {
				continue
			}

			s.opCount.Store(0)
			s.errorCount.Store(0)

			s.l.Info("stats", "ops_per_sec", opCount, "errors_per_sec", errorCount)
		}
	}
}

func (s *Stats) IncrementOpCount() {
	s.opCount.Add(1)
}

func (s *Stats) IncrementErrorCount() {
	s.errorCount.Add(1)
}
