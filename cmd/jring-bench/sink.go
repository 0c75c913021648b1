package main

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	qdb "github.com/questdb/go-questdb-client/v3"
	"github.com/squadracorsepolito/jring/internal"
	"github.com/squadracorsepolito/jring/internal/spsc"
)

// questDBSink streams per-operation latency rows to QuestDB.
type questDBSink struct {
	tel *internal.Telemetry

	senderPool *qdb.LineSenderPool
	sender     qdb.LineSender

	deliveredRows atomic.Int64
}

func newQuestDBSink(ctx context.Context, address string, tel *internal.Telemetry) (*questDBSink, error) {
	senderPool, err := qdb.PoolFromOptions(
		qdb.WithAddress(address),
		qdb.WithHttp(),
		qdb.WithAutoFlushRows(10_000),
		qdb.WithRetryTimeout(time.Second),
	)
	if err != nil {
		return nil, err
	}

	sender, err := senderPool.Sender(ctx)
	if err != nil {
		return nil, err
	}

	return &questDBSink{
		tel: tel,

		senderPool: senderPool,
		sender:     sender,
	}, nil
}

// run drains the sample queue until it is closed and empty or the context
// is cancelled.
func (s *questDBSink) run(ctx context.Context, samples *spsc.Queue[opSample]) {
	for {
		sample, ok := samples.Pop()
		if !ok {
			if samples.Closed() && samples.Len() == 0 {
				return
			}

			select {
			case <-ctx.Done():
				return
			default:
				runtime.Gosched()
				continue
			}
		}

		err := s.sender.Table("jring_ops").
			Symbol("op", sample.op).
			Int64Column("latency_ns", int64(sample.latency)).
			At(ctx, sample.timestamp)
		if err != nil {
			s.tel.LogError("failed to deliver op sample", err)
			continue
		}

		s.deliveredRows.Add(1)
	}
}

func (s *questDBSink) stop(ctx context.Context) {
	if err := s.sender.Close(ctx); err != nil {
		s.tel.LogError("failed to close sender", err)
	}

	if err := s.senderPool.Close(ctx); err != nil {
		s.tel.LogError("failed to close sender pool", err)
	}

	s.tel.LogInfo("QuestDB sink stopped", "delivered_rows", s.deliveredRows.Load())
}
