package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/squadracorsepolito/jring/internal"
	"github.com/squadracorsepolito/jring/internal/spsc"
	"github.com/squadracorsepolito/jring/value"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type opSample struct {
	op        string
	latency   time.Duration
	timestamp time.Time
}

func main() {
	questDBAddr := flag.String("questdb", "", "QuestDB ILP address, empty disables the latency sink")
	otlp := flag.Bool("otlp", false, "export OTLP metrics and traces")
	maxElements := flag.Int("max-elements", 100_000, "array size at which the workload turns delete-biased")
	seed := flag.Int64("seed", time.Now().UnixNano(), "workload random seed")
	flag.Parse()

	ctx, cancelCtx := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancelCtx()

	if *otlp {
		initTelemetry(ctx, "jring-bench")
		defer closeTelemetry()
	}

	tel := internal.NewTelemetry("bench")

	stats := internal.NewStats(tel.Logger())
	go stats.RunStats(ctx)

	samples := spsc.New[opSample](16_384)

	sinkDone := make(chan struct{})
	if *questDBAddr != "" {
		sink, err := newQuestDBSink(ctx, *questDBAddr, tel)
		if err != nil {
			tel.LogError("failed to create QuestDB sink", err)
			return
		}

		go func() {
			defer close(sinkDone)
			sink.run(ctx, samples)
			sink.stop(context.Background())
		}()
	} else {
		close(sinkDone)
	}

	tel.LogInfo("starting workload", "seed", *seed, "max_elements", *maxElements)

	runWorkload(ctx, tel, stats, samples, *maxElements, *seed)

	samples.Close()
	<-sinkDone
}

func runWorkload(ctx context.Context, tel *internal.Telemetry, stats *internal.Stats, samples *spsc.Queue[opSample], maxElements int, seed int64) {
	opsCounter := tel.NewCounter("ops")
	liveElements := tel.NewUpDownCounter("live_elements")
	latency := tel.NewHistogram("op_latency_ns")

	rng := rand.New(rand.NewSource(seed))

	arr := value.NewArray()
	defer arr.Decref()

	a := arr.Array()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		op, delta, err := runOp(a, rng, maxElements)
		if err != nil {
			stats.IncrementErrorCount()
			tel.LogError("operation failed", err, "op", op.op)
			continue
		}

		stats.IncrementOpCount()

		opAttr := metric.WithAttributes(attribute.String("op", op.op))
		opsCounter.Add(ctx, 1, opAttr)
		latency.Record(ctx, int64(op.latency), opAttr)

		if delta != 0 {
			liveElements.Add(ctx, int64(delta))
		}

		// Samples are dropped when the sink cannot keep up.
		samples.Push(op)
	}
}

// runOp performs one randomly chosen array operation and reports its kind,
// latency and the change in element count.
func runOp(a *value.Array, rng *rand.Rand, maxElements int) (opSample, int, error) {
	n := a.Len()

	roll := rng.Intn(100)
	if n >= maxElements {
		// Bias toward removal once the array is large enough.
		roll = 40 + rng.Intn(60)
	}

	var (
		op    string
		delta int
		err   error
	)

	start := time.Now()

	switch {
	case roll < 40 || n == 0:
		op = "append"
		err = a.Append(value.NewInt(rng.Int63()))
		delta = 1

	case roll < 55:
		op = "insert"
		err = a.Insert(rng.Intn(n+1), value.NewInt(rng.Int63()))
		delta = 1

	case roll < 75:
		op = "del"
		err = a.Remove(rng.Intn(n))
		delta = -1

	case roll < 90:
		op = "get"
		a.Get(rng.Intn(n))

	case roll < 96:
		op = "set"
		err = a.Set(rng.Intn(n), value.NewInt(rng.Int63()))

	default:
		op = "extend"
		scratch := value.NewArray()
		for range 4 {
			if appendErr := scratch.Array().Append(value.NewInt(rng.Int63())); appendErr != nil {
				err = appendErr
			}
		}
		if err == nil {
			err = a.Extend(scratch.Array())
		}
		scratch.Decref()
		delta = 4
	}

	if err != nil {
		delta = 0
	}

	return opSample{
		op:        op,
		latency:   time.Since(start),
		timestamp: start,
	}, delta, err
}
