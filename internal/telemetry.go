package internal

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Telemetry struct {
	component string

	l *Logger

	tracer trace.Tracer
	meter  metric.Meter
}

func NewTelemetry(component string) *Telemetry {
	return &Telemetry{
		component: component,

		l: NewLogger(component),

		tracer: otel.GetTracerProvider().Tracer("jring"),
		meter:  otel.GetMeterProvider().Meter("jring"),
	}
}

func (t *Telemetry) Logger() *Logger {
	return t.l
}

func (t *Telemetry) LogInfo(msg string, args ...any) {
	t.l.Info(msg, args...)
}

func (t *Telemetry) LogWarn(msg string, args ...any) {
	t.l.Warn(msg, args...)
}

func (t *Telemetry) LogError(msg string, err error, args ...any) {
	t.l.Error(msg, err, args...)
}

func (t *Telemetry) NewTrace(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, spanName, opts...)
	span.SetAttributes(attribute.String("jring.component", t.component))
	return ctx, span
}

func (t *Telemetry) getMeterName(name string) string {
	return fmt.Sprintf("%s_%s", t.component, name)
}

func (t *Telemetry) NewCounter(name string, opts ...metric.Int64CounterOption) metric.Int64Counter {
	counterName := t.getMeterName(name)
	counter, err := t.meter.Int64Counter(counterName, opts...)
	if err != nil {
		t.LogError("failed to create counter", err, "name", name)
	}

	return counter
}

func (t *Telemetry) NewUpDownCounter(name string, opts ...metric.Int64UpDownCounterOption) metric.Int64UpDownCounter {
	counterName := t.getMeterName(name)
	counter, err := t.meter.Int64UpDownCounter(counterName, opts...)
	if err != nil {
		t.LogError("failed to create up/down counter", err, "name", name)
	}

	return counter
}

func (t *Telemetry) NewHistogram(name string, opts ...metric.Int64HistogramOption) metric.Int64Histogram {
	histogramName := t.getMeterName(name)
	histogram, err := t.meter.Int64Histogram(histogramName, opts...)
	if err != nil {
		t.LogError("failed to create histogram", err, "name", name)
	}

	return histogram
}
