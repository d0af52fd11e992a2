package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a metrics set is built without a meter
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// BusinessMetrics counts units of work by operation and outcome. The outcome
// is "ok", a domain error code, or "canceled".
type BusinessMetrics struct {
	unitTotal      *Counter
	unitDuration   *Histogram
	rejectionTotal *Counter
}

// NewBusinessMetrics creates the unit-of-work instruments on meter
func NewBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	unitTotal, err := NewCounter(meter,
		"executiva_unit_of_work_total",
		"Units of work by operation, mode and outcome",
		"{unit}")
	if err != nil {
		return nil, err
	}

	unitDuration, err := NewHistogram(meter, HistogramOpts{
		Name:        "executiva_unit_of_work_duration_seconds",
		Description: "Unit of work latency distribution in seconds",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	rejectionTotal, err := NewCounter(meter,
		"executiva_rejection_total",
		"Rejected mutations by operation, code and field",
		"{rejection}")
	if err != nil {
		return nil, err
	}

	return &BusinessMetrics{
		unitTotal:      unitTotal,
		unitDuration:   unitDuration,
		rejectionTotal: rejectionTotal,
	}, nil
}

// RecordUnit records one finished unit of work
func (bm *BusinessMetrics) RecordUnit(ctx context.Context, op, mode, outcome string, d time.Duration) {
	bm.unitTotal.Inc(ctx,
		AttrOperation.String(op),
		AttrMode.String(mode),
		AttrOutcome.String(outcome))
	bm.unitDuration.RecordDuration(ctx, d,
		AttrOperation.String(op),
		AttrMode.String(mode))
}

// RecordRejection records a ValidationRejected or ConstraintConflict outcome.
// The field label is omitted when the rejection names no field.
func (bm *BusinessMetrics) RecordRejection(ctx context.Context, op, code, field string) {
	attrs := []attribute.KeyValue{
		AttrOperation.String(op),
		AttrOutcome.String(code),
	}
	if field != "" {
		attrs = append(attrs, AttrField.String(field))
	}
	bm.rejectionTotal.Inc(ctx, attrs...)
}
