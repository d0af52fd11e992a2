package uow

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var unitMetrics atomic.Pointer[telemetry.BusinessMetrics]

// Instrument makes every later unit of work record into m. A nil m turns
// recording off.
func Instrument(m *telemetry.BusinessMetrics) {
	unitMetrics.Store(m)
}

// Write runs fn in a transaction of store. fn receives the context of the
// unit's span so repository queries nest under it. Domain outcomes are
// returned as is; any other failure is logged and returned as an Unexpected
// domain error wrapping the cause. Cancellation is returned unchanged.
func Write(ctx context.Context, store TransactionScope, logger *zap.Logger, op string, fn func(ctx context.Context, repos Repositories) error) error {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, op, telemetry.WithAttribute(telemetry.SpanAttrOperation, "write"))
	defer span.End()
	err := store.Execute(ctx, func(repos Repositories) error {
		return fn(ctx, repos)
	})
	return outcome(ctx, span, logger, op, "write", start, err)
}

// Read runs fn against the non-transactional repositories of store, with the
// same error handling as Write.
func Read(ctx context.Context, store Store, logger *zap.Logger, op string, fn func(ctx context.Context, repos Repositories) error) error {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, op, telemetry.WithAttribute(telemetry.SpanAttrOperation, "read"))
	defer span.End()
	return outcome(ctx, span, logger, op, "read", start, fn(ctx, store.Repositories()))
}

func outcome(ctx context.Context, span trace.Span, logger *zap.Logger, op, mode string, start time.Time, err error) error {
	m := unitMetrics.Load()
	record := func(result string) {
		if m != nil {
			m.RecordUnit(ctx, op, mode, result, time.Since(start))
		}
	}

	if err == nil {
		telemetry.SetAttributes(span, telemetry.SpanAttrOutcome, "ok")
		record("ok")
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		telemetry.RecordError(span, err)
		record("canceled")
		return err
	}
	de := shared.AsDomainError(op, err)
	record(de.Code)
	telemetry.SetAttributes(span, telemetry.SpanAttrOutcome, de.Code)
	if de.Field != "" {
		telemetry.SetAttributes(span, telemetry.SpanAttrField, de.Field)
	}
	if de.ConflictID != 0 {
		telemetry.SetAttributes(span, telemetry.SpanAttrConflictID, de.ConflictID)
	}
	if m != nil && shared.IsRejected(de) {
		m.RecordRejection(ctx, op, de.Code, de.Field)
	}
	if de.Code == shared.CodeUnexpected {
		telemetry.RecordError(span, err)
		logger.Error("Store failure", zap.String("op", op), zap.Error(err))
	}
	return de
}
