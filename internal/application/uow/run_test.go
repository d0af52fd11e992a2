package uow

import (
	"context"
	"errors"
	"testing"

	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// fakeStore runs fn without a database; fn must not touch repos
type fakeStore struct {
	executed int
}

func (s *fakeStore) Execute(ctx context.Context, fn func(repos Repositories) error) error {
	s.executed++
	return fn(nil)
}

func (s *fakeStore) Repositories() Repositories { return nil }

func instrumented(t *testing.T) *sdkmetric.ManualReader {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := telemetry.NewBusinessMetrics(provider.Meter("uow-test"))
	require.NoError(t, err)

	Instrument(m)
	t.Cleanup(func() {
		Instrument(nil)
		_ = provider.Shutdown(context.Background())
	})
	return reader
}

// counterValue sums the data points of the named int64 sum whose attributes
// contain every pair in want
func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string, want ...attribute.KeyValue) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				if hasAll(dp.Attributes, want) {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func hasAll(set attribute.Set, want []attribute.KeyValue) bool {
	for _, kv := range want {
		v, ok := set.Value(kv.Key)
		if !ok || v.Emit() != kv.Value.Emit() {
			return false
		}
	}
	return true
}

func TestWrite_RecordsRejection(t *testing.T) {
	reader := instrumented(t)
	store := &fakeStore{}

	err := Write(context.Background(), store, zap.NewNop(), "create department",
		func(ctx context.Context, repos Repositories) error {
			return shared.NewRejected("name", "duplicate department name in organization").WithConflict(7)
		})

	require.Error(t, err)
	assert.True(t, shared.IsRejected(err))
	assert.Equal(t, 1, store.executed)

	assert.Equal(t, int64(1), counterValue(t, reader, "executiva_rejection_total",
		telemetry.AttrOperation.String("create department"),
		telemetry.AttrOutcome.String(shared.CodeValidationRejected),
		telemetry.AttrField.String("name")))
	assert.Equal(t, int64(1), counterValue(t, reader, "executiva_unit_of_work_total",
		telemetry.AttrMode.String("write"),
		telemetry.AttrOutcome.String(shared.CodeValidationRejected)))
}

func TestWrite_ConstraintConflictCountsAsRejection(t *testing.T) {
	reader := instrumented(t)

	err := Write(context.Background(), &fakeStore{}, zap.NewNop(), "create legal organization",
		func(ctx context.Context, repos Repositories) error {
			return shared.NewConstraintConflict("cnpj already registered", errors.New("23505")).WithField("cnpj")
		})

	require.Error(t, err)
	assert.Equal(t, int64(1), counterValue(t, reader, "executiva_rejection_total",
		telemetry.AttrOutcome.String(shared.CodeConstraintConflict),
		telemetry.AttrField.String("cnpj")))
}

func TestRead_Outcomes(t *testing.T) {
	reader := instrumented(t)
	store := &fakeStore{}

	require.NoError(t, Read(context.Background(), store, zap.NewNop(), "get user",
		func(ctx context.Context, repos Repositories) error { return nil }))

	err := Read(context.Background(), store, zap.NewNop(), "get user",
		func(ctx context.Context, repos Repositories) error { return shared.NewNotFound("user", 3) })
	assert.True(t, shared.IsNotFound(err))

	assert.Zero(t, store.executed, "reads do not open a transaction")
	assert.Equal(t, int64(1), counterValue(t, reader, "executiva_unit_of_work_total",
		telemetry.AttrMode.String("read"), telemetry.AttrOutcome.String("ok")))
	assert.Equal(t, int64(1), counterValue(t, reader, "executiva_unit_of_work_total",
		telemetry.AttrOutcome.String(shared.CodeNotFound)))
	assert.Zero(t, counterValue(t, reader, "executiva_rejection_total"))
}

func TestWrite_UnexpectedFailure(t *testing.T) {
	reader := instrumented(t)

	err := Write(context.Background(), &fakeStore{}, zap.NewNop(), "update executive",
		func(ctx context.Context, repos Repositories) error { return errors.New("connection reset") })

	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, shared.CodeUnexpected, de.Code)
	assert.EqualError(t, errors.Unwrap(err), "connection reset")
	assert.Equal(t, int64(1), counterValue(t, reader, "executiva_unit_of_work_total",
		telemetry.AttrOutcome.String(shared.CodeUnexpected)))
	assert.Zero(t, counterValue(t, reader, "executiva_rejection_total"))
}

func TestWrite_CancellationIsReturnedUnchanged(t *testing.T) {
	reader := instrumented(t)

	err := Write(context.Background(), &fakeStore{}, zap.NewNop(), "create user",
		func(ctx context.Context, repos Repositories) error { return context.Canceled })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(1), counterValue(t, reader, "executiva_unit_of_work_total",
		telemetry.AttrOutcome.String("canceled")))
}

func TestUnitContextCarriesTheSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})

	var inner trace.SpanContext
	err := Read(context.Background(), &fakeStore{}, zap.NewNop(), "list departments",
		func(ctx context.Context, repos Repositories) error {
			inner = trace.SpanContextFromContext(ctx)
			return nil
		})
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "list departments", spans[0].Name())
	assert.Equal(t, spans[0].SpanContext().SpanID(), inner.SpanID())

	err = Write(context.Background(), &fakeStore{}, zap.NewNop(), "create department",
		func(ctx context.Context, repos Repositories) error {
			inner = trace.SpanContextFromContext(ctx)
			return nil
		})
	require.NoError(t, err)

	spans = sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), inner.SpanID())
}

func TestUninstrumentedUnitsDoNotRecord(t *testing.T) {
	Instrument(nil)
	assert.NoError(t, Write(context.Background(), &fakeStore{}, zap.NewNop(), "delete user",
		func(ctx context.Context, repos Repositories) error { return nil }))
}
