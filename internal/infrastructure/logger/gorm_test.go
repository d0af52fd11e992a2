package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLoggerWithOptions(t *testing.T) {
	gl := NewGormLogger(zap.NewNop(), gormlogger.Info,
		WithSlowThreshold(500*time.Millisecond),
		WithIgnoreRecordNotFoundError(false))

	assert.Equal(t, 500*time.Millisecond, gl.slowThreshold)
	assert.False(t, gl.ignoreRecordNotFoundError)

	silent := gl.LogMode(gormlogger.Silent).(*GormLogger)
	assert.Equal(t, gormlogger.Silent, silent.logLevel)
	assert.Equal(t, gormlogger.Info, gl.logLevel)
}

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		elapsed time.Duration
		level   zapcore.Level
		message string
		logged  bool
	}{
		{name: "query", level: zapcore.DebugLevel, message: "SQL Query", logged: true},
		{name: "slow", elapsed: time.Second, level: zapcore.WarnLevel, logged: true},
		{name: "record not found", err: gormlogger.ErrRecordNotFound},
		{name: "failure", err: errors.New("connection reset"), level: zapcore.ErrorLevel, message: "SQL Error", logged: true},
		{
			name:    "postgres unique violation",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "idx_departments_org_name"},
			level:   zapcore.WarnLevel,
			message: "SQL constraint violation",
			logged:  true,
		},
		{
			name:    "sqlite unique violation",
			err:     errors.New("UNIQUE constraint failed: legal_organizations.cnpj"),
			level:   zapcore.WarnLevel,
			message: "SQL constraint violation",
			logged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			gl := NewGormLogger(zap.New(core), gormlogger.Info)

			ctx, _ := WithRequestID(context.Background(), zap.NewNop(), "req-3")
			gl.Trace(ctx, time.Now().Add(-tt.elapsed), sqlFn("SELECT 1", 1), tt.err)

			if !tt.logged {
				assert.Zero(t, logs.Len())
				return
			}
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			if tt.message != "" {
				assert.Equal(t, tt.message, entry.Message)
			}
			assert.Equal(t, "req-3", entry.ContextMap()["request_id"])
		})
	}
}

func TestGormLogger_Silent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), gormlogger.Silent)

	gl.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 0), errors.New("ignored"))
	assert.Zero(t, logs.Len())
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unknown"))
}
