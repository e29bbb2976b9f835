package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SlowQueryThreshold marks spans of statements slower than this
const SlowQueryThreshold = 200 * time.Millisecond

type queryStartKey struct{}

// RegisterDBTracing installs the otelgorm plugin on db and annotates each
// statement span with table, rows affected and a slow query flag.
// Query variables never reach the spans.
func RegisterDBTracing(db *gorm.DB, dbName string, logger *zap.Logger) error {
	if err := db.Use(otelgorm.NewPlugin(
		otelgorm.WithDBName(dbName),
		otelgorm.WithoutQueryVariables(),
	)); err != nil {
		return err
	}

	cb := db.Callback()
	processors := []struct {
		op        string
		before    func(string) error
		afterHook func(string) error
	}{
		{"create", beforeFn(cb.Create().Before("gorm:create")), afterFn(cb.Create().After("gorm:create"))},
		{"query", beforeFn(cb.Query().Before("gorm:query")), afterFn(cb.Query().After("gorm:query"))},
		{"update", beforeFn(cb.Update().Before("gorm:update")), afterFn(cb.Update().After("gorm:update"))},
		{"delete", beforeFn(cb.Delete().Before("gorm:delete")), afterFn(cb.Delete().After("gorm:delete"))},
		{"row", beforeFn(cb.Row().Before("gorm:row")), afterFn(cb.Row().After("gorm:row"))},
		{"raw", beforeFn(cb.Raw().Before("gorm:raw")), afterFn(cb.Raw().After("gorm:raw"))},
	}
	for _, p := range processors {
		if err := p.before("godown_timing:before_" + p.op); err != nil {
			return err
		}
		if err := p.afterHook("godown_timing:after_" + p.op); err != nil {
			return err
		}
	}

	logger.Info("Database tracing enabled",
		zap.String("db_name", dbName),
		zap.Duration("slow_query_threshold", SlowQueryThreshold),
	)
	return nil
}

type callbackRegistrar interface {
	Register(name string, fn func(*gorm.DB)) error
}

func beforeFn(r callbackRegistrar) func(string) error {
	return func(name string) error { return r.Register(name, markQueryStart) }
}

func afterFn(r callbackRegistrar) func(string) error {
	return func(name string) error { return r.Register(name, annotateSpan) }
}

func markQueryStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

func annotateSpan(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}
	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		if elapsed := time.Since(start); elapsed > SlowQueryThreshold {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}
