package telemetry

import (
	"context"

	appinv "github.com/erp/godown/internal/application/inventory"
	"github.com/erp/godown/internal/domain/inventory"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/erp/godown/transfers"

// TransferMetrics counts transfer workflow outcomes
type TransferMetrics struct {
	created   metric.Int64Counter
	completed metric.Int64Counter
	rejected  metric.Int64Counter
	underflow metric.Int64Counter
	shortfall metric.Int64Counter
}

// NewTransferMetrics registers the transfer counters on a meter from mp
func NewTransferMetrics(mp metric.MeterProvider) (*TransferMetrics, error) {
	meter := mp.Meter(meterName)
	m := &TransferMetrics{}
	var err error

	if m.created, err = meter.Int64Counter("transfers_created_total",
		metric.WithDescription("Transfers requested")); err != nil {
		return nil, err
	}
	if m.completed, err = meter.Int64Counter("transfers_completed_total",
		metric.WithDescription("Transfers approved")); err != nil {
		return nil, err
	}
	if m.rejected, err = meter.Int64Counter("transfers_rejected_total",
		metric.WithDescription("Transfers rejected")); err != nil {
		return nil, err
	}
	if m.underflow, err = meter.Int64Counter("stock_underflow_total",
		metric.WithDescription("Approvals whose source held less than the transfer quantity")); err != nil {
		return nil, err
	}
	if m.shortfall, err = meter.Int64Counter("stock_underflow_units_total",
		metric.WithDescription("Units missing at the source on approval"),
		metric.WithUnit("{unit}")); err != nil {
		return nil, err
	}
	return m, nil
}

func transferAttrs(t *inventory.Transfer) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("transfer_type", string(t.Type)))
}

// RecordTransferCreated counts a new pending transfer
func (m *TransferMetrics) RecordTransferCreated(ctx context.Context, t *inventory.Transfer) {
	m.created.Add(ctx, 1, transferAttrs(t))
}

// RecordTransferCompleted counts an approval
func (m *TransferMetrics) RecordTransferCompleted(ctx context.Context, t *inventory.Transfer) {
	m.completed.Add(ctx, 1, transferAttrs(t))
}

// RecordTransferRejected counts a rejection
func (m *TransferMetrics) RecordTransferRejected(ctx context.Context, t *inventory.Transfer) {
	m.rejected.Add(ctx, 1, transferAttrs(t))
}

// RecordStockUnderflow counts an approval that ran short by shortfall units
func (m *TransferMetrics) RecordStockUnderflow(ctx context.Context, t *inventory.Transfer, shortfall int) {
	m.underflow.Add(ctx, 1, transferAttrs(t))
	m.shortfall.Add(ctx, int64(shortfall), transferAttrs(t))
}

var _ appinv.TransferMetrics = (*TransferMetrics)(nil)
