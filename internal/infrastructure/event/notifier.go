package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/erp/godown/internal/domain/godown"
	"github.com/erp/godown/internal/domain/inventory"
	"github.com/erp/godown/internal/domain/shared"
	"go.uber.org/zap"
)

// LogNotifier writes operator notifications to zap
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier logging under the "notifier" name
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notifier")}
}

// Notify logs n at the level matching its severity
func (n *LogNotifier) Notify(_ context.Context, notification shared.Notification) error {
	fields := []zap.Field{
		zap.String("title", notification.Title),
		zap.String("severity", string(notification.Severity)),
	}
	switch notification.Severity {
	case shared.SeverityWarning:
		n.logger.Warn(notification.Description, fields...)
	case shared.SeverityError:
		n.logger.Error(notification.Description, fields...)
	default:
		n.logger.Info(notification.Description, fields...)
	}
	return nil
}

var _ shared.Notifier = (*LogNotifier)(nil)

// NotificationHandler turns domain events into operator notifications
type NotificationHandler struct {
	notifier shared.Notifier
}

// NewNotificationHandler creates a handler forwarding to notifier
func NewNotificationHandler(notifier shared.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// EventTypes returns nil so the handler receives every event
func (h *NotificationHandler) EventTypes() []string {
	return nil
}

// Handle notifies about one event
func (h *NotificationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	return h.notifier.Notify(ctx, NotificationFor(event))
}

// NotificationFor describes an event for an operator
func NotificationFor(event shared.DomainEvent) shared.Notification {
	n := shared.Notification{Title: event.EventType(), Severity: shared.SeveritySuccess}

	switch e := event.(type) {
	case *godown.GodownCreatedEvent:
		n.Title = "Godown created"
		n.Description = fmt.Sprintf("%s (%s) is now active", e.Name, e.Tier)
	case *godown.GodownStatusChangedEvent:
		if e.Active {
			n.Title = "Godown activated"
		} else {
			n.Title = "Godown deactivated"
		}
		n.Description = e.Name
	case *godown.GodownDeletedEvent:
		n.Title = "Godown deleted"
		n.Description = e.Name + " and its assignments were removed"
	case *godown.WardsAssignedEvent:
		n.Title = "Wards assigned"
		n.Description = fmt.Sprintf("%d ward(s) assigned: %s", len(e.Wards), joinWards(e.Wards))
	case *godown.AreasAssignedEvent:
		n.Title = "Areas assigned"
		n.Description = fmt.Sprintf("%d administrative unit(s) assigned", len(e.AdministrativeUnitIDs))
	case *godown.AssignmentRemovedEvent:
		n.Title = "Assignment removed"
		n.Description = fmt.Sprintf("Administrative unit %s removed with %d ward(s)", e.AdministrativeUnitID, e.WardsRemoved)
	case *inventory.StockAddedEvent:
		n.Title = "Stock added"
		n.Description = fmt.Sprintf("%d unit(s) of product %s received", e.Quantity, e.ProductID)
	case *inventory.StockEntryRemovedEvent:
		n.Title = "Stock entry removed"
		n.Description = fmt.Sprintf("Entry of %d unit(s) of product %s deleted", e.Quantity, e.ProductID)
	case *inventory.TransferRequestedEvent:
		n.Title = "Transfer requested"
		n.Description = fmt.Sprintf("%s of %d unit(s) awaiting approval", e.TransferType, e.Quantity)
	case *inventory.TransferCompletedEvent:
		n.Title = "Transfer approved"
		n.Description = fmt.Sprintf("%d unit(s) moved", e.Quantity)
	case *inventory.TransferRejectedEvent:
		n.Title = "Transfer rejected"
		n.Description = fmt.Sprintf("%d unit(s) stay at the source", e.Quantity)
	case *inventory.StockUnderflowWarningEvent:
		n.Title = "Source stock ran short"
		n.Severity = shared.SeverityWarning
		outcome := "booked as negative stock"
		if e.Clamped {
			outcome = "clamped at zero"
		}
		n.Description = fmt.Sprintf("Requested %d, available %d, shortfall %d %s",
			e.Requested, e.Available, e.Shortfall, outcome)
	default:
		n.Severity = shared.SeverityInfo
		n.Description = event.AggregateType() + " " + event.AggregateID().String()
	}
	return n
}

func joinWards(wards []int) string {
	parts := make([]string, 0, len(wards))
	for _, w := range wards {
		parts = append(parts, fmt.Sprintf("%d", w))
	}
	return strings.Join(parts, ", ")
}
