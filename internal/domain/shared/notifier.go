package shared

import "context"

// Severity of an operator notification
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a short message surfaced to the operator
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier surfaces results of godown operations to whoever is watching
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
