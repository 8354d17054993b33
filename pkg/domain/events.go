package domain

import "time"

// NotificationLevel categorizes a user-facing message.
type NotificationLevel string

const (
	NotifyInfo  NotificationLevel = "info"
	NotifyError NotificationLevel = "error"
)

// Notification is a one-way, user-facing message from the execution host.
// The protocol gives no structured acknowledgment for mutating commands;
// this string is the only success/failure signal the surface receives.
type Notification struct {
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
}
