// Package notify defines transient user notices.
package notify

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a single notice shown to the user.
type Notification struct {
	Level   Level
	Message string
}

func Info(msg string) Notification    { return Notification{Level: LevelInfo, Message: msg} }
func Warning(msg string) Notification { return Notification{Level: LevelWarning, Message: msg} }
func Error(msg string) Notification   { return Notification{Level: LevelError, Message: msg} }

// Notifier displays notifications.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
