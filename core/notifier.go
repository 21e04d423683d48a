package core

// Notifier surfaces transient, user-facing notifications; the terminal
// counterpart of the web client's toasts. Stores report fetch failures here
// instead of returning errors to the render path.
type Notifier interface {
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}
