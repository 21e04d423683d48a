package notifiersvc

import (
	"log"
	"sync"

	"github.com/edumanage/portal/core"
)

// consoleNotifier prints user-facing notifications to the terminal; the CLI
// stand-in for the web client's toasts.
type consoleNotifier struct {
	std *log.Logger
}

var _ core.Notifier = (*consoleNotifier)(nil)

func NewConsoleNotifier(std *log.Logger) core.Notifier {
	return &consoleNotifier{std: std}
}

func (n consoleNotifier) Success(msg string) { n.std.Println("OK: " + msg) }
func (n consoleNotifier) Warn(msg string)    { n.std.Println("WARN: " + msg) }
func (n consoleNotifier) Error(msg string)   { n.std.Println("ERROR: " + msg) }

// Recorder keeps notifications in memory; used by tests to assert on what the
// user would have seen.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Warnings  []string
	Errors    []string
}

var _ core.Notifier = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	r.Successes = append(r.Successes, msg)
	r.mu.Unlock()
}

func (r *Recorder) Warn(msg string) {
	r.mu.Lock()
	r.Warnings = append(r.Warnings, msg)
	r.mu.Unlock()
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	r.Errors = append(r.Errors, msg)
	r.mu.Unlock()
}
