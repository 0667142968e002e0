package notify

import "log"

type Severity string

const (
	SeverityInfo        Severity = "info"
	SeverityDestructive Severity = "destructive"
)

// Notification is the toast-equivalent event the core emits for user-facing
// state changes. One-way: nothing awaits acknowledgment.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes every event to the process log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (l *LogNotifier) Notify(n Notification) {
	if n.Severity == SeverityDestructive {
		log.Printf("⚠️ [NOTIFY] %s: %s", n.Title, n.Description)
		return
	}
	log.Printf("🔔 [NOTIFY] %s: %s", n.Title, n.Description)
}

// MultiNotifier fans one event out to several sinks.
type MultiNotifier struct {
	sinks []Notifier
}

func NewMultiNotifier(sinks ...Notifier) *MultiNotifier {
	return &MultiNotifier{sinks: sinks}
}

func (m *MultiNotifier) Notify(n Notification) {
	for _, s := range m.sinks {
		s.Notify(n)
	}
}
