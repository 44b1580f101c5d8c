package tui

// MessageLog keeps the latest messages, newest first.
type MessageLog struct {
	limit int
	lines []string
}

// NewMessageLog creates a log holding at most limit messages.
func NewMessageLog(limit int) *MessageLog {
	if limit < 1 {
		limit = 1
	}
	return &MessageLog{limit: limit, lines: make([]string, 0, limit)}
}

// Push adds a message. Repeating the newest message is a no-op.
func (l *MessageLog) Push(msg string) {
	if l.Same(msg) {
		return
	}
	if len(l.lines) >= l.limit {
		l.lines = l.lines[:l.limit-1]
	}
	l.lines = append([]string{msg}, l.lines...)
}

// Same reports whether msg equals the newest message.
func (l *MessageLog) Same(msg string) bool {
	return len(l.lines) > 0 && l.lines[0] == msg
}

// Lines returns the messages, newest first.
func (l *MessageLog) Lines() []string {
	return l.lines
}

// Clear drops every message.
func (l *MessageLog) Clear() {
	l.lines = l.lines[:0]
}
