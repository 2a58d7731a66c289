package effects

import "strings"

// Log is the append-only battle log. Lines after the checkpoint are pending;
// the engine bounds how many may accumulate within one action.
type Log struct {
	lines []string
	sent  int
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Add appends one protocol line built from parts, e.g. Add("-weather", "RainDance").
func (l *Log) Add(parts ...string) {
	l.lines = append(l.lines, "|"+strings.Join(parts, "|"))
}

// Len returns the number of lines written.
func (l *Log) Len() int {
	return len(l.lines)
}

// Lines returns every line written.
func (l *Log) Lines() []string {
	return l.lines
}

// Pending returns the number of lines since the last checkpoint.
func (l *Log) Pending() int {
	return len(l.lines) - l.sent
}

// Checkpoint marks every line as sent.
func (l *Log) Checkpoint() {
	l.sent = len(l.lines)
}

// Flush returns the pending lines and checkpoints.
func (l *Log) Flush() []string {
	out := l.lines[l.sent:]
	l.Checkpoint()
	return out
}
