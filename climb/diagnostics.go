package climb

import "strings"

// Log keeps the most recent trace lines, dropping the oldest past its limit.
type Log struct {
	lines []string
	limit int
}

func NewLog(limit int) *Log {
	if limit < 1 {
		limit = 1
	}
	return &Log{limit: limit}
}

func (l *Log) Add(line string) {
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Record appends the text of every Trace command in cmds.
func (l *Log) Record(cmds []Command) {
	for _, c := range cmds {
		if c.Kind == Trace {
			l.Add(c.Text)
		}
	}
}

func (l *Log) Lines() []string {
	return l.lines
}

// Tail returns up to n of the newest lines, oldest first.
func (l *Log) Tail(n int) []string {
	if n >= len(l.lines) {
		return l.lines
	}
	return l.lines[len(l.lines)-n:]
}

func (l *Log) Last() (string, bool) {
	if len(l.lines) == 0 {
		return "", false
	}
	return l.lines[len(l.lines)-1], true
}

// FellLast reports whether the newest line records a fall.
func (l *Log) FellLast() bool {
	last, ok := l.Last()
	return ok && strings.Contains(last, "FALL")
}

func (l *Log) Len() int {
	return len(l.lines)
}
