package history

import "sync"

// Log is a fixed-capacity, newest-first record of submission attempts.
// It lives for one session and is never persisted.
type Log struct {
	mu      sync.Mutex
	entries []Entry // ring buffer
	next    int     // slot for the next write
	size    int
}

// New creates a log holding at most capacity entries.
func New(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{entries: make([]Entry, capacity)}
}

// Record puts e at the front, evicting the oldest entry once the log is full,
// and returns the entries newest first.
//
// Entries are ordered by when Record is called. Callers that submit
// concurrently get completion order, not submission order.
func (l *Log) Record(e Entry) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[l.next] = e
	l.next = (l.next + 1) % len(l.entries)
	if l.size < len(l.entries) {
		l.size++
	}
	return l.snapshot()
}

// Entries returns the recorded entries, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

// Cap returns the maximum number of entries kept.
func (l *Log) Cap() int {
	return len(l.entries)
}

func (l *Log) snapshot() []Entry {
	out := make([]Entry, l.size)
	n := len(l.entries)
	for i := 0; i < l.size; i++ {
		out[i] = l.entries[(l.next-1-i+n)%n]
	}
	return out
}
