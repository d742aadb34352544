// Package transcript records the prompt/answer exchanges of one interactive
// session, along with accumulated token usage. Nothing is persisted; the
// record lives only as long as the session.
package transcript

import (
	"sync"
	"time"

	"github.com/promptline/promptline/pkg/provider"
)

// Exchange records a single prompt and its answer.
type Exchange struct {
	Prompt    string         `json:"prompt"`
	Answer    string         `json:"answer"`
	Timestamp time.Time      `json:"timestamp"`
	Usage     provider.Usage `json:"usage"`
}

// Log accumulates exchanges for one session. It is safe for concurrent use.
type Log struct {
	mu        sync.Mutex
	started   time.Time
	exchanges []Exchange
	usage     provider.Usage
}

// New creates an empty Log and marks the session start time.
func New() *Log {
	return &Log{
		started: time.Now(),
	}
}

// Record appends one exchange and accumulates its usage into the totals.
func (l *Log) Record(prompt, answer string, u provider.Usage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.exchanges = append(l.exchanges, Exchange{
		Prompt:    prompt,
		Answer:    answer,
		Timestamp: time.Now(),
		Usage:     u,
	})
	l.usage.InputTokens += u.InputTokens
	l.usage.OutputTokens += u.OutputTokens
}

// Exchanges returns a copy of all recorded exchanges.
func (l *Log) Exchanges() []Exchange {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Exchange, len(l.exchanges))
	copy(out, l.exchanges)
	return out
}

// Len returns the number of recorded exchanges.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.exchanges)
}

// TotalUsage returns the accumulated token usage for the session.
func (l *Log) TotalUsage() provider.Usage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.usage
}

// Started returns the session start time.
func (l *Log) Started() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.started
}
