package notify

import (
	"fmt"
	"log"
	"sync"
)

// Notifier receives user-facing, non-fatal failure messages. Calls must
// not block the caller.
type Notifier interface {
	Notify(format string, args ...any)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Notify(format string, args ...any) {
	log.Printf("notice: "+format, args...)
}

// Collector buffers notifications so a frontend can drain and display
// them. Safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	messages []string
}

func (c *Collector) Notify(format string, args ...any) {
	c.mu.Lock()
	c.messages = append(c.messages, fmt.Sprintf(format, args...))
	c.mu.Unlock()
}

// Drain returns the buffered messages and clears the backlog.
func (c *Collector) Drain() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.messages
	c.messages = nil
	return out
}

// Peek returns the backlog without clearing it.
func (c *Collector) Peek() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.messages))
	copy(out, c.messages)
	return out
}
