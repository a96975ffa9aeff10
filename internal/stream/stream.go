package stream

import (
	"context"
	"sync"

	"inventar.org/internal/inventory"
)

// Stream fan-outs committed store changes to all active subscribers
// (dashboard views, loggers). Subscribers that fall behind are skipped rather
// than blocking the dispatcher.
type Stream struct {
	mu   sync.RWMutex
	subs map[int]chan inventory.Change
	next int
}

// New initialises an empty stream.
func New() *Stream {
	return &Stream{subs: make(map[int]chan inventory.Change)}
}

// Subscribe registers a subscriber and returns a channel which will receive
// committed changes. The channel is closed when the provided context ends.
func (s *Stream) Subscribe(ctx context.Context) <-chan inventory.Change {
	ch := make(chan inventory.Change, 16)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// Publish fan-outs the change to all subscribers.
func (s *Stream) Publish(change inventory.Change) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- change:
		default:
			// Drop when subscriber is slow to avoid blocking.
		}
	}
}
