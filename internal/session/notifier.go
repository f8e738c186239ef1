package session

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// Subscription is one registered observer of session changes.
type Subscription struct {
	ID string
	C  <-chan Change

	ch chan Change
}

// notifier fans session changes out to any number of subscribers. Slow
// subscribers are skipped rather than blocking a login or logout.
type notifier struct {
	mu   sync.RWMutex
	subs map[string]*Subscription
}

func (n *notifier) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Change, buffer)
	sub := &Subscription{ID: ulid.Make().String(), C: ch, ch: ch}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[string]*Subscription)
	}
	n.subs[sub.ID] = sub
	return sub
}

func (n *notifier) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.subs[sub.ID]; ok {
		delete(n.subs, sub.ID)
		close(sub.ch)
	}
}

func (n *notifier) publish(change Change) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, sub := range n.subs {
		select {
		case sub.ch <- change:
		default:
		}
	}
}
