package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"repodepot/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCloneStarted  = domain.EventCloneStarted
	EventCloneFinished = domain.EventCloneFinished
	EventCloneSkipped  = domain.EventCloneSkipped
)

// Re-export domain event types
type CloneStartedEvent = domain.CloneStartedEvent
type CloneFinishedEvent = domain.CloneFinishedEvent
type CloneSkippedEvent = domain.CloneSkippedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	// Close stops accepting events and returns once every published
	// event has been handled.
	Close()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    int
	eventChan chan DomainEvent

	sendMu sync.RWMutex // guards closed and sends on eventChan
	closed bool
	wg     sync.WaitGroup
}

// New creates a new event bus. Handlers run on a single dispatcher
// goroutine, in publish order.
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. Events published after
// Close are dropped.
func (b *bus) Publish(event DomainEvent) {
	b.sendMu.RLock()
	defer b.sendMu.RUnlock()
	if b.closed {
		log.Printf("EventBus: closed, dropping event %s", event.Type())
		return
	}
	b.eventChan <- event
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

func (b *bus) Close() {
	b.sendMu.Lock()
	if b.closed {
		b.sendMu.Unlock()
		return
	}
	b.closed = true
	close(b.eventChan)
	b.sendMu.Unlock()

	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for event := range b.eventChan {
		b.mu.RLock()
		subs := append([]subscription(nil), b.handlers[event.Type()]...)
		b.mu.RUnlock()

		for _, s := range subs {
			b.call(s.handler, event)
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}
