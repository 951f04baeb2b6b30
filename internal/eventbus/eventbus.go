package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"swipedeck/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSlideChanged      = domain.EventSlideChanged
	EventDeckLoaded        = domain.EventDeckLoaded
	EventDeckReloaded      = domain.EventDeckReloaded
	EventReloadRequested   = domain.EventReloadRequested
	EventGestureRecognized = domain.EventGestureRecognized
	EventError             = domain.EventError
	EventConfigLoaded      = domain.EventConfigLoaded
	EventConfigSaved       = domain.EventConfigSaved
)

// Re-export domain event types
type SlideChangedEvent = domain.SlideChangedEvent
type DeckLoadedEvent = domain.DeckLoadedEvent
type DeckReloadedEvent = domain.DeckReloadedEvent
type ReloadRequestedEvent = domain.ReloadRequestedEvent
type GestureRecognizedEvent = domain.GestureRecognizedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// Stats counts bus traffic since creation
type Stats struct {
	Published int64
	Dropped   int64
	Panics    int64
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// Bus is the concrete implementation of EventBus
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	handlerWg sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger

	published atomic.Int64
	dropped   atomic.Int64
	panics    atomic.Int64
}

// New creates a new event bus and starts its dispatcher
func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		logger:    logger,
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. Events are dropped when the
// queue is full or the bus is closed.
func (b *Bus) Publish(event DomainEvent) {
	select {
	case <-b.quit:
		b.dropped.Inc()
		return
	default:
	}

	// Gesture events fire on every drag; keep them out of info logs
	if event.Type() == EventGestureRecognized {
		b.logger.Debug("publishing event", zap.String("type", string(event.Type())))
	} else {
		b.logger.Info("publishing event", zap.String("type", string(event.Type())))
	}

	select {
	case b.eventChan <- event:
		b.published.Inc()
	default:
		b.dropped.Inc()
		b.logger.Warn("event bus channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
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

// Stats returns a snapshot of the bus counters
func (b *Bus) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Dropped:   b.dropped.Load(),
		Panics:    b.panics.Load(),
	}
}

// Close stops the dispatcher, discards queued events and waits for running
// handlers to return
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
		b.handlerWg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Copy so handlers run without the lock held
			subsCopy := make([]subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, s := range subsCopy {
				// Call handler in a goroutine to avoid blocking
				b.handlerWg.Add(1)
				go func(h EventHandler, event DomainEvent) {
					defer b.handlerWg.Done()
					defer func() {
						if r := recover(); r != nil {
							b.panics.Inc()
							b.logger.Error("event handler panic",
								zap.String("type", string(event.Type())),
								zap.Any("panic", r),
								zap.ByteString("stack", debug.Stack()))
						}
					}()
					h(event)
				}(s.handler, event)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
					b.dropped.Inc()
				default:
					return
				}
			}
		}
	}
}
