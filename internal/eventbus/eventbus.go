package eventbus

import (
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog/log"

	"selectlist/internal/domain"
	"selectlist/internal/selection"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventRedrawRequested  = domain.EventRedrawRequested
	EventSelectionChanged = domain.EventSelectionChanged
	EventModeChanged      = domain.EventModeChanged
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type RedrawRequestedEvent = domain.RedrawRequestedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type ModeChangedEvent = domain.ModeChangedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	handlers  *xsync.MapOf[EventType, []subscription]
	nextID    atomic.Uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  xsync.NewMapOf[EventType, []subscription](),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Redraws happen on every keypress
	if event.Type() != EventRedrawRequested {
		log.Debug().Str("event", string(event.Type())).Msg("EventBus: publishing")
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Warn().Str("event", string(event.Type())).Msg("Event bus channel full, dropping event")
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	id := b.nextID.Add(1)

	b.handlers.Compute(eventType, func(subs []subscription, _ bool) ([]subscription, bool) {
		next := make([]subscription, len(subs), len(subs)+1)
		copy(next, subs)
		return append(next, subscription{id: id, handler: handler}), false
	})

	return func() {
		b.handlers.Compute(eventType, func(subs []subscription, loaded bool) ([]subscription, bool) {
			if !loaded {
				return nil, true
			}
			next := make([]subscription, 0, len(subs))
			for _, s := range subs {
				if s.id != id {
					next = append(next, s)
				}
			}
			return next, len(next) == 0
		})
	}
}

// Close stops the dispatcher; pending events are discarded
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Slices are replaced, never mutated, so no copy is needed
			subs, _ := b.handlers.Load(event.Type())

			for _, s := range subs {
				// Call handler in a goroutine to avoid blocking
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Error().
								Str("event", string(eventType)).
								Interface("panic", r).
								Bytes("stack", debug.Stack()).
								Msg("Event handler panic")
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// Notifier returns a selection.Notifier that asks the UI for a redraw through the bus
func Notifier(b EventBus) selection.Notifier {
	return selection.NotifierFunc(func() {
		b.Publish(RedrawRequestedEvent{})
	})
}
