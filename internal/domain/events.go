package domain

import "swipedeck/internal/carousel"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged      EventType = "SlideChanged"
	EventDeckLoaded        EventType = "DeckLoaded"
	EventDeckReloaded      EventType = "DeckReloaded"
	EventReloadRequested   EventType = "ReloadRequested"
	EventGestureRecognized EventType = "GestureRecognized"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideChangedEvent is emitted after the carousel moves to another slide
type SlideChangedEvent struct {
	From      int
	To        int
	Direction carousel.Direction
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// DeckLoadedEvent is emitted when a deck is first loaded
type DeckLoadedEvent struct {
	Path   string
	Slides int
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// DeckReloadedEvent is emitted when a deck file changed and was parsed again
type DeckReloadedEvent struct {
	Path   string
	Slides int
}

func (e DeckReloadedEvent) Type() EventType { return EventDeckReloaded }

// ReloadRequestedEvent is emitted when the user asks for the deck to be re-read
type ReloadRequestedEvent struct {
	Path string
}

func (e ReloadRequestedEvent) Type() EventType { return EventReloadRequested }

// GestureRecognizedEvent is emitted for every finished drag, including ones
// below the swipe threshold (Direction is then DirectionNone)
type GestureRecognizedEvent struct {
	Offset    float64
	Velocity  float64
	Direction carousel.Direction
}

func (e GestureRecognizedEvent) Type() EventType { return EventGestureRecognized }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
	Deck string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
