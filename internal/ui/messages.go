package ui

import (
	"swipedeck/internal/deck"
	"swipedeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// DeckReloadedMsg carries a re-parsed deck, or the error that stopped it
type DeckReloadedMsg struct {
	Deck *deck.Deck
	Err  error
}

// frameMsg advances the slide transition by one frame
type frameMsg struct{}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
