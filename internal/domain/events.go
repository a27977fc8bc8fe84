package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCloneStarted  EventType = "CloneStarted"
	EventCloneFinished EventType = "CloneFinished"
	EventCloneSkipped  EventType = "CloneSkipped"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CloneStartedEvent is emitted when a clone acquires a worker slot
type CloneStartedEvent struct {
	ID   string
	Dest string
}

func (e CloneStartedEvent) Type() EventType { return EventCloneStarted }

// CloneFinishedEvent is emitted when git returns, successfully or not
type CloneFinishedEvent struct {
	ID       string
	Dest     string
	Err      error
	Duration time.Duration
}

func (e CloneFinishedEvent) Type() EventType { return EventCloneFinished }

// CloneSkippedEvent is emitted for identifiers that are never handed to git
type CloneSkippedEvent struct {
	ID     string
	Dest   string
	Reason string
}

func (e CloneSkippedEvent) Type() EventType { return EventCloneSkipped }
