// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"prospect_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Prospects Domain Events
// =============================================================================

// ProspectQualified is published when an evaluated prospect clears the
// qualification threshold and is persisted.
type ProspectQualified struct {
	BaseEvent
	ProspectID      uuid.UUID `json:"prospectId"`
	Company         string    `json:"company"`
	FullName        string    `json:"fullName"`
	RoleTitle       string    `json:"roleTitle"`
	EquityScore     int       `json:"equityScore"`
	ConfidenceScore int       `json:"confidenceScore"`
}

func (e ProspectQualified) EventName() string { return "prospects.prospect.qualified" }

// ProspectBatchCompleted is published at the end of a discovery run for a company.
type ProspectBatchCompleted struct {
	BaseEvent
	Company        string `json:"company"`
	ContactsFound  int    `json:"contactsFound"`
	ProspectsSaved int    `json:"prospectsSaved"`
	DurationMs     int64  `json:"durationMs"`
}

func (e ProspectBatchCompleted) EventName() string { return "prospects.batch.completed" }

// CompanyRescanScheduled is published when a follow-up discovery run is
// enqueued for a company.
type CompanyRescanScheduled struct {
	BaseEvent
	Company string `json:"company"`
}

func (e CompanyRescanScheduled) EventName() string { return "prospects.company.rescan_scheduled" }
