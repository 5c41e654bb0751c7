package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ticket types understood by the DoD generator.
const (
	TicketTypeBackend        = "backend"
	TicketTypeFrontend       = "frontend"
	TicketTypeInfrastructure = "infrastructure"
	TicketTypeBug            = "bug"
)

// TicketTypes lists every valid ticket type value.
var TicketTypes = []string{
	TicketTypeBackend,
	TicketTypeFrontend,
	TicketTypeInfrastructure,
	TicketTypeBug,
}

// TicketRecord is the subset of a Jira issue consumed by DoD generation.
// Key and Summary identify the ticket; Type selects which category-specific
// section must be present.
type TicketRecord struct {
	Key         string   `json:"key"`
	Summary     string   `json:"summary"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Assignee    string   `json:"assignee,omitempty"`
	Labels      []string `json:"labels,omitempty"`

	// Category-specific fields. Exactly the section matching Type is
	// required; extra sections are tolerated.
	Services         []string `json:"services,omitempty"`
	Components       []string `json:"components,omitempty"`
	Environments     []string `json:"environments,omitempty"`
	Severity         string   `json:"severity,omitempty"`
	StepsToReproduce []string `json:"steps_to_reproduce,omitempty"`
}

// DecodeTicket parses raw JSON into a TicketRecord, rejecting unknown fields.
func DecodeTicket(raw []byte) (*TicketRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var t TicketRecord
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode ticket record: %w", err)
	}
	return &t, nil
}

// ValidateFor checks the record against the structural requirements of the
// given ticket type and returns a Result with one reason per violation.
// An empty typ falls back to the record's own Type field.
func (t *TicketRecord) ValidateFor(typ string) Result {
	if t == nil {
		return invalid("ticket record cannot be nil")
	}

	var reasons []string
	if t.Key == "" {
		reasons = append(reasons, "key is required")
	}
	if t.Summary == "" {
		reasons = append(reasons, "summary is required")
	}

	if typ == "" {
		typ = t.Type
	}

	switch typ {
	case TicketTypeBackend:
		if len(t.Services) == 0 {
			reasons = append(reasons, "backend tickets require a non-empty services list")
		}
	case TicketTypeFrontend:
		if len(t.Components) == 0 {
			reasons = append(reasons, "frontend tickets require a non-empty components list")
		}
	case TicketTypeInfrastructure:
		if len(t.Environments) == 0 {
			reasons = append(reasons, "infrastructure tickets require a non-empty environments list")
		}
	case TicketTypeBug:
		if t.Severity == "" {
			reasons = append(reasons, "bug tickets require a severity")
		}
		if len(t.StepsToReproduce) == 0 {
			reasons = append(reasons, "bug tickets require non-empty steps_to_reproduce")
		}
	case "":
		reasons = append(reasons, "type is required")
	default:
		reasons = append(reasons, fmt.Sprintf("unknown ticket type %q", typ))
	}

	return Result{Valid: len(reasons) == 0, Reasons: reasons}
}
