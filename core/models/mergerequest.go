package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pipeline status values reported by the merge-request source.
const (
	PipelineStatusPassed  = "passed"
	PipelineStatusFailed  = "failed"
	PipelineStatusRunning = "running"
)

// MergeRequestRecord describes a code-review artifact with its pipeline state.
type MergeRequestRecord struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	SourceBranch   string `json:"source_branch"`
	TargetBranch   string `json:"target_branch"`
	PipelineStatus string `json:"pipeline_status"`
	Author         string `json:"author,omitempty"`
	WebURL         string `json:"web_url,omitempty"`
	Draft          bool   `json:"draft,omitempty"`
}

// DecodeMergeRequest parses raw JSON into a MergeRequestRecord, rejecting
// unknown fields.
func DecodeMergeRequest(raw []byte) (*MergeRequestRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var m MergeRequestRecord
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode merge request record: %w", err)
	}
	return &m, nil
}

// Validate checks the structural requirements of a merge-request record.
func (m *MergeRequestRecord) Validate() Result {
	if m == nil {
		return invalid("merge request record cannot be nil")
	}

	var reasons []string
	if m.ID <= 0 {
		reasons = append(reasons, "id must be a positive integer")
	}
	if m.Title == "" {
		reasons = append(reasons, "title is required")
	}
	if m.SourceBranch == "" {
		reasons = append(reasons, "source_branch is required")
	}
	if m.TargetBranch == "" {
		reasons = append(reasons, "target_branch is required")
	}
	switch m.PipelineStatus {
	case PipelineStatusPassed, PipelineStatusFailed, PipelineStatusRunning:
	case "":
		reasons = append(reasons, "pipeline_status is required")
	default:
		reasons = append(reasons, fmt.Sprintf("unknown pipeline_status %q", m.PipelineStatus))
	}

	return Result{Valid: len(reasons) == 0, Reasons: reasons}
}
