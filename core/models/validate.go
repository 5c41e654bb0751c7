package models

// Result is the outcome of a structural validation: either valid, or invalid
// with one human-readable reason per violation.
type Result struct {
	Valid   bool
	Reasons []string
}

func invalid(reason string) Result {
	return Result{Reasons: []string{reason}}
}

// ValidateTicket validates raw JSON as a TicketRecord. A payload that does not
// decode strictly is invalid, never an error; the caller decides whether
// malformed JSON should abort earlier.
func ValidateTicket(raw []byte) Result {
	t, err := DecodeTicket(raw)
	if err != nil {
		return invalid("not a ticket record: " + err.Error())
	}
	return t.ValidateFor(t.Type)
}

// ValidateMergeRequest validates raw JSON as a MergeRequestRecord.
func ValidateMergeRequest(raw []byte) Result {
	m, err := DecodeMergeRequest(raw)
	if err != nil {
		return invalid("not a merge request record: " + err.Error())
	}
	return m.Validate()
}

// IsJiraTicket reports whether raw JSON conforms to the ticket shape.
func IsJiraTicket(raw []byte) bool {
	return ValidateTicket(raw).Valid
}

// IsMergeRequest reports whether raw JSON conforms to the merge-request shape.
func IsMergeRequest(raw []byte) bool {
	return ValidateMergeRequest(raw).Valid
}
